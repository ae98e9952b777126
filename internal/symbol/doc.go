// Package symbol provides lazily-created descriptor slots for macros and
// views discovered while processing a statement stream.
package symbol
