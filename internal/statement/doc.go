// Package statement defines the abstract template statement model fed to
// the writer, plus YAML loading for serialized statement streams.
//
// A statement stream is the already-parsed form of template markup: an
// ordered list of entries the surrounding pipeline hands to the writer one
// at a time. This package performs no interpretation of statement
// semantics.
package statement
