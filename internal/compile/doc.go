// Package compile drives the writer over a statement stream and assembles
// the resulting blocks into one view-class definition.
//
// Assembly order is fixed: class prologue, dependency fragment, macro
// member functions, the render function, class epilogue. The statement
// processor is free to enter and leave blocks in any order while the
// stream is processed.
package compile
