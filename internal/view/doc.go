// Package view implements the record browser UI: the main grid layout,
// the panes that present an opened record, and the form widgets they are
// built from.
package view

// Version is shown in the header. Overridden at build time via ldflags.
var Version = "0.1.0"
