// Package tui provides a retained-mode terminal UI framework.
//
// Applications build a tree of Components, each owning a layout Node.
// The App drives the event loop: terminal input is dispatched along the
// focus path, actions mutate the tree, and dirty subtrees are laid out
// with the constraint engine in internal/layout before being painted
// through clipped DrawContexts into a double-buffered cell Buffer.
package tui
