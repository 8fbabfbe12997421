// Package prompt asks for install options that were not given on the
// command line.
//
// [Wizard] decides which questions to ask; a [Prompter] asks them. The
// line-oriented [Selector] works on any reader, and [NewTerminal] returns a
// Prompter that uses a fuzzy finder for multi-selection when stdin is a
// terminal.
package prompt
