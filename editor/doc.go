// Package editor drives the interactive session: it owns the cursor and
// viewport, dispatches keys into buffer operations, and repaints the screen
// as single frames so the terminal never shows a half-drawn state.
//
// The editor talks to the terminal only through the Console interface, so
// every behavior down to the exact escape sequences of a frame is testable
// against an in-memory fake.
package editor
