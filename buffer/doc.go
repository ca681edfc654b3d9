// Package buffer implements the row store for vine: the ordered sequence of
// text rows, the derived display form used for on-screen column math, and
// the keystroke-level edit operations.
//
// Coordinates are 0-based. A character column (cx) indexes raw bytes; a
// display column (rx) indexes the tab-expanded display form.
package buffer
