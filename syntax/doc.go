// Package syntax implements the per-row highlight state machine and the
// built-in language profiles.
//
// Highlighting is incremental: each row is scanned independently given the
// block-comment state inherited from its predecessor, and the caller
// propagates the resulting state forward only while it keeps changing.
package syntax
