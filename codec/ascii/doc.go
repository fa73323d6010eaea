// Package ascii implements the plain-text `depth/idx[-idx] …` MOC
// grammar: a flat, whitespace- or comma-separated token stream where each
// token either names a run of cells at a given depth (`3/4-6`, `3/10`) or,
// bare (`11/`), terminates the stream and declares d_max even when no
// cells follow it. Depths need not be sorted across tokens.
package ascii
