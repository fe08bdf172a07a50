// Package mask implements the masked text-input editing core: a pattern
// compiler, a localized numeric remapper, and a grapheme-accurate editing
// state machine over a fixed-length slot buffer.
//
// A mask pattern is compiled into one token per value slot. Editing never
// changes the buffer length; inserts and deletes rewrite slots in place and
// re-canonicalize the surrounding number field.
package mask
