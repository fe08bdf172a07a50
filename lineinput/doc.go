// Package lineinput implements a single-line, unmasked text editing core.
//
// It shares the grapheme-indexed cursor/anchor/offset/width contract of
// package mask but has no slot constraints: any grapheme may be inserted at
// any position and the value length changes with every edit. The core is
// UI-agnostic; widget adapters live in package field.
package lineinput
