// Package buffer implements a grapheme-accurate multi-line document model.
//
// Coordinates are 0-based (Row, Col) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// A StyleMap attaches possibly overlapping style ranges to the document and
// keeps them consistent through edits via position shifting.
package buffer
