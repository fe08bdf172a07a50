// Package field provides Bubble Tea widget adapters over the editing cores:
// MaskField wraps a mask.Core and TextField wraps a lineinput.Core.
//
// The adapters classify raw key and mouse events into core operations and
// report an Outcome per message, so hosts can decide whether to repaint or
// route the event elsewhere. Mouse coordinates handed to Update are in
// terminal cells relative to the field's first rendered cell.
package field
