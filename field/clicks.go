package field

import "time"

// DoubleClickThreshold is the window within which two presses on the same
// cell count as a double click.
const DoubleClickThreshold = 400 * time.Millisecond

// ClickTracker disambiguates single from double clicks using wall-clock
// timestamps. It is a leaf utility: the caller supplies the event time, so
// tests stay deterministic.
type ClickTracker struct {
	threshold time.Duration
	lastAt    time.Time
	lastX     int
	lastY     int
	armed     bool
}

// Click records a press at (x, y) and reports whether it completes a double
// click. A completed double click disarms the tracker, so a triple press
// counts as double + single.
func (t *ClickTracker) Click(x, y int, at time.Time) bool {
	th := t.threshold
	if th <= 0 {
		th = DoubleClickThreshold
	}

	double := t.armed &&
		x == t.lastX && y == t.lastY &&
		at.Sub(t.lastAt) >= 0 && at.Sub(t.lastAt) <= th

	if double {
		t.armed = false
		return true
	}
	t.armed = true
	t.lastAt = at
	t.lastX = x
	t.lastY = y
	return false
}

// Reset forgets the pending click, e.g. after a drag.
func (t *ClickTracker) Reset() { t.armed = false }
