package graph

import "fmt"

// Interval is a contiguous span of versions during which a follow edge was
// active. An interval without an end is open: the edge is still active.
type Interval struct {
	Start Version

	end    Version
	closed bool
}

// NewInterval returns an open interval starting at the specified version.
func NewInterval(start Version) Interval {
	return Interval{Start: start}
}

// NewClosedInterval returns an interval covering [start, end].
func NewClosedInterval(start, end Version) Interval {
	return Interval{Start: start, end: end, closed: true}
}

// IsOpen returns true if the interval has no end.
func (i Interval) IsOpen() bool { return !i.closed }

// End returns the last version covered by the interval. The boolean result
// is false for open intervals.
func (i Interval) End() (Version, bool) {
	if !i.closed {
		return 0, false
	}
	return i.end, true
}

// EndsAt returns true if the interval is closed and its end equals v.
func (i Interval) EndsAt(v Version) bool {
	return i.closed && i.end == v
}

// Covers returns true if v falls within the interval. Both bounds are
// inclusive.
func (i Interval) Covers(v Version) bool {
	if v < i.Start {
		return false
	}
	return !i.closed || v <= i.end
}

// Close sets the end of the interval to v.
func (i *Interval) Close(v Version) {
	i.end = v
	i.closed = true
}

// Reopen clears the end of the interval.
func (i *Interval) Reopen() {
	i.end = 0
	i.closed = false
}

// String implements fmt.Stringer.
func (i Interval) String() string {
	if !i.closed {
		return fmt.Sprintf("[%d, OPEN)", i.Start)
	}
	return fmt.Sprintf("[%d, %d]", i.Start, i.end)
}
