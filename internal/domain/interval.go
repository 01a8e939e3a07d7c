package domain

import "time"

// TimeInterval is a span of zoned timestamps. Valid intervals satisfy
// Start < End. Intervals are ephemeral values computed per generation call
// and are never persisted on their own.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) TimeInterval {
	return TimeInterval{Start: start, End: end}
}

func (iv TimeInterval) IsValid() bool {
	return iv.Start.Before(iv.End)
}

func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Minutes returns the interval length in whole minutes.
func (iv TimeInterval) Minutes() int {
	return int(iv.Duration() / time.Minute)
}

// Overlaps reports whether the two intervals share any time. Boundaries are
// exclusive: an interval ending exactly when the other starts does not
// overlap it.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// Clip bounds the interval to the given window. The second return value is
// false when nothing of the interval remains inside the window.
func (iv TimeInterval) Clip(window TimeInterval) (TimeInterval, bool) {
	clipped := iv
	if clipped.Start.Before(window.Start) {
		clipped.Start = window.Start
	}
	if clipped.End.After(window.End) {
		clipped.End = window.End
	}
	if !clipped.IsValid() {
		return TimeInterval{}, false
	}
	return clipped, true
}
