package units

import (
	"time"

	"github.com/katalvlaran/lvunits/quantity"
)

// Time is a duration in seconds.
type Time float64

// String renders the canonical value, e.g. "5s".
func (t Time) String() string { return quantity.FormatScalar(float64(t), "s") }

// MulSpeed returns the distance covered at s during t.
func (t Time) MulSpeed(s Speed) Length {
	return Length(float64(t) * float64(s))
}

// Duration converts t to a time.Duration, truncating below one nanosecond.
// Times outside the ±292 year range of time.Duration are not representable.
func (t Time) Duration() time.Duration {
	return time.Duration(float64(t) * float64(time.Second))
}

// FromDuration returns d as a Time.
func FromDuration(d time.Duration) Time {
	return Time(d.Seconds())
}
