// SPDX-License-Identifier: MIT

package units

import (
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/si"
)

// secondsPerDay is the length of a civil day.
const secondsPerDay = 86400.0

var (
	leapYearsDef         = quantity.Define[Time]("leap_yr", quantity.Linear(366*secondsPerDay))
	nonLeapYearsDef      = quantity.Define[Time]("non_leap_yr", quantity.Linear(365*secondsPerDay))
	yearsDef             = quantity.Define[Time]("yr", quantity.Linear(365.25*secondsPerDay))
	nonLeapYearMonthsDef = quantity.Define[Time]("non_leap_yr_mon", quantity.Linear(365*secondsPerDay/12))
	monthsDef            = quantity.Define[Time]("mon", quantity.Linear(365.25*secondsPerDay/12))
	weeksDef             = quantity.Define[Time]("wk", quantity.Linear(7*secondsPerDay))
	daysDef              = quantity.Define[Time]("day", quantity.Linear(secondsPerDay))
	hoursDef             = quantity.Define[Time]("hr", quantity.Linear(3600))
	minutesDef           = quantity.Define[Time]("min", quantity.Linear(60))
	secondsDef           = quantity.Define[Time]("s", quantity.Linear(1))
	millisecondsDef      = quantity.Define[Time]("ms", quantity.Linear(si.Milli))
	microsecondsDef      = quantity.Define[Time]("us", quantity.Linear(si.Micro))
	nanosecondsDef       = quantity.Define[Time]("ns", quantity.Linear(si.Nano))
	picosecondsDef       = quantity.Define[Time]("ps", quantity.Linear(si.Pico))
)

type (
	// LeapYearsUnit views a duration in leap years (leap_yr).
	// 366 days.
	LeapYearsUnit struct{}

	// NonLeapYearsUnit views a duration in non leap years (non_leap_yr).
	// 365 days.
	NonLeapYearsUnit struct{}

	// YearsUnit views a duration in years (yr).
	// The Julian year of 365.25 days.
	YearsUnit struct{}

	// NonLeapYearMonthsUnit views a duration in non leap year months (non_leap_yr_mon).
	// One twelfth of a non-leap year.
	NonLeapYearMonthsUnit struct{}

	// MonthsUnit views a duration in months (mon).
	// One twelfth of a Julian year.
	MonthsUnit struct{}

	// WeeksUnit views a duration in weeks (wk).
	WeeksUnit struct{}

	// DaysUnit views a duration in days (day).
	DaysUnit struct{}

	// HoursUnit views a duration in hours (hr).
	HoursUnit struct{}

	// MinutesUnit views a duration in minutes (min).
	MinutesUnit struct{}

	// SecondsUnit views a duration in seconds (s).
	SecondsUnit struct{}

	// MillisecondsUnit views a duration in milliseconds (ms).
	MillisecondsUnit struct{}

	// MicrosecondsUnit views a duration in microseconds (us).
	MicrosecondsUnit struct{}

	// NanosecondsUnit views a duration in nanoseconds (ns).
	NanosecondsUnit struct{}

	// PicosecondsUnit views a duration in picoseconds (ps).
	PicosecondsUnit struct{}
)

func (LeapYearsUnit) Def() quantity.Def[Time] { return leapYearsDef }
func (NonLeapYearsUnit) Def() quantity.Def[Time] { return nonLeapYearsDef }
func (YearsUnit) Def() quantity.Def[Time] { return yearsDef }
func (NonLeapYearMonthsUnit) Def() quantity.Def[Time] { return nonLeapYearMonthsDef }
func (MonthsUnit) Def() quantity.Def[Time] { return monthsDef }
func (WeeksUnit) Def() quantity.Def[Time] { return weeksDef }
func (DaysUnit) Def() quantity.Def[Time] { return daysDef }
func (HoursUnit) Def() quantity.Def[Time] { return hoursDef }
func (MinutesUnit) Def() quantity.Def[Time] { return minutesDef }
func (SecondsUnit) Def() quantity.Def[Time] { return secondsDef }
func (MillisecondsUnit) Def() quantity.Def[Time] { return millisecondsDef }
func (MicrosecondsUnit) Def() quantity.Def[Time] { return microsecondsDef }
func (NanosecondsUnit) Def() quantity.Def[Time] { return nanosecondsDef }
func (PicosecondsUnit) Def() quantity.Def[Time] { return picosecondsDef }

// LeapYears returns x leap years.
func LeapYears(x float64) quantity.View[Time, LeapYearsUnit] {
	return quantity.Make[Time, LeapYearsUnit](x)
}

// LeapYearsOf views t in leap years.
func LeapYearsOf(t Time) quantity.View[Time, LeapYearsUnit] {
	return quantity.ViewOf[LeapYearsUnit](t)
}

// NonLeapYears returns x non leap years.
func NonLeapYears(x float64) quantity.View[Time, NonLeapYearsUnit] {
	return quantity.Make[Time, NonLeapYearsUnit](x)
}

// NonLeapYearsOf views t in non leap years.
func NonLeapYearsOf(t Time) quantity.View[Time, NonLeapYearsUnit] {
	return quantity.ViewOf[NonLeapYearsUnit](t)
}

// Years returns x years.
func Years(x float64) quantity.View[Time, YearsUnit] {
	return quantity.Make[Time, YearsUnit](x)
}

// YearsOf views t in years.
func YearsOf(t Time) quantity.View[Time, YearsUnit] {
	return quantity.ViewOf[YearsUnit](t)
}

// NonLeapYearMonths returns x non leap year months.
func NonLeapYearMonths(x float64) quantity.View[Time, NonLeapYearMonthsUnit] {
	return quantity.Make[Time, NonLeapYearMonthsUnit](x)
}

// NonLeapYearMonthsOf views t in non leap year months.
func NonLeapYearMonthsOf(t Time) quantity.View[Time, NonLeapYearMonthsUnit] {
	return quantity.ViewOf[NonLeapYearMonthsUnit](t)
}

// Months returns x months.
func Months(x float64) quantity.View[Time, MonthsUnit] {
	return quantity.Make[Time, MonthsUnit](x)
}

// MonthsOf views t in months.
func MonthsOf(t Time) quantity.View[Time, MonthsUnit] {
	return quantity.ViewOf[MonthsUnit](t)
}

// Weeks returns x weeks.
func Weeks(x float64) quantity.View[Time, WeeksUnit] {
	return quantity.Make[Time, WeeksUnit](x)
}

// WeeksOf views t in weeks.
func WeeksOf(t Time) quantity.View[Time, WeeksUnit] {
	return quantity.ViewOf[WeeksUnit](t)
}

// Days returns x days.
func Days(x float64) quantity.View[Time, DaysUnit] {
	return quantity.Make[Time, DaysUnit](x)
}

// DaysOf views t in days.
func DaysOf(t Time) quantity.View[Time, DaysUnit] {
	return quantity.ViewOf[DaysUnit](t)
}

// Hours returns x hours.
func Hours(x float64) quantity.View[Time, HoursUnit] {
	return quantity.Make[Time, HoursUnit](x)
}

// HoursOf views t in hours.
func HoursOf(t Time) quantity.View[Time, HoursUnit] {
	return quantity.ViewOf[HoursUnit](t)
}

// Minutes returns x minutes.
func Minutes(x float64) quantity.View[Time, MinutesUnit] {
	return quantity.Make[Time, MinutesUnit](x)
}

// MinutesOf views t in minutes.
func MinutesOf(t Time) quantity.View[Time, MinutesUnit] {
	return quantity.ViewOf[MinutesUnit](t)
}

// Seconds returns x seconds.
func Seconds(x float64) quantity.View[Time, SecondsUnit] {
	return quantity.Make[Time, SecondsUnit](x)
}

// SecondsOf views t in seconds.
func SecondsOf(t Time) quantity.View[Time, SecondsUnit] {
	return quantity.ViewOf[SecondsUnit](t)
}

// Milliseconds returns x milliseconds.
func Milliseconds(x float64) quantity.View[Time, MillisecondsUnit] {
	return quantity.Make[Time, MillisecondsUnit](x)
}

// MillisecondsOf views t in milliseconds.
func MillisecondsOf(t Time) quantity.View[Time, MillisecondsUnit] {
	return quantity.ViewOf[MillisecondsUnit](t)
}

// Microseconds returns x microseconds.
func Microseconds(x float64) quantity.View[Time, MicrosecondsUnit] {
	return quantity.Make[Time, MicrosecondsUnit](x)
}

// MicrosecondsOf views t in microseconds.
func MicrosecondsOf(t Time) quantity.View[Time, MicrosecondsUnit] {
	return quantity.ViewOf[MicrosecondsUnit](t)
}

// Nanoseconds returns x nanoseconds.
func Nanoseconds(x float64) quantity.View[Time, NanosecondsUnit] {
	return quantity.Make[Time, NanosecondsUnit](x)
}

// NanosecondsOf views t in nanoseconds.
func NanosecondsOf(t Time) quantity.View[Time, NanosecondsUnit] {
	return quantity.ViewOf[NanosecondsUnit](t)
}

// Picoseconds returns x picoseconds.
func Picoseconds(x float64) quantity.View[Time, PicosecondsUnit] {
	return quantity.Make[Time, PicosecondsUnit](x)
}

// PicosecondsOf views t in picoseconds.
func PicosecondsOf(t Time) quantity.View[Time, PicosecondsUnit] {
	return quantity.ViewOf[PicosecondsUnit](t)
}
