package datemath

import (
	"errors"
	"time"
)

// ErrUnrecognized is returned when a phrase is not a date expression the parser knows.
var ErrUnrecognized = errors.New("unrecognized date expression")

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

var months = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// LookupWeekday resolves a full or abbreviated english weekday name.
func LookupWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdays[name]
	return wd, ok
}

// LookupMonth resolves a full or abbreviated english month name.
func LookupMonth(name string) (time.Month, bool) {
	m, ok := months[name]
	return m, ok
}
