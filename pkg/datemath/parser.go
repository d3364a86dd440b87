package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin", "UTC" or "Local"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today", "tonight":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "tmr", "tmrw":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow", "the day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	}

	// "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// "next <weekday>" never resolves to today
	if strings.HasPrefix(relative, "next ") {
		wd, ok := LookupWeekday(strings.TrimPrefix(relative, "next "))
		if !ok {
			return baseTime, fmt.Errorf("unknown weekday %q: %w", relative, ErrUnrecognized)
		}
		return p.NextWeekday(baseTime, wd, false), nil
	}

	// "this <weekday>" may resolve to today
	if strings.HasPrefix(relative, "this ") {
		wd, ok := LookupWeekday(strings.TrimPrefix(relative, "this "))
		if !ok {
			return baseTime, fmt.Errorf("unknown weekday %q: %w", relative, ErrUnrecognized)
		}
		return p.NextWeekday(baseTime, wd, true), nil
	}

	// bare "<weekday>" is the next future occurrence
	if wd, ok := LookupWeekday(relative); ok {
		return p.NextWeekday(baseTime, wd, false), nil
	}

	return baseTime, fmt.Errorf("%q: %w", relative, ErrUnrecognized)
}

// maxInAmount bounds "in N <unit>" so AddDate cannot wrap around.
const maxInAmount = 10000

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format %q: %w", relative, ErrUnrecognized)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount > maxInAmount {
		return baseTime, fmt.Errorf("duration amount %q out of range: %w", matches[1], ErrUnrecognized)
	}
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// NextWeekday returns the next day falling on target. When includeToday is
// false and baseTime already is target, the result is one week later.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday, includeToday bool) time.Time {
	base := p.startOfDay(baseTime)
	daysUntil := int(target - base.Weekday())
	if daysUntil < 0 || (daysUntil == 0 && !includeToday) {
		daysUntil += 7
	}
	return base.AddDate(0, 0, daysUntil)
}

// MonthDay resolves a month/day pair without a year to its next occurrence
// that is not before baseTime's day.
func (p *Parser) MonthDay(month time.Month, day int, baseTime time.Time) (time.Time, error) {
	base := p.startOfDay(baseTime)
	for _, year := range []int{base.Year(), base.Year() + 1} {
		t, err := p.Date(year, month, day)
		if err != nil {
			continue
		}
		if !t.Before(base) {
			return t, nil
		}
	}
	return baseTime, fmt.Errorf("invalid day %d for %s", day, month)
}

// Date builds a calendar date and rejects overflowing values such as February 30.
func (p *Parser) Date(year int, month time.Month, day int) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %04d-%02d-%02d", year, int(month), day)
	}
	return t, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
