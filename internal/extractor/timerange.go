package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var timeRangeRe = regexp.MustCompile(`(?i)\b(?:(?:from|at|between)\s+)?` +
	`(\d{1,2}(?::\d{2})?|noon|midnight)\s*((?:a|p)\.?m\b\.?)?` +
	`\s*(?:to|until|till|through|-|–|—)\s*` +
	`(\d{1,2}(?::\d{2})?|noon|midnight)\s*((?:a|p)\.?m\b\.?)?`)

const (
	markerAM = "am"
	markerPM = "pm"
)

// clock is one side of a time range before the AM/PM policy is applied.
type clock struct {
	hour, minute int
	marker       string
	// literal is true for readings that can only be 24-hour: 0, 13-23, or a leading zero ("09").
	literal bool
}

// findTimeRange locates and resolves the first time range in text.
// ok is false when there is no range at all.
func findTimeRange(text string) (timeRangeMatch, bool, error) {
	loc := timeRangeRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return timeRangeMatch{}, false, nil
	}
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return text[loc[2*i]:loc[2*i+1]]
	}

	start, err := parseClock(group(1), group(2))
	if err != nil {
		return timeRangeMatch{}, true, newParseError(KindInvalidRange, text, "%v", err)
	}
	end, err := parseClock(group(3), group(4))
	if err != nil {
		return timeRangeMatch{}, true, newParseError(KindInvalidRange, text, "%v", err)
	}

	startHour, endHour, err := resolveRange(start, end)
	if err != nil {
		return timeRangeMatch{}, true, newParseError(KindInvalidRange, text, "%v", err)
	}

	m := timeRangeMatch{
		start:     fmt.Sprintf("%02d:%02d", startHour, start.minute),
		end:       fmt.Sprintf("%02d:%02d", endHour, end.minute),
		spanStart: loc[0],
		spanEnd:   loc[1],
	}
	if m.start >= m.end {
		return timeRangeMatch{}, true, newParseError(KindInvalidRange, text, "start %s is not before end %s", m.start, m.end)
	}
	return m, true, nil
}

// HasTimeRange reports whether text contains something shaped like a time
// range. ISO dates are ignored so "2026-02-04" does not read as "02-04".
func HasTimeRange(text string) bool {
	return timeRangeRe.MatchString(maskISODates(text))
}

func parseClock(token, marker string) (clock, error) {
	token = strings.ToLower(token)
	marker = normalizeMarker(marker)

	switch token {
	case "noon":
		return clock{hour: 12, marker: markerPM}, nil
	case "midnight":
		return clock{hour: 12, marker: markerAM}, nil
	}

	hourPart, minutePart, hasMinutes := strings.Cut(token, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return clock{}, fmt.Errorf("bad hour %q", hourPart)
	}
	minute := 0
	if hasMinutes {
		if minute, err = strconv.Atoi(minutePart); err != nil {
			return clock{}, fmt.Errorf("bad minute %q", minutePart)
		}
	}
	if minute > 59 {
		return clock{}, fmt.Errorf("minute %d out of range", minute)
	}
	if hour > 23 {
		return clock{}, fmt.Errorf("hour %d out of range", hour)
	}
	if marker != "" && (hour < 1 || hour > 12) {
		return clock{}, fmt.Errorf("hour %d cannot carry %s", hour, marker)
	}

	return clock{
		hour:    hour,
		minute:  minute,
		marker:  marker,
		literal: hour == 0 || hour >= 13 || (len(hourPart) == 2 && hourPart[0] == '0'),
	}, nil
}

func normalizeMarker(m string) string {
	m = strings.ToLower(strings.ReplaceAll(m, ".", ""))
	switch m {
	case markerAM, markerPM:
		return m
	}
	return ""
}

// resolveRange applies the AM/PM policy:
//   - a side with its own marker uses it;
//   - an unmarked side inherits the other side's marker, except that an
//     inherited "am" never turns 12 into midnight;
//   - with no marker on either side, 1-7 read as afternoon and 8-12 as written;
//   - 24-hour readings (0, 13-23, leading zero) are always taken literally.
func resolveRange(start, end clock) (int, int, error) {
	startHour := resolveHour(start, end.marker)
	endHour := resolveHour(end, start.marker)
	if startHour > 23 || endHour > 23 {
		return 0, 0, fmt.Errorf("hour out of range")
	}
	return startHour, endHour, nil
}

func resolveHour(c clock, otherMarker string) int {
	if c.marker != "" {
		return applyMarker(c.hour, c.marker)
	}
	if c.literal {
		return c.hour
	}
	if otherMarker != "" {
		if otherMarker == markerAM && c.hour == 12 {
			return 12
		}
		return applyMarker(c.hour, otherMarker)
	}
	if c.hour >= 1 && c.hour <= 7 {
		return c.hour + 12
	}
	return c.hour
}

func applyMarker(hour int, marker string) int {
	switch {
	case marker == markerAM && hour == 12:
		return 0
	case marker == markerPM && hour != 12:
		return hour + 12
	default:
		return hour
	}
}
