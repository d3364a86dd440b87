package extractor

import (
	"regexp"
	"strings"
)

// ParseSchedule extracts date, time range and title from text. The time range
// is located first so its digits are never read as part of a date ("3 to 4 march").
// Errors always carry the caller's text unchanged.
func (e *Extractor) ParseSchedule(text string) (ScheduleRequest, error) {
	if strings.TrimSpace(text) == "" {
		return ScheduleRequest{}, newParseError(KindUnrecognized, text, "empty request")
	}

	tr, hasRange, rangeErr := findTimeRange(maskISODates(text))
	residue := text
	if hasRange && rangeErr == nil {
		residue = mask(residue, tr.spanStart, tr.spanEnd)
	}

	dm, hasDate, err := e.findDate(residue)
	if err != nil {
		return ScheduleRequest{}, withText(err, text)
	}
	if rangeErr != nil {
		return ScheduleRequest{}, withText(rangeErr, text)
	}
	if !hasRange {
		return ScheduleRequest{}, newParseError(KindNoTimeRange, text, "no time range such as '3 to 4pm' or '15:00-16:00'")
	}
	if !hasDate {
		return ScheduleRequest{}, newParseError(KindNoDate, text, "no date such as 'tomorrow', 'next friday' or '2026-02-05'")
	}
	residue = mask(residue, dm.start, dm.end)

	return ScheduleRequest{
		Date:      dm.date,
		StartTime: tr.start,
		EndTime:   tr.end,
		Title:     e.scheduleTitle(residue),
	}, nil
}

// maskISODates blanks ISO dates in place so "2026-02-04" is not read as the range "02-04".
func maskISODates(text string) string {
	return isoDateRe.ReplaceAllStringFunc(text, func(s string) string {
		return strings.Repeat(" ", len(s))
	})
}

var scheduleVerbRe = regexp.MustCompile(`(?i)\b(?:schedule|book|arrange|set\s+up|setup|plan|organi[sz]e|reserve|add|create|put)\b`)

// IsScheduleIntent reports whether text contains a scheduling verb.
func IsScheduleIntent(text string) bool {
	return scheduleVerbRe.MatchString(text)
}

// ScheduleVerbIndex returns the byte offset of the first scheduling verb, or -1.
func ScheduleVerbIndex(text string) int {
	return firstIndex(scheduleVerbRe, text)
}

func firstIndex(re *regexp.Regexp, text string) int {
	if loc := re.FindStringIndex(text); loc != nil {
		return loc[0]
	}
	return -1
}
