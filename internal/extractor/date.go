package extractor

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meetbot/internal/model"
	"meetbot/pkg/datemath"
)

const (
	weekdayNames = `monday|tuesday|tues|wednesday|thursday|thurs|friday|saturday|sunday`
	weekdayAll   = weekdayNames + `|mon|tue|wed|thu|fri|sat|sun`
	monthNames   = `january|february|march|april|may|june|july|august|september|october|november|december|` +
		`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
)

var (
	isoDateRe    = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashDateRe  = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`)
	monthFirstRe = regexp.MustCompile(`(?i)\b(?:on\s+)?(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	dayFirstRe   = regexp.MustCompile(`(?i)\b(?:on\s+)?(?:the\s+)?(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthNames + `)(?:,?\s+(\d{4}))?\b`)
	relativeRe   = regexp.MustCompile(`(?i)\b(?:on\s+)?((?:the\s+)?day\s+after\s+tomorrow|today|tonight|tomorrow|tmrw|tmr|` +
		`in\s+\d+\s+(?:days?|weeks?|months?)|next\s+week|(?:next|this)\s+(?:` + weekdayAll + `))\b`)
	weekdayRe = regexp.MustCompile(`(?i)\b(?:on\s+)?(` + weekdayNames + `)\b`)
)

// dateMatcher recognises one family of date expressions. match reports ok=false
// when the family is absent and a non-nil error when it is present but invalid.
type dateMatcher interface {
	name() string
	match(text string, today time.Time) (m dateMatch, ok bool, err error)
}

// defaultDateMatchers lists the matchers in priority order: absolute dates
// first, then relative keywords, then bare weekday names.
func defaultDateMatchers(p *datemath.Parser) []dateMatcher {
	return []dateMatcher{
		isoDateMatcher{p: p},
		slashDateMatcher{p: p},
		monthNameMatcher{p: p, re: monthFirstRe, monthIdx: 1, dayIdx: 2, yearIdx: 3, label: "month_day"},
		monthNameMatcher{p: p, re: dayFirstRe, monthIdx: 2, dayIdx: 1, yearIdx: 3, label: "day_month"},
		relativeMatcher{p: p},
		weekdayMatcher{p: p},
	}
}

// findDate runs the matchers in order and returns the first hit.
func (e *Extractor) findDate(text string) (dateMatch, bool, error) {
	today := e.today()
	for _, m := range e.dates {
		dm, ok, err := m.match(text, today)
		if err != nil {
			return dateMatch{}, false, newParseError(KindInvalidDate, text, "%s: %v", m.name(), err)
		}
		if ok {
			return dm, true, nil
		}
	}
	return dateMatch{}, false, nil
}

// ParseDate resolves a standalone date expression such as "tomorrow" or "2026-02-05".
func (e *Extractor) ParseDate(text string) (string, error) {
	dm, ok, err := e.findDate(text)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", newParseError(KindNoDate, text, "no date found")
	}
	return dm.date, nil
}

type isoDateMatcher struct{ p *datemath.Parser }

func (isoDateMatcher) name() string { return "iso_date" }

func (m isoDateMatcher) match(text string, _ time.Time) (dateMatch, bool, error) {
	loc := isoDateRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false, nil
	}
	year, _ := strconv.Atoi(text[loc[2]:loc[3]])
	month, _ := strconv.Atoi(text[loc[4]:loc[5]])
	day, _ := strconv.Atoi(text[loc[6]:loc[7]])
	t, err := m.p.Date(year, time.Month(month), day)
	if err != nil {
		return dateMatch{}, false, err
	}
	return dateMatch{date: t.Format(model.DateLayout), start: loc[0], end: loc[1]}, true, nil
}

// slashDateMatcher reads US-style MM/DD[/YYYY].
type slashDateMatcher struct{ p *datemath.Parser }

func (slashDateMatcher) name() string { return "slash_date" }

func (m slashDateMatcher) match(text string, today time.Time) (dateMatch, bool, error) {
	loc := slashDateRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false, nil
	}
	month, _ := strconv.Atoi(text[loc[2]:loc[3]])
	day, _ := strconv.Atoi(text[loc[4]:loc[5]])
	if month < 1 || month > 12 {
		return dateMatch{}, false, errors.New("month out of range")
	}

	var (
		t   time.Time
		err error
	)
	if loc[6] >= 0 {
		year, _ := strconv.Atoi(text[loc[6]:loc[7]])
		if year < 100 {
			year += 2000
		}
		t, err = m.p.Date(year, time.Month(month), day)
	} else {
		t, err = m.p.MonthDay(time.Month(month), day, today)
	}
	if err != nil {
		return dateMatch{}, false, err
	}
	return dateMatch{date: t.Format(model.DateLayout), start: loc[0], end: loc[1]}, true, nil
}

// monthNameMatcher reads "february 5", "feb 5th, 2027" or "5th of february".
type monthNameMatcher struct {
	p                         *datemath.Parser
	re                        *regexp.Regexp
	monthIdx, dayIdx, yearIdx int
	label                     string
}

func (m monthNameMatcher) name() string { return m.label }

func (m monthNameMatcher) match(text string, today time.Time) (dateMatch, bool, error) {
	loc := m.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false, nil
	}
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return text[loc[2*i]:loc[2*i+1]]
	}

	month, ok := datemath.LookupMonth(strings.ToLower(group(m.monthIdx)))
	if !ok {
		return dateMatch{}, false, nil
	}
	day, _ := strconv.Atoi(group(m.dayIdx))

	var (
		t   time.Time
		err error
	)
	if y := group(m.yearIdx); y != "" {
		year, _ := strconv.Atoi(y)
		t, err = m.p.Date(year, month, day)
	} else {
		t, err = m.p.MonthDay(month, day, today)
	}
	if err != nil {
		return dateMatch{}, false, err
	}
	return dateMatch{date: t.Format(model.DateLayout), start: loc[0], end: loc[1]}, true, nil
}

// relativeMatcher handles today, tomorrow, "in N days" and next/this weekday.
type relativeMatcher struct{ p *datemath.Parser }

func (relativeMatcher) name() string { return "relative" }

func (m relativeMatcher) match(text string, today time.Time) (dateMatch, bool, error) {
	loc := relativeRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false, nil
	}
	t, err := m.p.Parse(text[loc[2]:loc[3]], today)
	if err != nil {
		return dateMatch{}, false, err
	}
	return dateMatch{date: t.Format(model.DateLayout), start: loc[0], end: loc[1]}, true, nil
}

// weekdayMatcher resolves a bare weekday name to its next future occurrence.
type weekdayMatcher struct{ p *datemath.Parser }

func (weekdayMatcher) name() string { return "weekday" }

func (m weekdayMatcher) match(text string, today time.Time) (dateMatch, bool, error) {
	loc := weekdayRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return dateMatch{}, false, nil
	}
	wd, ok := datemath.LookupWeekday(strings.ToLower(text[loc[2]:loc[3]]))
	if !ok {
		return dateMatch{}, false, nil
	}
	t := m.p.NextWeekday(today, wd, false)
	return dateMatch{date: t.Format(model.DateLayout), start: loc[0], end: loc[1]}, true, nil
}
