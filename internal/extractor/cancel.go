package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	cancelVerbRe = regexp.MustCompile(`(?i)\b(?:cancel|delete|remove|drop|rescind|abort|discard|call\s+off)\b`)
	cancelIDRe   = regexp.MustCompile(`(?i)\b(?:cancel|delete|remove|drop|rescind|abort|discard|call\s+off)\s+` +
		`(?:the\s+)?(?:(?:meeting|appointment|event)\s*)?(?:(?:id|number|no\.?)\s*)?#?\s*(\d+)\b`)
)

// IsCancelIntent reports whether text contains a cancellation verb.
func IsCancelIntent(text string) bool {
	return cancelVerbRe.MatchString(text)
}

// CancelVerbIndex returns the byte offset of the first cancellation verb, or -1.
func CancelVerbIndex(text string) int {
	return firstIndex(cancelVerbRe, text)
}

// ParseCancel resolves a cancellation to an id, or to a title fragment and optional date.
// The date is masked before the id is looked for, so "cancel 2/4 standup" never reads as id 2.
func (e *Extractor) ParseCancel(text string) (CancelRequest, error) {
	dm, hasDate, err := e.findDate(text)
	if err != nil {
		return CancelRequest{}, err
	}
	residue := text
	if hasDate {
		residue = mask(residue, dm.start, dm.end)
	}

	if m := cancelIDRe.FindStringSubmatch(residue); m != nil {
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err == nil && id > 0 {
			return CancelRequest{MeetingID: id}, nil
		}
	}

	if loc := cancelVerbRe.FindStringIndex(residue); loc != nil {
		residue = mask(residue, loc[0], loc[1])
	}

	fragment := e.cancelFragment(residue)
	if fragment == "" {
		return CancelRequest{}, newParseError(KindUnrecognized, text, "name the meeting by id or title")
	}

	req := CancelRequest{TitleFragment: strings.ToLower(fragment)}
	if hasDate {
		req.Date = dm.date
	}
	return req, nil
}
