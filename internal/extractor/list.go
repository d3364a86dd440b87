package extractor

import "regexp"

var (
	listIntentRe = regexp.MustCompile(`(?i)\b(?:show|list|what|what's|whats|get|view|display|agenda|calendar|meetings|do\s+i\s+have)\b`)
	allDatesRe   = regexp.MustCompile(`(?i)\b(?:all|upcoming|everything|every)\b`)
)

// IsListIntent reports whether text asks to see meetings.
func IsListIntent(text string) bool {
	return listIntentRe.MatchString(text)
}

// ParseList resolves the optional date of a listing request. "all", "upcoming"
// and a missing date select every date.
func (e *Extractor) ParseList(text string) (ListRequest, error) {
	if allDatesRe.MatchString(text) {
		return ListRequest{}, nil
	}
	dm, ok, err := e.findDate(text)
	if err != nil {
		return ListRequest{}, err
	}
	if !ok {
		return ListRequest{}, nil
	}
	return ListRequest{Date: dm.date}, nil
}
