package router

import (
	"context"
	"regexp"
	"strings"

	"meetbot/internal/extractor"
)

// Classify determines user intent from message. A cancel verb wins unless a
// schedule verb comes before it and the text carries a time range ("schedule
// tomorrow 3 to 4 to remove old tickets"). A listing keyword only counts when
// nothing suggests a new meeting.
func (r *KeywordRouter) Classify(ctx context.Context, message string) (RouterOutput, error) {
	if err := ctx.Err(); err != nil {
		return RouterOutput{}, err
	}

	output := classify(strings.TrimSpace(message))
	r.l.Debugf(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, output.Intent, output.Confidence)
	return output, nil
}

// "my schedule" asks about the calendar, it does not book anything.
var scheduleNounRe = regexp.MustCompile(`(?i)\b(?:my|the|your|our|today's|tomorrow's)\s+schedule\b`)

func classify(message string) RouterOutput {
	if message == "" {
		return RouterOutput{Intent: IntentUnknown, Confidence: ConfidenceNone, Reasoning: ReasonEmpty}
	}

	scheduleAt := extractor.ScheduleVerbIndex(blank(scheduleNounRe, message))
	cancelAt := extractor.CancelVerbIndex(message)
	scheduleVerb := scheduleAt >= 0
	timeRange := extractor.HasTimeRange(message)
	bookingFirst := scheduleVerb && timeRange && scheduleAt < cancelAt

	switch {
	case cancelAt >= 0 && !bookingFirst:
		return RouterOutput{Intent: IntentCancel, Confidence: ConfidenceExplicit, Reasoning: ReasonCancelVerb}
	case extractor.IsListIntent(message) && !scheduleVerb && !timeRange:
		return RouterOutput{Intent: IntentList, Confidence: ConfidenceExplicit, Reasoning: ReasonListKeyword}
	case scheduleVerb:
		return RouterOutput{Intent: IntentSchedule, Confidence: ConfidenceExplicit, Reasoning: ReasonScheduleVerb}
	case timeRange:
		return RouterOutput{Intent: IntentSchedule, Confidence: ConfidenceImplied, Reasoning: ReasonTimeRange}
	default:
		return RouterOutput{Intent: IntentUnknown, Confidence: ConfidenceNone, Reasoning: ReasonNoKeyword}
	}
}

// blank replaces every match of re with spaces, keeping byte offsets intact.
func blank(re *regexp.Regexp, s string) string {
	return re.ReplaceAllStringFunc(s, func(m string) string { return strings.Repeat(" ", len(m)) })
}
