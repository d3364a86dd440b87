package extractor

// ScheduleRequest is what a free-text scheduling request resolves to.
type ScheduleRequest struct {
	Date        string
	StartTime   string
	EndTime     string
	Title       string
	Description string
	Location    string
}

// CancelRequest targets either one meeting by id or every meeting whose title
// contains TitleFragment on Date. An empty Date means all dates.
type CancelRequest struct {
	MeetingID     int64
	TitleFragment string
	Date          string
}

// ByID reports whether the request names a meeting id.
func (r CancelRequest) ByID() bool {
	return r.MeetingID > 0
}

// ListRequest selects the meetings of one Date, or all dates when Date is empty.
type ListRequest struct {
	Date string
}

type dateMatch struct {
	date       string
	start, end int
}

type timeRangeMatch struct {
	start     string
	end       string
	spanStart int
	spanEnd   int
}
