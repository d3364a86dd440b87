package model

import "time"

// Wall-clock layouts used for every persisted date and time.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Meeting is a booked interval on a single local date.
// Date is YYYY-MM-DD, StartTime and EndTime are HH:MM (24h) with StartTime < EndTime.
type Meeting struct {
	ID          int64
	Date        string
	Title       string
	StartTime   string
	EndTime     string
	Description string
	Location    string
	CreatedAt   time.Time
}

// IsZero reports whether m is the zero value returned for a missing meeting.
func (m Meeting) IsZero() bool {
	return m.ID == 0
}

// Start parses Date+StartTime in loc.
func (m Meeting) Start(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, m.Date+" "+m.StartTime, loc)
}

// End parses Date+EndTime in loc.
func (m Meeting) End(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, m.Date+" "+m.EndTime, loc)
}
