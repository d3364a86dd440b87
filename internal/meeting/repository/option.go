package repository

// CreateMeetingOptions holds parameters for inserting a new Meeting.
type CreateMeetingOptions struct {
	Date        string
	Title       string
	StartTime   string
	EndTime     string
	Description string
	Location    string
}

// ListMeetingsOptions filters a listing. An empty Date lists every date.
type ListMeetingsOptions struct {
	Date string
}

// FindMeetingsOptions matches titles containing TitleFragment, case-insensitively,
// optionally restricted to Date.
type FindMeetingsOptions struct {
	TitleFragment string
	Date          string
}
