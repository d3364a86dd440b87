package meeting

import "errors"

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrEmptyInput      = errors.New("request text is empty")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidID       = errors.New("invalid meeting id")
)
