package repository

import (
	"context"

	"meetbot/internal/model"
)

// Repository is the composed interface for the meeting data store.
type Repository interface {
	MeetingRepository

	// WithinDateLock runs fn as one atomic unit with respect to other writers
	// on date. fn must use tx, not the outer Repository.
	WithinDateLock(ctx context.Context, date string, fn func(ctx context.Context, tx MeetingRepository) error) error
}

// MeetingRepository defines all data access methods for the Meeting entity.
// Listings are ordered by (date, start_time, id).
type MeetingRepository interface {
	CreateMeeting(ctx context.Context, opt CreateMeetingOptions) (model.Meeting, error)
	// GetMeeting returns the zero Meeting (ID == 0) and no error when id does not exist.
	GetMeeting(ctx context.Context, id int64) (model.Meeting, error)
	ListMeetings(ctx context.Context, opt ListMeetingsOptions) ([]model.Meeting, error)
	FindMeetings(ctx context.Context, opt FindMeetingsOptions) ([]model.Meeting, error)
	DeleteMeeting(ctx context.Context, id int64) (bool, error)
}
