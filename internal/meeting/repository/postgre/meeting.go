package postgre

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
)

// CreateMeeting inserts a new Meeting row and returns the created entity.
func (r *implRepository) CreateMeeting(ctx context.Context, opt repository.CreateMeetingOptions) (model.Meeting, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.observe(ctx, "create_meeting", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.CreateMeeting")
	defer span.End()

	const query = `
		INSERT INTO meetings (date, title, start_time, end_time, description, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + meetingColumns

	var m model.Meeting
	m, err = scanMeeting(r.q.QueryRow(ctx, query,
		opt.Date, opt.Title, opt.StartTime, opt.EndTime, opt.Description, opt.Location,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMeeting"), err)
		return model.Meeting{}, repository.ErrFailedToInsert
	}
	return m, nil
}

// GetMeeting retrieves a single Meeting by id.
// Returns zero-value Meeting (ID == 0) when not found.
func (r *implRepository) GetMeeting(ctx context.Context, id int64) (model.Meeting, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.observe(ctx, "get_meeting", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.GetMeeting")
	defer span.End()

	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	var m model.Meeting
	m, err = scanMeeting(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return model.Meeting{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMeeting"), err)
		return model.Meeting{}, repository.ErrFailedToGet
	}
	return m, nil
}

// ListMeetings returns meetings on one date, or all of them.
func (r *implRepository) ListMeetings(ctx context.Context, opt repository.ListMeetingsOptions) ([]model.Meeting, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.observe(ctx, "list_meetings", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.ListMeetings")
	defer span.End()

	mods, args := r.buildListQuery(opt)
	var ms []model.Meeting
	ms, err = r.query(ctx, `SELECT `+meetingColumns+` FROM meetings`+mods+orderBy, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMeetings"), err)
		return nil, repository.ErrFailedToList
	}
	return ms, nil
}

// FindMeetings returns meetings whose title contains the fragment.
func (r *implRepository) FindMeetings(ctx context.Context, opt repository.FindMeetingsOptions) ([]model.Meeting, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.observe(ctx, "find_meetings", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.FindMeetings")
	defer span.End()

	mods, args := r.buildFindQuery(opt)
	var ms []model.Meeting
	ms, err = r.query(ctx, `SELECT `+meetingColumns+` FROM meetings`+mods+orderBy, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindMeetings"), err)
		return nil, repository.ErrFailedToList
	}
	return ms, nil
}

// DeleteMeeting removes a Meeting by id and reports whether a row went away.
func (r *implRepository) DeleteMeeting(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	var err error
	defer func() { r.metrics.observe(ctx, "delete_meeting", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.DeleteMeeting")
	defer span.End()

	tag, err := r.q.Exec(ctx, `DELETE FROM meetings WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMeeting"), err)
		return false, repository.ErrFailedToDelete
	}
	return tag.RowsAffected() > 0, nil
}

// WithinDateLock runs fn in a transaction holding a per-date advisory lock.
func (r *implRepository) WithinDateLock(ctx context.Context, date string, fn func(ctx context.Context, tx repository.MeetingRepository) error) error {
	start := time.Now()
	var err error
	defer func() { r.metrics.observe(ctx, "date_lock", start, err) }()

	ctx, span := r.tracer.Start(ctx, "repository.WithinDateLock")
	defer span.End()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("WithinDateLock"), err)
		return repository.ErrFailedToLock
	}

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, date); err != nil {
		_ = tx.Rollback(ctx)
		r.l.Errorf(ctx, "%s lock: %v", r.dsn("WithinDateLock"), err)
		return repository.ErrFailedToLock
	}

	if err = fn(ctx, r.withQuerier(tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("WithinDateLock"), err)
		return repository.ErrFailedToLock
	}
	return nil
}

func (r *implRepository) query(ctx context.Context, sql string, args ...any) ([]model.Meeting, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ms := []model.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, rows.Err()
}
