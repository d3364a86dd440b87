package postgre

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetbot/internal/meeting/repository"
	"meetbot/internal/model"
	"meetbot/pkg/log"
)

var columns = []string{"id", "date", "title", "start_time", "end_time", "description", "location", "created_at"}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *implRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock, log.NewNop()).(*implRepository)
}

func TestCreateMeeting(t *testing.T) {
	t.Parallel()
	now := time.Now().Truncate(time.Second)
	opt := repository.CreateMeetingOptions{Date: "2026-02-04", Title: "Design Review", StartTime: "15:00", EndTime: "16:00"}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      model.Meeting
		wantErr   error
	}{
		{
			name: "success",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO meetings").
					WithArgs("2026-02-04", "Design Review", "15:00", "16:00", "", "").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow(int64(7), "2026-02-04", "Design Review", "15:00", "16:00", "", "", now))
			},
			want: model.Meeting{ID: 7, Date: "2026-02-04", Title: "Design Review", StartTime: "15:00", EndTime: "16:00", CreatedAt: now},
		},
		{
			name: "insert failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO meetings").
					WithArgs("2026-02-04", "Design Review", "15:00", "16:00", "", "").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: repository.ErrFailedToInsert,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, r := newMock(t)
			tt.mockSetup(mock)

			got, err := r.CreateMeeting(context.Background(), opt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMeetingNotFoundIsZero(t *testing.T) {
	t.Parallel()
	mock, r := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM meetings WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	got, err := r.GetMeeting(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListMeetings(t *testing.T) {
	t.Parallel()
	now := time.Now().Truncate(time.Second)

	t.Run("by date", func(t *testing.T) {
		mock, r := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM meetings WHERE date = \$1 ORDER BY date, start_time, id`).
			WithArgs("2026-02-04").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(1), "2026-02-04", "Standup", "09:00", "09:15", "", "", now).
				AddRow(int64(2), "2026-02-04", "Review", "15:00", "16:00", "", "Room 4", now))

		got, err := r.ListMeetings(context.Background(), repository.ListMeetingsOptions{Date: "2026-02-04"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Room 4", got[1].Location)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all dates, empty", func(t *testing.T) {
		mock, r := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM meetings ORDER BY date, start_time, id`).
			WillReturnRows(pgxmock.NewRows(columns))

		got, err := r.ListMeetings(context.Background(), repository.ListMeetingsOptions{})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		mock, r := newMock(t)
		mock.ExpectQuery(`SELECT (.+) FROM meetings`).WillReturnError(errors.New("timeout"))

		_, err := r.ListMeetings(context.Background(), repository.ListMeetingsOptions{})
		assert.ErrorIs(t, err, repository.ErrFailedToList)
	})
}

func TestFindMeetingsEscapesFragment(t *testing.T) {
	t.Parallel()
	mock, r := newMock(t)
	mock.ExpectQuery(`SELECT (.+) FROM meetings WHERE title ILIKE (.+) AND date = \$2`).
		WithArgs(`50\%\_off`, "2026-02-04").
		WillReturnRows(pgxmock.NewRows(columns))

	got, err := r.FindMeetings(context.Background(), repository.FindMeetingsOptions{TitleFragment: "50%_off", Date: "2026-02-04"})
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMeeting(t *testing.T) {
	t.Parallel()
	mock, r := newMock(t)
	mock.ExpectExec(`DELETE FROM meetings WHERE id = \$1`).WithArgs(int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM meetings WHERE id = \$1`).WithArgs(int64(3)).WillReturnResult(pgxmock.NewResult("DELETE", 0))

	ok, err := r.DeleteMeeting(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteMeeting(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinDateLock(t *testing.T) {
	t.Parallel()
	now := time.Now().Truncate(time.Second)
	boom := errors.New("boom")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(ctx context.Context, tx repository.MeetingRepository) error
		wantErr   error
	}{
		{
			name: "commits work done inside the lock",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs("2026-02-04").WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery("INSERT INTO meetings").
					WithArgs("2026-02-04", "Sync", "10:00", "11:00", "", "").
					WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), "2026-02-04", "Sync", "10:00", "11:00", "", "", now))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx repository.MeetingRepository) error {
				_, err := tx.CreateMeeting(ctx, repository.CreateMeetingOptions{Date: "2026-02-04", Title: "Sync", StartTime: "10:00", EndTime: "11:00"})
				return err
			},
		},
		{
			name: "rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs("2026-02-04").WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectRollback()
			},
			fn:      func(context.Context, repository.MeetingRepository) error { return boom },
			wantErr: boom,
		},
		{
			name: "begin failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			fn:      func(context.Context, repository.MeetingRepository) error { return nil },
			wantErr: repository.ErrFailedToLock,
		},
		{
			name: "commit failure",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WithArgs("2026-02-04").WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
				mock.ExpectRollback()
			},
			fn:      func(context.Context, repository.MeetingRepository) error { return nil },
			wantErr: repository.ErrFailedToLock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, r := newMock(t)
			tt.mockSetup(mock)

			err := r.WithinDateLock(context.Background(), "2026-02-04", tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrate(t *testing.T) {
	t.Parallel()
	mock, _ := newMock(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS meetings").WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	require.NoError(t, Migrate(context.Background(), mock))

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS meetings").WillReturnError(errors.New("permission denied"))
	assert.ErrorIs(t, Migrate(context.Background(), mock), repository.ErrFailedToMigrate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}
