package extractor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetbot/internal/extractor"
	"meetbot/pkg/datemath"
)

// Tuesday, 2026-02-03.
var fixedNow = time.Date(2026, 2, 3, 9, 15, 0, 0, time.UTC)

func newExtractor(t *testing.T, opts ...extractor.Option) *extractor.Extractor {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	opts = append([]extractor.Option{extractor.WithClock(func() time.Time { return fixedNow })}, opts...)
	return extractor.New(p, opts...)
}

func TestParseSchedule(t *testing.T) {
	t.Parallel()
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		want extractor.ScheduleRequest
	}{
		{
			name: "relative date with unmarked business hours",
			text: "schedule tomorrow 3 to 4 for project review",
			want: extractor.ScheduleRequest{Date: "2026-02-04", StartTime: "15:00", EndTime: "16:00", Title: "project review"},
		},
		{
			name: "half hours",
			text: "schedule tomorrow 3:30 to 4:30",
			want: extractor.ScheduleRequest{Date: "2026-02-04", StartTime: "15:30", EndTime: "16:30", Title: "Meeting"},
		},
		{
			name: "iso date and 24h range",
			text: "book 2026-02-10 09:00-10:00 budget sync",
			want: extractor.ScheduleRequest{Date: "2026-02-10", StartTime: "09:00", EndTime: "10:00", Title: "budget sync"},
		},
		{
			name: "us date with markers on both sides",
			text: "schedule a meeting about budget on 02/05/2026 from 10am to 11:30am",
			want: extractor.ScheduleRequest{Date: "2026-02-05", StartTime: "10:00", EndTime: "11:30", Title: "budget"},
		},
		{
			name: "month name date",
			text: "set up team meeting february 5 2 to 3pm",
			want: extractor.ScheduleRequest{Date: "2026-02-05", StartTime: "14:00", EndTime: "15:00", Title: "team meeting"},
		},
		{
			name: "day of month name",
			text: "schedule 10 to 11 on 5th of march review",
			want: extractor.ScheduleRequest{Date: "2026-03-05", StartTime: "10:00", EndTime: "11:00", Title: "review"},
		},
		{
			name: "past month name rolls to next year",
			text: "schedule jan 10 3 to 4 kickoff",
			want: extractor.ScheduleRequest{Date: "2027-01-10", StartTime: "15:00", EndTime: "16:00", Title: "kickoff"},
		},
		{
			name: "next weekday",
			text: "schedule call with Bob next friday 4-5pm",
			want: extractor.ScheduleRequest{Date: "2026-02-06", StartTime: "16:00", EndTime: "17:00", Title: "call with Bob"},
		},
		{
			name: "bare weekday",
			text: "schedule friday 10 to 11 retro",
			want: extractor.ScheduleRequest{Date: "2026-02-06", StartTime: "10:00", EndTime: "11:00", Title: "retro"},
		},
		{
			name: "bare weekday equal to today is next week",
			text: "tuesday 10 to 11 sync",
			want: extractor.ScheduleRequest{Date: "2026-02-10", StartTime: "10:00", EndTime: "11:00", Title: "sync"},
		},
		{
			name: "in n days",
			text: "schedule in 3 days 1 to 2 planning",
			want: extractor.ScheduleRequest{Date: "2026-02-06", StartTime: "13:00", EndTime: "14:00", Title: "planning"},
		},
		{
			name: "range digits next to a month name",
			text: "schedule tomorrow 3 to 4 march planning",
			want: extractor.ScheduleRequest{Date: "2026-02-04", StartTime: "15:00", EndTime: "16:00", Title: "march planning"},
		},
		{
			name: "noon keyword",
			text: "lunch with design today noon to 1",
			want: extractor.ScheduleRequest{Date: "2026-02-03", StartTime: "12:00", EndTime: "13:00", Title: "lunch with design"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ParseSchedule(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScheduleErrors(t *testing.T) {
	t.Parallel()
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		kind extractor.ErrorKind
	}{
		{name: "no time range", text: "schedule sometime for a chat", kind: extractor.KindNoTimeRange},
		{name: "no date", text: "schedule 3 to 4 for review", kind: extractor.KindNoDate},
		{name: "end before start", text: "schedule tomorrow 4 to 3", kind: extractor.KindInvalidRange},
		{name: "minutes out of range", text: "schedule tomorrow 3:75 to 4", kind: extractor.KindInvalidRange},
		{name: "hour out of range", text: "schedule tomorrow 25 to 26", kind: extractor.KindInvalidRange},
		{name: "marker on 24h hour", text: "schedule tomorrow 13pm to 14", kind: extractor.KindInvalidRange},
		{name: "impossible calendar date", text: "schedule 2026-02-30 3 to 4", kind: extractor.KindInvalidDate},
		{name: "invalid range after iso date", text: "book 2026-02-10 16:00-15:00 sync", kind: extractor.KindInvalidRange},
		{name: "empty", text: "   ", kind: extractor.KindUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ParseSchedule(tt.text)
			require.Error(t, err)

			var perr *extractor.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.text, perr.Text)
			assert.True(t, errors.Is(err, &extractor.ParseError{Kind: tt.kind}))
		})
	}
}

func TestAMPMPolicy(t *testing.T) {
	t.Parallel()
	e := newExtractor(t)

	tests := []struct {
		rng       string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{rng: "3 to 4", wantStart: "15:00", wantEnd: "16:00"},
		{rng: "9 to 5", wantStart: "09:00", wantEnd: "17:00"},
		{rng: "8 to 9", wantStart: "08:00", wantEnd: "09:00"},
		{rng: "11 to 1", wantStart: "11:00", wantEnd: "13:00"},
		{rng: "11am to 1", wantErr: true},
		{rng: "11 to 1pm", wantErr: true},
		{rng: "11am to 1pm", wantStart: "11:00", wantEnd: "13:00"},
		{rng: "12 to 1pm", wantStart: "12:00", wantEnd: "13:00"},
		{rng: "12am to 1am", wantStart: "00:00", wantEnd: "01:00"},
		{rng: "10am to 12", wantStart: "10:00", wantEnd: "12:00"},
		{rng: "10-11am", wantStart: "10:00", wantEnd: "11:00"},
		{rng: "3-4 p.m.", wantStart: "15:00", wantEnd: "16:00"},
		{rng: "9am to 5", wantStart: "09:00", wantEnd: "05:00", wantErr: true},
		{rng: "07:00 to 08:00", wantStart: "07:00", wantEnd: "08:00"},
		{rng: "13:00 to 14:30", wantStart: "13:00", wantEnd: "14:30"},
		{rng: "11pm to midnight", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.rng, func(t *testing.T) {
			got, err := e.ParseSchedule("tomorrow " + tt.rng)
			if tt.wantErr {
				require.ErrorIs(t, err, extractor.ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, got.StartTime)
			assert.Equal(t, tt.wantEnd, got.EndTime)
		})
	}
}

func TestTitleExtraction(t *testing.T) {
	t.Parallel()

	e := newExtractor(t)
	a, err := e.ParseSchedule("project review tomorrow 3 to 4")
	require.NoError(t, err)
	b, err := e.ParseSchedule("tomorrow 3 to 4 project review")
	require.NoError(t, err)
	assert.Equal(t, a.Title, b.Title)
	assert.Equal(t, "project review", a.Title)

	short := newExtractor(t, extractor.WithTitleMaxLen(5))
	got, err := short.ParseSchedule("schedule tomorrow 3 to 4 quarterly planning")
	require.NoError(t, err)
	assert.Equal(t, "quart", got.Title)
}

func TestParseCancel(t *testing.T) {
	t.Parallel()
	e := newExtractor(t)

	tests := []struct {
		name string
		text string
		want extractor.CancelRequest
	}{
		{name: "meeting id", text: "cancel meeting 5", want: extractor.CancelRequest{MeetingID: 5}},
		{name: "hash id", text: "delete #12", want: extractor.CancelRequest{MeetingID: 12}},
		{name: "id keyword", text: "remove meeting id 7", want: extractor.CancelRequest{MeetingID: 7}},
		{name: "title and date", text: "cancel standup tomorrow", want: extractor.CancelRequest{TitleFragment: "standup", Date: "2026-02-04"}},
		{name: "title only", text: "cancel the Project Review meeting", want: extractor.CancelRequest{TitleFragment: "project review"}},
		{name: "phrasal verb", text: "call off standup on friday", want: extractor.CancelRequest{TitleFragment: "standup", Date: "2026-02-06"}},
		{name: "slash date is not an id", text: "cancel 2/4 standup", want: extractor.CancelRequest{TitleFragment: "standup", Date: "2026-02-04"}},
		{name: "iso date is not an id", text: "cancel 2026-02-04 standup", want: extractor.CancelRequest{TitleFragment: "standup", Date: "2026-02-04"}},
		{name: "id next to a date", text: "cancel meeting 5 tomorrow", want: extractor.CancelRequest{MeetingID: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ParseCancel(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.MeetingID > 0, got.ByID())
		})
	}

	t.Run("nothing to identify", func(t *testing.T) {
		_, err := e.ParseCancel("cancel tomorrow")
		require.ErrorIs(t, err, extractor.ErrUnrecognized)
	})
}

func TestIntentKeywords(t *testing.T) {
	t.Parallel()

	assert.True(t, extractor.IsCancelIntent("please drop the sync"))
	assert.True(t, extractor.IsCancelIntent("Call off the retro"))
	assert.False(t, extractor.IsCancelIntent("schedule dropbox review tomorrow 3 to 4"))

	assert.True(t, extractor.IsListIntent("show meetings tomorrow"))
	assert.True(t, extractor.IsListIntent("what do I have on friday"))
	assert.False(t, extractor.IsListIntent("book tomorrow 3 to 4"))

	assert.True(t, extractor.IsScheduleIntent("Set up a call"))
	assert.True(t, extractor.HasTimeRange("from 10am to 11"))
	assert.False(t, extractor.HasTimeRange("sometime soon"))
	assert.False(t, extractor.HasTimeRange("meetings on 2026-02-04"))
}

func TestParseList(t *testing.T) {
	t.Parallel()
	e := newExtractor(t)

	tests := []struct {
		text string
		want string
	}{
		{text: "show meetings tomorrow", want: "2026-02-04"},
		{text: "list all meetings", want: ""},
		{text: "upcoming meetings", want: ""},
		{text: "what's on 2026-02-10", want: "2026-02-10"},
		{text: "meetings", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := e.ParseList(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Date)
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	e := newExtractor(t)

	got, err := e.ParseDate("tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-04", got)

	got, err = e.ParseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got)

	_, err = e.ParseDate("whenever")
	require.ErrorIs(t, err, extractor.ErrNoDate)

	_, err = e.ParseDate("in 99999999999999999999 days")
	require.ErrorIs(t, err, extractor.ErrInvalidDate)
}
