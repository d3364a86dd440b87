package gcal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"meetbot/internal/meeting"
	"meetbot/internal/model"
	"meetbot/pkg/gcalendar"
	"meetbot/pkg/log"
)

const (
	eventCacheSize = 4096
	privateIDKey   = "meetbot_id"
)

// EventClient is the part of gcalendar.Client the hook needs.
type EventClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config selects the target calendar and the zone meeting times are read in.
type Config struct {
	CalendarID string
	Timezone   string
}

// Hook mirrors scheduled meetings to Google Calendar and removes them on cancel.
type Hook struct {
	client     EventClient
	calendarID string
	timezone   string
	loc        *time.Location
	events     *lru.Cache[int64, string]
	l          log.Logger
}

var _ meeting.Hook = (*Hook)(nil)

// New creates a Google Calendar hook.
func New(client EventClient, cfg Config, l log.Logger) (*Hook, error) {
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("gcal hook: invalid timezone %q: %w", cfg.Timezone, err)
	}
	events, err := lru.New[int64, string](eventCacheSize)
	if err != nil {
		return nil, err
	}
	return &Hook{
		client:     client,
		calendarID: cfg.CalendarID,
		timezone:   cfg.Timezone,
		loc:        loc,
		events:     events,
		l:          l,
	}, nil
}

func (h *Hook) Name() string { return "gcal" }

func (h *Hook) MeetingScheduled(ctx context.Context, m model.Meeting) error {
	start, err := m.Start(h.loc)
	if err != nil {
		return err
	}
	end, err := m.End(h.loc)
	if err != nil {
		return err
	}

	event, err := h.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  h.calendarID,
		Summary:     m.Title,
		Description: m.Description,
		Location:    m.Location,
		StartTime:   start,
		EndTime:     end,
		Timezone:    h.timezone,
		Private:     map[string]string{privateIDKey: strconv.FormatInt(m.ID, 10)},
	})
	if err != nil {
		return err
	}

	h.events.Add(m.ID, event.ID)
	h.l.Debugf(ctx, "gcal.MeetingScheduled: meeting %d mirrored as %s", m.ID, event.ID)
	return nil
}

// MeetingCancelled deletes the mirrored event. Meetings this process never
// mirrored are left alone.
func (h *Hook) MeetingCancelled(ctx context.Context, m model.Meeting) error {
	eventID, ok := h.events.Get(m.ID)
	if !ok {
		return nil
	}
	if err := h.client.DeleteEvent(ctx, h.calendarID, eventID); err != nil {
		return err
	}
	h.events.Remove(m.ID)
	return nil
}
