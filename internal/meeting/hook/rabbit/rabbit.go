package rabbit

import (
	"context"
	"encoding/json"
	"time"

	"meetbot/internal/meeting"
	"meetbot/internal/model"
)

// Lifecycle event types.
const (
	EventScheduled = "meeting.scheduled"
	EventCancelled = "meeting.cancelled"
)

const contentTypeJSON = "application/json"

// Publisher is satisfied by *rabbit.Provider.
type Publisher interface {
	Publish(ctx context.Context, contentType string, body []byte) error
}

// Message is the JSON body published for each lifecycle change.
type Message struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Meeting    Meeting   `json:"meeting"`
}

type Meeting struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Hook publishes lifecycle messages.
type Hook struct {
	pub Publisher
	now func() time.Time
}

var _ meeting.Hook = (*Hook)(nil)

func New(pub Publisher) *Hook {
	return &Hook{pub: pub, now: time.Now}
}

func (h *Hook) Name() string { return "rabbitmq" }

func (h *Hook) MeetingScheduled(ctx context.Context, m model.Meeting) error {
	return h.publish(ctx, EventScheduled, m)
}

func (h *Hook) MeetingCancelled(ctx context.Context, m model.Meeting) error {
	return h.publish(ctx, EventCancelled, m)
}

func (h *Hook) publish(ctx context.Context, typ string, m model.Meeting) error {
	body, err := json.Marshal(Message{
		Type:       typ,
		OccurredAt: h.now().UTC(),
		Meeting: Meeting{
			ID:          m.ID,
			Date:        m.Date,
			Title:       m.Title,
			StartTime:   m.StartTime,
			EndTime:     m.EndTime,
			Description: m.Description,
			Location:    m.Location,
		},
	})
	if err != nil {
		return err
	}
	return h.pub.Publish(ctx, contentTypeJSON, body)
}
