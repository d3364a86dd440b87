package rabbit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetbot/internal/model"
)

type capture struct {
	contentType string
	bodies      [][]byte
	err         error
}

func (c *capture) Publish(_ context.Context, contentType string, body []byte) error {
	c.contentType = contentType
	c.bodies = append(c.bodies, body)
	return c.err
}

func TestHookPublishesLifecycle(t *testing.T) {
	pub := &capture{}
	h := New(pub)
	h.now = func() time.Time { return time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC) }

	m := model.Meeting{ID: 3, Date: "2026-02-04", Title: "Review", StartTime: "15:00", EndTime: "16:00"}
	require.NoError(t, h.MeetingScheduled(context.Background(), m))
	require.NoError(t, h.MeetingCancelled(context.Background(), m))

	require.Len(t, pub.bodies, 2)
	assert.Equal(t, "application/json", pub.contentType)

	var msg Message
	require.NoError(t, json.Unmarshal(pub.bodies[0], &msg))
	assert.Equal(t, EventScheduled, msg.Type)
	assert.Equal(t, int64(3), msg.Meeting.ID)
	assert.Equal(t, "15:00", msg.Meeting.StartTime)

	require.NoError(t, json.Unmarshal(pub.bodies[1], &msg))
	assert.Equal(t, EventCancelled, msg.Type)
	assert.NotContains(t, string(pub.bodies[1]), "location")
}

func TestHookReturnsPublishError(t *testing.T) {
	pub := &capture{err: errors.New("channel closed")}
	err := New(pub).MeetingScheduled(context.Background(), model.Meeting{ID: 1})
	assert.EqualError(t, err, "channel closed")
}
