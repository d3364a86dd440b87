package meeting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetbot/internal/model"
)

func TestNewMeetingViewCreatedAt(t *testing.T) {
	tests := []struct {
		name    string
		created time.Time
		want    string
	}{
		{name: "stamped", created: time.Date(2026, 2, 3, 9, 15, 0, 0, time.UTC), want: `"created_at":"2026-02-03T09:15:00Z"`},
		{name: "zero is omitted", created: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := model.Meeting{ID: 1, Date: "2026-02-04", Title: "Standup", StartTime: "09:00", EndTime: "09:15", CreatedAt: tt.created}
			b, err := json.Marshal(NewMeetingView(m))
			require.NoError(t, err)
			if tt.want == "" {
				assert.NotContains(t, string(b), "created_at")
				return
			}
			assert.Contains(t, string(b), tt.want)
		})
	}
}
