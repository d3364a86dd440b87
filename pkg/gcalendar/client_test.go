package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"meetbot/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	require.NoError(t, err)
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		assert.Error(t, err)
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), filepath.Join(dir, "missing.json"))
		assert.Error(t, err)
	})

	t.Run("installed app with saved token", func(t *testing.T) {
		require.NoError(t, gcalendar.SaveToken(tokenPath, &oauth2.Token{
			AccessToken: "dummy",
			TokenType:   "Bearer",
			Expiry:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		}))
		info, err := os.Stat(tokenPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		_, err = gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), tokenPath)
		assert.NoError(t, err)
	})

	t.Run("installed app with corrupt token", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"broken": true`), 0o600))
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), bad)
		assert.Error(t, err)
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath)
		assert.Error(t, err)
	})
}

func TestInstalledAppConfig(t *testing.T) {
	cfg, err := gcalendar.InstalledAppConfig([]byte(installedCreds))
	require.NoError(t, err)
	assert.Equal(t, "test-client-id.apps.googleusercontent.com", cfg.ClientID)
	assert.Contains(t, cfg.AuthCodeURL("state", oauth2.AccessTypeOffline), "access_type=offline")
}

func TestCreateEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/team/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "location": "Room 4"}`))
	})

	start := time.Date(2026, 2, 4, 15, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "team",
		Summary:    "Design Review",
		Location:   "Room 4",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Timezone:   "UTC",
		Private:    map[string]string{"meetbot_id": "7"},
	})
	require.NoError(t, err)
	assert.Equal(t, "event-123", event.ID)
	assert.Equal(t, "https://calendar.google.com/event-uri", event.HtmlLink)
	assert.Equal(t, "Design Review", got["summary"])
	assert.Equal(t, map[string]any{"private": map[string]any{"meetbot_id": "7"}}, got["extendedProperties"])
}

func TestCreateEventError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
	assert.Error(t, err)
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, client.DeleteEvent(context.Background(), "", "event-123"))
	assert.Error(t, client.DeleteEvent(context.Background(), "", "event-404"))
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/test-fail/events":
			w.WriteHeader(http.StatusInternalServerError)
		case "/calendar/v3/calendars/primary/events":
			_, _ = w.Write([]byte(`{
				"items": [
					{"id": "a", "summary": "All day", "start": {"date": "2026-02-04"}, "end": {"date": "2026-02-05"}},
					{"id": "b", "summary": "Timed", "start": {"dateTime": "2026-02-04T15:00:00Z"}, "end": {"dateTime": "2026-02-04T16:00:00Z"},
					 "extendedProperties": {"private": {"meetbot_id": "7"}}}
				]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	from := time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)
	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{TimeMin: from, TimeMax: from.Add(24 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, from, events[0].StartTime)
	assert.Equal(t, time.Date(2026, 2, 4, 15, 0, 0, 0, time.UTC), events[1].StartTime.UTC())
	assert.Equal(t, "7", events[1].Private["meetbot_id"])

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail", TimeMin: from, TimeMax: from})
	assert.Error(t, err)
}
