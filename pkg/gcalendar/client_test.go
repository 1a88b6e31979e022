package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"task-intelligence/pkg/gcalendar"
)

const desktopCreds = `{
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

// newTestClient points a client at handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{
		Transport: hc.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gcalendar.NewWithHTTPClient(context.Background(), hc)
	if err != nil {
		t.Fatalf("NewWithHTTPClient() error = %v", err)
	}
	return client
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNewFromJSON(t *testing.T) {
	goodToken := writeFile(t, "token.json", `{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`)
	badToken := writeFile(t, "bad.json", `{"broken": true`)

	tests := []struct {
		name      string
		creds     string
		tokenPath string
		wantErr   bool
		wantIs    error
	}{
		{name: "unknown credentials", creds: `{"broken":true}`, tokenPath: goodToken, wantErr: true},
		{name: "desktop with token", creds: desktopCreds, tokenPath: goodToken},
		{name: "desktop with corrupt token", creds: desktopCreds, tokenPath: badToken, wantErr: true},
		{name: "desktop without token", creds: desktopCreds, tokenPath: filepath.Join(t.TempDir(), "missing.json"), wantErr: true, wantIs: gcalendar.ErrMissingToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gcalendar.NewFromJSON(context.Background(), []byte(tt.creds), tt.tokenPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFromJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	_, err := gcalendar.New(context.Background(), gcalendar.Config{
		CredentialsPath: filepath.Join(t.TempDir(), "nope.json"),
	})
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}

func TestNew_FromFiles(t *testing.T) {
	_, err := gcalendar.New(context.Background(), gcalendar.Config{
		CredentialsPath: writeFile(t, "creds.json", desktopCreds),
		TokenPath:       writeFile(t, "token.json", `{"access_token": "dummy", "token_type": "Bearer"}`),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestCreateEvent_Timed(t *testing.T) {
	var path string
	var got struct {
		Summary string `json:"summary"`
		Start   struct {
			DateTime string `json:"dateTime"`
			TimeZone string `json:"timeZone"`
		} `json:"start"`
		End struct {
			DateTime string `json:"dateTime"`
		} `json:"end"`
		ExtendedProperties *struct{} `json:"extendedProperties"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri"}`))
	})

	start := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Standup",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	if path != "/calendar/v3/calendars/primary/events" {
		t.Errorf("path = %q, want the primary calendar", path)
	}
	if got.Start.DateTime != "2025-03-14T09:30:00Z" || got.End.DateTime != "2025-03-14T10:30:00Z" {
		t.Errorf("start/end = %q/%q", got.Start.DateTime, got.End.DateTime)
	}
	if got.Start.TimeZone != "UTC" {
		t.Errorf("timeZone = %q", got.Start.TimeZone)
	}
	if got.ExtendedProperties != nil {
		t.Error("extended properties sent without a task uuid")
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" || event.AllDay {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestCreateEvent_AllDayWithTaskUUID(t *testing.T) {
	var path string
	var got struct {
		Start struct {
			Date     string `json:"date"`
			DateTime string `json:"dateTime"`
		} `json:"start"`
		End struct {
			Date string `json:"date"`
		} `json:"end"`
		ExtendedProperties struct {
			Private map[string]string `json:"private"`
		} `json:"extendedProperties"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"id": "event-1", "htmlLink": "https://calendar.google.com/e1"}`))
	})

	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "team@example.com",
		Summary:    "Water plants",
		StartTime:  day,
		EndTime:    day,
		AllDay:     true,
		TaskUUID:   "task-42",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	if path != "/calendar/v3/calendars/team@example.com/events" {
		t.Errorf("path = %q", path)
	}
	if got.Start.Date != "2025-03-14" || got.Start.DateTime != "" {
		t.Errorf("start = %+v, want date-only 2025-03-14", got.Start)
	}
	if got.End.Date != "2025-03-15" {
		t.Errorf("end date = %q, want 2025-03-15", got.End.Date)
	}
	if got.ExtendedProperties.Private["task_uuid"] != "task-42" {
		t.Errorf("private properties = %v", got.ExtendedProperties.Private)
	}
	if event.TaskUUID != "task-42" || !event.AllDay || !event.EndTime.Equal(day.AddDate(0, 0, 1)) {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestCreateEvent_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x"})
	if err == nil {
		t.Fatal("expected create event error")
	}
}
