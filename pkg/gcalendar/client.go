package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultTokenPath  = "token.json"

	// taskUUIDProperty links an event back to the task it mirrors.
	taskUUIDProperty = "task_uuid"
)

// ErrMissingToken is returned for OAuth Desktop credentials without a saved token.
var ErrMissingToken = errors.New("gcalendar: OAuth desktop credentials need a token, run scripts/gcal-auth")

// Client inserts task events into Google Calendar.
type Client struct {
	service *calendar.Service
}

// New reads cfg.CredentialsPath and builds a client from it.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	return NewFromJSON(ctx, data, cfg.TokenPath)
}

// NewFromJSON accepts service account JSON, or OAuth Desktop JSON paired with
// the token stored at tokenPath.
func NewFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, tokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewWithHTTPClient builds a client whose requests go through hc.
func NewWithHTTPClient(ctx context.Context, hc *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(hc))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	conf, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: unsupported credentials: %w", err)
	}

	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingToken, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse %s: %w", tokenPath, err)
	}
	return conf.TokenSource(ctx, &tok), nil
}

// CreateEvent inserts one event. All-day events span StartTime's date only.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	end := req.EndTime
	if req.AllDay {
		end = req.StartTime.AddDate(0, 0, 1)
	}

	ev := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventDateTime(req.StartTime, req.Timezone, req.AllDay),
		End:         eventDateTime(end, req.Timezone, req.AllDay),
	}
	if req.TaskUUID != "" {
		ev.ExtendedProperties = &calendar.EventExtendedProperties{
			Private: map[string]string{taskUUIDProperty: req.TaskUUID},
		}
	}

	calID := req.CalendarID
	if calID == "" {
		calID = defaultCalendarID
	}
	created, err := c.service.Events.Insert(calID, ev).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   end,
		AllDay:    req.AllDay,
		TaskUUID:  req.TaskUUID,
	}, nil
}

func eventDateTime(t time.Time, tz string, allDay bool) *calendar.EventDateTime {
	if allDay {
		return &calendar.EventDateTime{Date: t.Format(time.DateOnly)}
	}
	return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: tz}
}
