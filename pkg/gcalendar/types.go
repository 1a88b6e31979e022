package gcalendar

import "time"

// Config locates the credentials the client authenticates with.
type Config struct {
	CredentialsPath string
	// TokenPath is only read for OAuth Desktop credentials. Defaults to token.json.
	TokenPath string
}

// CreateEventRequest describes the event mirroring one task.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
	AllDay      bool   // only StartTime's date is used
	TaskUUID    string
}

// Event is the created calendar event.
type Event struct {
	ID        string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
	AllDay    bool
	TaskUUID  string
}
