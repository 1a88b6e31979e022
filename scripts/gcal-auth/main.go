// scripts/gcal-auth/main.go
//
// Authorizes the API server to write instance events to Google Calendar when
// it is configured with OAuth Desktop credentials instead of a service account.
//
// Usage:
//   go run ./scripts/gcal-auth [credentials.json] [token.json]
//
// Open the printed URL, approve access, paste the code back and the token is
// written next to the server's working directory.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := "token.json"
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", credsPath, err)
	}

	// Instance generation only inserts events.
	config, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (is %q an OAuth Desktop App file?)", err, credsPath)
	}

	fmt.Println("1. Open this URL and sign in with the calendar owner's account:")
	fmt.Println()
	fmt.Println("  ", config.AuthCodeURL("task-intelligence", oauth2.AccessTypeOffline))
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", tokenPath, err)
	}

	fmt.Printf("\nSaved %s. Set GOOGLE_CALENDAR_CREDENTIALS_PATH=%s and restart the API server.\n", tokenPath, credsPath)
}
