package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"tailortalk/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// maxUpcomingEvents caps how many events a single turn ever looks at.
const maxUpcomingEvents = 10

// GoogleClient talks to the Google Calendar API using an OAuth token cached
// on disk. Obtaining the initial token (consent flow) is an offline setup
// step; at runtime a missing or invalid token is an error.
type GoogleClient struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleClient builds a calendar client from an OAuth2 client-secrets file
// and a cached token file.
func NewGoogleClient(ctx context.Context, credentialsFile, tokenFile, calendarID string) (*GoogleClient, error) {
	secrets, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read client secrets file: %w", err)
	}

	conf, err := google.ConfigFromJSON(secrets, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secrets: %w", err)
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("no cached OAuth token (run the authorization flow first): %w", err)
	}

	// The token source refreshes expired tokens transparently.
	httpClient := oauth2.NewClient(ctx, conf.TokenSource(ctx, token))
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleClient{svc: svc, calendarID: calendarID}, nil
}

// tokenFromFile loads a cached oauth2 token from a JSON file.
func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token file: %w", err)
	}
	return token, nil
}

// ListUpcomingEvents fetches the next events from now, expanded to single
// events and ordered by start time.
func (c *GoogleClient) ListUpcomingEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	result, err := c.svc.Events.List(c.calendarID).
		TimeMin(time.Now().Format(time.RFC3339)).
		MaxResults(maxUpcomingEvents).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		events = append(events, toCalendarEvent(item))
	}
	return events, nil
}

// CreateEvent inserts a new event and returns its HTML link.
func (c *GoogleClient) CreateEvent(ctx context.Context, start, end time.Time, summary string) (string, error) {
	event := &gcal.Event{
		Summary: summary,
		Start:   &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:     &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return created.HtmlLink, nil
}

// toCalendarEvent maps an API event onto the internal model. All-day events
// carry no dateTime and map to a zero start, which downstream code skips.
func toCalendarEvent(item *gcal.Event) models.CalendarEvent {
	ev := models.CalendarEvent{
		ID:       item.Id,
		Summary:  item.Summary,
		HTMLLink: item.HtmlLink,
	}
	if item.Start != nil && item.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			ev.Start = t.Local()
		}
	}
	if item.End != nil && item.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
			ev.End = t.Local()
		}
	}
	return ev
}
