// Package calendar reads busy events from a Google Calendar style REST API.
// It is a read-only adapter; the engine never writes to the calendar.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/service"
)

// Config holds calendar API settings.
type Config struct {
	BaseURL    string
	Token      string
	CalendarID string
}

// DefaultConfig returns settings for the public Google Calendar API.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://www.googleapis.com/calendar/v3",
		CalendarID: "primary",
	}
}

// LoadConfig reads calendar configuration from environment variables.
func LoadConfig() Config {
	cfg := DefaultConfig()
	cfg.Token = os.Getenv("GOOGLE_CALENDAR_TOKEN")
	if v := os.Getenv("TEMPO_CALENDAR_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TEMPO_CALENDAR_ID"); v != "" {
		cfg.CalendarID = v
	}
	return cfg
}

// Client implements service.CalendarReader over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a calendar reader. A client with no token reports
// service.ErrCalendarNotConnected on every call.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
			Timeout: 15 * time.Second,
		},
	}
}

type eventsResponse struct {
	Items []struct {
		Summary string    `json:"summary"`
		ColorID string    `json:"colorId"`
		Status  string    `json:"status"`
		Start   eventTime `json:"start"`
		End     eventTime `json:"end"`
	} `json:"items"`
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
}

func (c *Client) BusyEvents(ctx context.Context, userID string, from, to time.Time) ([]domain.BusyEvent, error) {
	if c.cfg.Token == "" {
		return nil, service.ErrCalendarNotConnected
	}

	q := url.Values{}
	q.Set("timeMin", from.Format(time.RFC3339))
	q.Set("timeMax", to.Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")
	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s",
		c.cfg.BaseURL, url.PathEscape(c.cfg.CalendarID), q.Encode())

	var parsed eventsResponse
	if err := c.get(ctx, endpoint, &parsed); err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}

	var out []domain.BusyEvent
	for _, item := range parsed.Items {
		if item.Status == "cancelled" {
			continue
		}
		// All-day events carry a date instead of a dateTime; they don't
		// block specific hours, so they are ignored.
		if item.Start.DateTime == "" || item.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			continue
		}
		iv := domain.NewInterval(start.In(from.Location()), end.In(from.Location()))
		if !iv.IsValid() {
			continue
		}
		out = append(out, domain.BusyEvent{
			Interval: iv,
			Title:    item.Summary,
			Tier:     domain.TierForColor(item.ColorID),
		})
	}
	return out, nil
}

func (c *Client) Timezone(ctx context.Context, userID string) (*time.Location, error) {
	if c.cfg.Token == "" {
		return nil, service.ErrCalendarNotConnected
	}

	endpoint := fmt.Sprintf("%s/calendars/%s", c.cfg.BaseURL, url.PathEscape(c.cfg.CalendarID))
	var parsed struct {
		TimeZone string `json:"timeZone"`
	}
	if err := c.get(ctx, endpoint, &parsed); err != nil {
		return nil, fmt.Errorf("reading calendar timezone: %w", err)
	}

	loc, err := time.LoadLocation(parsed.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", parsed.TimeZone, err)
	}
	return loc, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("calendar returned status %d: %w", resp.StatusCode, service.ErrCalendarNotConnected)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calendar returned status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

var _ service.CalendarReader = (*Client)(nil)
