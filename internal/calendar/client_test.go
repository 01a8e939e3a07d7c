package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_NoTokenNotConnected(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused", CalendarID: "primary"})

	_, err := client.BusyEvents(context.Background(), "u1", time.Now(), time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, service.ErrCalendarNotConnected)

	_, err = client.Timezone(context.Background(), "u1")
	assert.ErrorIs(t, err, service.ErrCalendarNotConnected)
}

func TestClient_BusyEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "true", r.URL.Query().Get("singleEvents"))

		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{
					"summary": "Flight to Denver",
					"colorId": "11",
					"start":   map[string]string{"dateTime": "2026-03-02T09:00:00Z"},
					"end":     map[string]string{"dateTime": "2026-03-02T12:00:00Z"},
				},
				{
					"summary": "Team sync",
					"colorId": "4",
					"start":   map[string]string{"dateTime": "2026-03-03T10:00:00Z"},
					"end":     map[string]string{"dateTime": "2026-03-03T10:30:00Z"},
				},
				{
					"summary": "Company holiday",
					"start":   map[string]string{"date": "2026-03-04"},
					"end":     map[string]string{"date": "2026-03-05"},
				},
				{
					"summary": "Cancelled thing",
					"status":  "cancelled",
					"start":   map[string]string{"dateTime": "2026-03-05T10:00:00Z"},
					"end":     map[string]string{"dateTime": "2026-03-05T11:00:00Z"},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Token: "tok", CalendarID: "primary"})
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	events, err := client.BusyEvents(context.Background(), "u1", from, from.AddDate(0, 0, 7))

	require.NoError(t, err)
	require.Len(t, events, 2, "all-day and cancelled events are skipped")
	assert.Equal(t, "Flight to Denver", events[0].Title)
	assert.Equal(t, domain.TierHigh, events[0].Tier)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), events[0].Interval.Start)
	assert.Equal(t, domain.TierImportant, events[1].Tier)
}

func TestClient_Timezone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/primary", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"timeZone": "UTC"})
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Token: "tok", CalendarID: "primary"})
	loc, err := client.Timezone(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestClient_UnauthorizedMapsToNotConnected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Token: "stale", CalendarID: "primary"})
	_, err := client.BusyEvents(context.Background(), "u1", time.Now(), time.Now().Add(time.Hour))

	assert.ErrorIs(t, err, service.ErrCalendarNotConnected)
}
