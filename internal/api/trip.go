package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/plannit/tripkit/internal/domain"
)

// createTripRequest is the POST /trips body. Timestamps marshal as RFC 3339.
type createTripRequest struct {
	Destination    string    `json:"destination"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	EmailsToInvite []string  `json:"emails_to_invite"`
}

type createTripResponse struct {
	TripID string `json:"tripId"`
}

type tripPayload struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

type getTripResponse struct {
	Trip tripPayload `json:"trip"`
}

type updateTripRequest struct {
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// Create registers a new trip and returns its remote id.
func (c *Client) Create(ctx context.Context, destination string, startsAt, endsAt time.Time, emails []string) (string, error) {
	if emails == nil {
		emails = []string{}
	}
	body := createTripRequest{
		Destination:    destination,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		EmailsToInvite: emails,
	}
	var resp createTripResponse
	if err := c.do(ctx, http.MethodPost, "/trips", body, &resp); err != nil {
		return "", fmt.Errorf("api.Client.Create: %w", err)
	}
	return resp.TripID, nil
}

// GetByID fetches one trip. Returns domain.ErrNotFound when the remote
// reports the trip does not exist.
func (c *Client) GetByID(ctx context.Context, tripID string) (domain.Trip, error) {
	var resp getTripResponse
	err := c.do(ctx, http.MethodGet, "/trips/"+url.PathEscape(tripID), nil, &resp)
	if err != nil {
		var se errStatus
		if errors.As(err, &se) && se.status == http.StatusNotFound {
			return domain.Trip{}, fmt.Errorf("api.Client.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Trip{}, fmt.Errorf("api.Client.GetByID: %w", err)
	}
	return domain.Trip{
		ID:          resp.Trip.ID,
		Destination: resp.Trip.Destination,
		StartsAt:    resp.Trip.StartsAt,
		EndsAt:      resp.Trip.EndsAt,
		IsConfirmed: resp.Trip.IsConfirmed,
	}, nil
}

// Update replaces the trip's destination and date range.
func (c *Client) Update(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error {
	body := updateTripRequest{Destination: destination, StartsAt: startsAt, EndsAt: endsAt}
	if err := c.do(ctx, http.MethodPut, "/trips/"+url.PathEscape(tripID), body, nil); err != nil {
		return fmt.Errorf("api.Client.Update: %w", err)
	}
	return nil
}
