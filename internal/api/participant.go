package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/plannit/tripkit/internal/domain"
)

type confirmParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type participantPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

type listParticipantsResponse struct {
	Participants []participantPayload `json:"participants"`
}

// ConfirmByParticipantID registers the invited guest's name and email against
// their participant record.
func (c *Client) ConfirmByParticipantID(ctx context.Context, participantID, name, email string) error {
	body := confirmParticipantRequest{Name: name, Email: email}
	path := "/participants/" + url.PathEscape(participantID) + "/confirm"
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("api.Client.ConfirmByParticipantID: %w", err)
	}
	return nil
}

// ListByTripID returns every participant invited to the trip.
func (c *Client) ListByTripID(ctx context.Context, tripID string) ([]domain.Participant, error) {
	var resp listParticipantsResponse
	path := "/trips/" + url.PathEscape(tripID) + "/participants"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("api.Client.ListByTripID: %w", err)
	}
	participants := make([]domain.Participant, len(resp.Participants))
	for i, p := range resp.Participants {
		participants[i] = domain.Participant{
			ID:          p.ID,
			Name:        p.Name,
			Email:       p.Email,
			IsConfirmed: p.IsConfirmed,
		}
	}
	return participants, nil
}
