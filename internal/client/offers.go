// ABOUTME: Offer endpoints for the TrocaMat API client
// ABOUTME: CRUD plus the accept/refuse state transitions

package client

import (
	"context"
	"fmt"
	"net/http"
)

// Offers calls GET /offers/. The backend scopes the result to offers
// the authenticated user made or received.
func (c *Client) Offers(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	if err := c.do(ctx, http.MethodGet, "/offers/", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Offer calls GET /offers/{id}/
func (c *Client) Offer(ctx context.Context, id int) (*Offer, error) {
	var offer Offer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/offers/%d/", id), nil, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// CreateOffer calls POST /offers/
func (c *Client) CreateOffer(ctx context.Context, input OfferInput) (*Offer, error) {
	var offer Offer
	if err := c.do(ctx, http.MethodPost, "/offers/", input, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// UpdateOffer calls PUT /offers/{id}/
func (c *Client) UpdateOffer(ctx context.Context, id int, input OfferInput) (*Offer, error) {
	var offer Offer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/offers/%d/", id), input, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// DeleteOffer calls DELETE /offers/{id}/
func (c *Client) DeleteOffer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/offers/%d/", id), nil, nil)
}

// AcceptOffer calls POST /offers/{id}/accept/ and returns the updated offer
func (c *Client) AcceptOffer(ctx context.Context, id int) (*Offer, error) {
	var offer Offer
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/offers/%d/accept/", id), nil, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// RefuseOffer calls POST /offers/{id}/refuse/ and returns the updated offer
func (c *Client) RefuseOffer(ctx context.Context, id int) (*Offer, error) {
	var offer Offer
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/offers/%d/refuse/", id), nil, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}
