// ABOUTME: Item endpoints for the TrocaMat API client
// ABOUTME: CRUD, status changes, and search with query string filters

package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Items calls GET /items/
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/items/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchItems calls GET /items/ with search and filter parameters
func (c *Client) SearchItems(ctx context.Context, query string, filters SearchFilters) ([]Item, error) {
	params := url.Values{}
	if query != "" {
		params.Set("search", query)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.Status != "" {
		params.Set("status", filters.Status)
	}
	if filters.Location != "" {
		params.Set("location", filters.Location)
	}

	path := "/items/"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var items []Item
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Item calls GET /items/{id}/
func (c *Client) Item(ctx context.Context, id int) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d/", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem calls POST /items/
func (c *Client) CreateItem(ctx context.Context, input ItemInput) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPost, "/items/", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem calls PUT /items/{id}/
func (c *Client) UpdateItem(ctx context.Context, id int, input ItemInput) (*Item, error) {
	var item Item
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/items/%d/", id), input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem calls DELETE /items/{id}/ (backend answers 204)
func (c *Client) DeleteItem(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d/", id), nil, nil)
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeItemStatus calls PATCH /items/{id}/change_status/
func (c *Client) ChangeItemStatus(ctx context.Context, id int, status string) (*Item, error) {
	var item Item
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/items/%d/change_status/", id), changeStatusRequest{Status: status}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
