// ABOUTME: Item async actions: load, search, create, update, delete, status
// ABOUTME: Each follows the loading/success/error/cleanup dispatch protocol

package store

import (
	"context"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/debuglog"
)

// LoadItems replaces the item collection from the backend
func (s *Store) LoadItems(ctx context.Context) error {
	s.Dispatch(setLoadingItems{true})

	items, err := s.api.Items(ctx)
	if err != nil {
		debuglog.Error("load items", err)
		s.Dispatch(setError{"Failed to load items."})
		s.Dispatch(setLoadingItems{false})
		return err
	}

	s.Dispatch(setItems{Items: items})
	return nil
}

// SearchItems replaces the item collection with search results.
// Concurrent searches race: the last response to arrive wins,
// regardless of dispatch order of the requests.
func (s *Store) SearchItems(ctx context.Context, query string, filters client.SearchFilters) error {
	s.Dispatch(setLoadingItems{true})

	items, err := s.api.SearchItems(ctx, query, filters)
	if err != nil {
		debuglog.Error("search items", err)
		s.Dispatch(setError{"Failed to search items."})
		s.Dispatch(setLoadingItems{false})
		return err
	}

	s.Dispatch(setItems{Items: items})
	return nil
}

// LoadItem fetches one item and makes it the current selection
func (s *Store) LoadItem(ctx context.Context, id int) (*client.Item, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	item, err := s.api.Item(ctx, id)
	if err != nil {
		debuglog.Error("load item", err)
		s.Dispatch(setError{"Failed to load item."})
		return nil, err
	}

	s.Dispatch(setCurrentItem{Item: item})
	return item, nil
}

// CreateItem creates a listing and prepends it to the collection
func (s *Store) CreateItem(ctx context.Context, input client.ItemInput) (*client.Item, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	item, err := s.api.CreateItem(ctx, input)
	if err != nil {
		debuglog.Error("create item", err)
		s.Dispatch(setError{"Failed to create item."})
		return nil, err
	}

	s.Dispatch(addItem{Item: *item})
	s.AddNotification("Item created successfully!", NoticeSuccess)
	return item, nil
}

// UpdateItem saves edits to a listing and replaces it in the collection
func (s *Store) UpdateItem(ctx context.Context, id int, input client.ItemInput) (*client.Item, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	item, err := s.api.UpdateItem(ctx, id, input)
	if err != nil {
		debuglog.Error("update item", err)
		s.Dispatch(setError{"Failed to update item."})
		return nil, err
	}

	s.Dispatch(updateItem{Item: *item})
	s.AddNotification("Item updated successfully!", NoticeSuccess)
	return item, nil
}

// DeleteItem removes a listing. If it was the current selection the
// selection is cleared by the reducer.
func (s *Store) DeleteItem(ctx context.Context, id int) error {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	if err := s.api.DeleteItem(ctx, id); err != nil {
		debuglog.Error("delete item", err)
		s.Dispatch(setError{"Failed to remove item."})
		return err
	}

	s.Dispatch(removeItem{ID: id})
	s.AddNotification("Item removed.", NoticeSuccess)
	return nil
}

// ChangeItemStatus flips a listing between available and unavailable
func (s *Store) ChangeItemStatus(ctx context.Context, id int, status string) (*client.Item, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	item, err := s.api.ChangeItemStatus(ctx, id, status)
	if err != nil {
		debuglog.Error("change item status", err)
		s.Dispatch(setError{"Failed to change item status."})
		return nil, err
	}

	s.Dispatch(updateItem{Item: *item})
	s.AddNotification("Item status updated.", NoticeSuccess)
	return item, nil
}
