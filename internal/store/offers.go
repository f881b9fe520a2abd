// ABOUTME: Offer async actions: load, create, accept, refuse, delete
// ABOUTME: Accepting an offer also marks both referenced items unavailable locally

package store

import (
	"context"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/debuglog"
)

// LoadOffers replaces the offer collection from the backend
func (s *Store) LoadOffers(ctx context.Context) error {
	s.Dispatch(setLoadingOffers{true})

	offers, err := s.api.Offers(ctx)
	if err != nil {
		debuglog.Error("load offers", err)
		s.Dispatch(setError{"Failed to load offers."})
		s.Dispatch(setLoadingOffers{false})
		return err
	}

	s.Dispatch(setOffers{Offers: offers})
	return nil
}

// LoadOffer fetches one offer and makes it the current selection
func (s *Store) LoadOffer(ctx context.Context, id int) (*client.Offer, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	offer, err := s.api.Offer(ctx, id)
	if err != nil {
		debuglog.Error("load offer", err)
		s.Dispatch(setError{"Failed to load offer."})
		return nil, err
	}

	s.Dispatch(setCurrentOffer{Offer: offer})
	return offer, nil
}

// CreateOffer proposes a trade and prepends it to the collection
func (s *Store) CreateOffer(ctx context.Context, input client.OfferInput) (*client.Offer, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	offer, err := s.api.CreateOffer(ctx, input)
	if err != nil {
		debuglog.Error("create offer", err)
		s.Dispatch(setError{"Failed to create offer."})
		return nil, err
	}

	s.Dispatch(addOffer{Offer: *offer})
	s.AddNotification("Offer created successfully!", NoticeSuccess)
	return offer, nil
}

// AcceptOffer accepts an offer on one of the user's items. Beyond
// replacing the offer record, both referenced items are optimistically
// marked unavailable locally instead of refetching them; this is a
// documented post-condition of this one action.
func (s *Store) AcceptOffer(ctx context.Context, id int) (*client.Offer, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	offer, err := s.api.AcceptOffer(ctx, id)
	if err != nil {
		debuglog.Error("accept offer", err)
		s.Dispatch(setError{"Failed to accept offer."})
		return nil, err
	}

	s.Dispatch(updateOffer{Offer: *offer})
	s.Dispatch(setItemStatus{ID: offer.ItemDesired, Status: client.ItemUnavailable})
	if offer.ItemOffered != nil {
		s.Dispatch(setItemStatus{ID: *offer.ItemOffered, Status: client.ItemUnavailable})
	}
	s.AddNotification("Offer accepted!", NoticeSuccess)
	return offer, nil
}

// RefuseOffer declines an offer on one of the user's items
func (s *Store) RefuseOffer(ctx context.Context, id int) (*client.Offer, error) {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	offer, err := s.api.RefuseOffer(ctx, id)
	if err != nil {
		debuglog.Error("refuse offer", err)
		s.Dispatch(setError{"Failed to refuse offer."})
		return nil, err
	}

	s.Dispatch(updateOffer{Offer: *offer})
	s.AddNotification("Offer refused.", NoticeInfo)
	return offer, nil
}

// DeleteOffer withdraws an offer the user made
func (s *Store) DeleteOffer(ctx context.Context, id int) error {
	s.Dispatch(setLoading{true})
	defer s.Dispatch(setLoading{false})

	if err := s.api.DeleteOffer(ctx, id); err != nil {
		debuglog.Error("delete offer", err)
		s.Dispatch(setError{"Failed to withdraw offer."})
		return err
	}

	s.Dispatch(removeOffer{ID: id})
	s.AddNotification("Offer withdrawn.", NoticeInfo)
	return nil
}
