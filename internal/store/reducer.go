// ABOUTME: Pure reduction function mapping (state, action) to a new state
// ABOUTME: Never mutates the prior snapshot; slices are rebuilt on write

package store

import "github.com/Nelson-esilva/Trade-Site/internal/client"

// reduce computes the next state. It is the only place state changes,
// and it is deterministic: the same state and action always produce
// the same result.
func reduce(s State, a Action) State {
	switch a := a.(type) {
	case setUser:
		s.User = a.User
		s.IsAuthenticated = a.User != nil
		return s

	case logout:
		s.User = nil
		s.IsAuthenticated = false
		return s

	case setItems:
		s.Items = a.Items
		s.LoadingItems = false
		return s

	case setCurrentItem:
		s.CurrentItem = a.Item
		return s

	case addItem:
		// Most recent first
		items := make([]client.Item, 0, len(s.Items)+1)
		items = append(items, a.Item)
		items = append(items, s.Items...)
		s.Items = items
		return s

	case updateItem:
		items := make([]client.Item, len(s.Items))
		for i, item := range s.Items {
			if item.ID == a.Item.ID {
				items[i] = a.Item
			} else {
				items[i] = item
			}
		}
		s.Items = items
		if s.CurrentItem != nil && s.CurrentItem.ID == a.Item.ID {
			updated := a.Item
			s.CurrentItem = &updated
		}
		return s

	case removeItem:
		items := make([]client.Item, 0, len(s.Items))
		for _, item := range s.Items {
			if item.ID != a.ID {
				items = append(items, item)
			}
		}
		s.Items = items
		if s.CurrentItem != nil && s.CurrentItem.ID == a.ID {
			s.CurrentItem = nil
		}
		return s

	case setItemStatus:
		items := make([]client.Item, len(s.Items))
		for i, item := range s.Items {
			if item.ID == a.ID {
				item.Status = a.Status
			}
			items[i] = item
		}
		s.Items = items
		if s.CurrentItem != nil && s.CurrentItem.ID == a.ID {
			updated := *s.CurrentItem
			updated.Status = a.Status
			s.CurrentItem = &updated
		}
		return s

	case setLoadingItems:
		s.LoadingItems = a.Loading
		return s

	case setOffers:
		s.Offers = a.Offers
		s.LoadingOffers = false
		return s

	case setCurrentOffer:
		s.CurrentOffer = a.Offer
		return s

	case addOffer:
		offers := make([]client.Offer, 0, len(s.Offers)+1)
		offers = append(offers, a.Offer)
		offers = append(offers, s.Offers...)
		s.Offers = offers
		return s

	case updateOffer:
		offers := make([]client.Offer, len(s.Offers))
		for i, offer := range s.Offers {
			if offer.ID == a.Offer.ID {
				offers[i] = a.Offer
			} else {
				offers[i] = offer
			}
		}
		s.Offers = offers
		if s.CurrentOffer != nil && s.CurrentOffer.ID == a.Offer.ID {
			updated := a.Offer
			s.CurrentOffer = &updated
		}
		return s

	case removeOffer:
		offers := make([]client.Offer, 0, len(s.Offers))
		for _, offer := range s.Offers {
			if offer.ID != a.ID {
				offers = append(offers, offer)
			}
		}
		s.Offers = offers
		if s.CurrentOffer != nil && s.CurrentOffer.ID == a.ID {
			s.CurrentOffer = nil
		}
		return s

	case setLoadingOffers:
		s.LoadingOffers = a.Loading
		return s

	case setLoading:
		s.Loading = a.Loading
		return s

	case setError:
		s.Err = a.Message
		s.Loading = false
		return s

	case clearError:
		s.Err = ""
		return s

	case addNotification:
		notifications := make([]Notification, 0, len(s.Notifications)+1)
		notifications = append(notifications, s.Notifications...)
		notifications = append(notifications, a.Notification)
		s.Notifications = notifications
		return s

	case removeNotification:
		notifications := make([]Notification, 0, len(s.Notifications))
		for _, n := range s.Notifications {
			if n.ID != a.ID {
				notifications = append(notifications, n)
			}
		}
		s.Notifications = notifications
		return s

	default:
		return s
	}
}
