// ABOUTME: State snapshot held by the client-side store
// ABOUTME: Value semantics; the reducer copies on write so readers never see partial updates

package store

import "github.com/Nelson-esilva/Trade-Site/internal/client"

// Notification is a transient user-facing message. It is removed from
// the state automatically after the store's notification TTL.
type Notification struct {
	ID      string
	Message string
	Type    string
}

// Notification types
const (
	NoticeSuccess = "success"
	NoticeInfo    = "info"
	NoticeError   = "error"
)

// State is one immutable snapshot of the client-side application state.
// User == nil always implies IsAuthenticated == false; only the
// setUser/logout transitions touch the pair, and they keep it in sync.
type State struct {
	User            *client.User
	IsAuthenticated bool

	Items        []client.Item
	CurrentItem  *client.Item
	LoadingItems bool

	Offers        []client.Offer
	CurrentOffer  *client.Offer
	LoadingOffers bool

	Loading       bool
	Err           string
	Notifications []Notification
}
