// ABOUTME: Tagged action variants dispatched through the store's reducer
// ABOUTME: Each action carries an immutable payload

package store

import "github.com/Nelson-esilva/Trade-Site/internal/client"

// Action is the sealed set of state transitions the reducer understands
type Action interface {
	isAction()
}

// User actions

type setUser struct{ User *client.User }
type logout struct{}

// Item actions

type setItems struct{ Items []client.Item }
type setCurrentItem struct{ Item *client.Item }
type addItem struct{ Item client.Item }
type updateItem struct{ Item client.Item }
type removeItem struct{ ID int }
type setItemStatus struct {
	ID     int
	Status string
}
type setLoadingItems struct{ Loading bool }

// Offer actions

type setOffers struct{ Offers []client.Offer }
type setCurrentOffer struct{ Offer *client.Offer }
type addOffer struct{ Offer client.Offer }
type updateOffer struct{ Offer client.Offer }
type removeOffer struct{ ID int }
type setLoadingOffers struct{ Loading bool }

// UI actions

type setLoading struct{ Loading bool }
type setError struct{ Message string }
type clearError struct{}
type addNotification struct{ Notification Notification }
type removeNotification struct{ ID string }

func (setUser) isAction()            {}
func (logout) isAction()             {}
func (setItems) isAction()           {}
func (setCurrentItem) isAction()     {}
func (addItem) isAction()            {}
func (updateItem) isAction()         {}
func (removeItem) isAction()         {}
func (setItemStatus) isAction()      {}
func (setLoadingItems) isAction()    {}
func (setOffers) isAction()          {}
func (setCurrentOffer) isAction()    {}
func (addOffer) isAction()           {}
func (updateOffer) isAction()        {}
func (removeOffer) isAction()        {}
func (setLoadingOffers) isAction()   {}
func (setLoading) isAction()         {}
func (setError) isAction()           {}
func (clearError) isAction()         {}
func (addNotification) isAction()    {}
func (removeNotification) isAction() {}
