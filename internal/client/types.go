// ABOUTME: Domain types exchanged with the TrocaMat REST API
// ABOUTME: Field names and formats follow the backend's serializers

package client

import "github.com/shopspring/decimal"

// Item status values
const (
	ItemAvailable   = "available"
	ItemUnavailable = "unavailable"
	ItemTraded      = "traded"
)

// Offer status values
const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRefused  = "refused"
)

// Offer type values
const (
	OfferTypeItem  = "item"
	OfferTypeMoney = "money"
)

// Item categories known to the backend
const (
	CategoryBooks     = "books"
	CategoryHandouts  = "handouts"
	CategoryEquipment = "equipment"
	CategoryTech      = "tech"
)

// User represents the authenticated user's profile
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	IsSuperuser  bool   `json:"is_superuser"`
	IsTradeAdmin bool   `json:"is_trade_admin"`
}

// Item represents a listed piece of educational material
type Item struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Owner       string `json:"owner"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// ItemInput represents user-provided item fields for create/update
type ItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Offer represents a trade proposal against an item.
// Exactly one of ItemOffered / MoneyAmount is set, per OfferType.
type Offer struct {
	ID          int              `json:"id"`
	ItemDesired int              `json:"item_desired"`
	ItemOffered *int             `json:"item_offered,omitempty"`
	Offerer     string           `json:"offerer"`
	OfferType   string           `json:"offer_type"`
	MoneyAmount *decimal.Decimal `json:"money_amount,omitempty"`
	Status      string           `json:"status"`
	Message     string           `json:"message,omitempty"`
	CreatedAt   string           `json:"created_at,omitempty"`
}

// OfferInput represents user-provided offer fields
type OfferInput struct {
	ItemDesired int              `json:"item_desired"`
	OfferType   string           `json:"offer_type"`
	ItemOffered *int             `json:"item_offered,omitempty"`
	MoneyAmount *decimal.Decimal `json:"money_amount,omitempty"`
	Message     string           `json:"message,omitempty"`
}

// RegisterInput represents the registration form payload
type RegisterInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the login/register response.
// Register may omit the token, in which case a separate login is required.
type AuthResponse struct {
	Token   string `json:"token,omitempty"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// SearchFilters narrows item searches
type SearchFilters struct {
	Category string
	Status   string
	Location string
}
