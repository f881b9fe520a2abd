// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges for item and offer lifecycle states

package widgets

import (
	"fmt"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/icons"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	var bg, fg lipgloss.Color

	switch level {
	case StatusOK:
		bg, fg = BadgeOKBg, BadgeOKFg
	case StatusWarning:
		bg, fg = BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		bg, fg = BadgeCritBg, BadgeCritFg
	case StatusInfo:
		bg, fg = BadgeInfoBg, BadgeInfoFg
	default:
		bg, fg = BadgeNeutralBg, BadgeNeutralFg
	}

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// ItemStatusBadge renders a badge for an item lifecycle state
func ItemStatusBadge(status string) string {
	switch status {
	case client.ItemAvailable:
		return Badge("AVAILABLE", StatusOK)
	case client.ItemUnavailable:
		return Badge("UNAVAILABLE", StatusWarning)
	case client.ItemTraded:
		return Badge("TRADED", StatusNeutral)
	default:
		return Badge("--", StatusNeutral)
	}
}

// OfferStatusBadge renders a badge for an offer lifecycle state
func OfferStatusBadge(status string) string {
	switch status {
	case client.OfferPending:
		return Badge("PENDING", StatusInfo)
	case client.OfferAccepted:
		return Badge("ACCEPTED", StatusOK)
	case client.OfferRefused:
		return Badge("REFUSED", StatusCritical)
	default:
		return Badge("--", StatusNeutral)
	}
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	switch level {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(BadgeOKBg).Render(icons.CheckOK.String())
	case StatusWarning:
		return lipgloss.NewStyle().Foreground(BadgeWarnBg).Render(icons.Warning.String())
	case StatusCritical:
		return lipgloss.NewStyle().Foreground(BadgeCritBg).Render(icons.Critical.String())
	case StatusInfo:
		return lipgloss.NewStyle().Foreground(BadgeInfoBg).Render(icons.Info.String())
	default:
		return lipgloss.NewStyle().Foreground(BadgeNeutralBg).Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	icon := StatusIcon(level)

	var color lipgloss.Color
	switch level {
	case StatusOK:
		color = BadgeOKBg
	case StatusWarning:
		color = BadgeWarnBg
	case StatusCritical:
		color = BadgeCritBg
	case StatusInfo:
		color = BadgeInfoBg
	default:
		color = BadgeNeutralBg
	}

	textStyle := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %s", icon, textStyle.Render(text))
}

// CategoryLabel renders a category name with its icon
func CategoryLabel(category string) string {
	var name string
	switch category {
	case client.CategoryBooks:
		name = "Books"
	case client.CategoryHandouts:
		name = "Handouts"
	case client.CategoryEquipment:
		name = "Equipment"
	case client.CategoryTech:
		name = "Tech"
	default:
		name = category
	}
	return icons.Category(category).String() + " " + name
}

// OfferSummary renders what an offer puts on the table
func OfferSummary(offer client.Offer) string {
	if offer.OfferType == client.OfferTypeMoney && offer.MoneyAmount != nil {
		return icons.Money.String() + " " + MoneyAmount(*offer.MoneyAmount)
	}
	if offer.ItemOffered != nil {
		return fmt.Sprintf("%s item #%d", icons.Item.String(), *offer.ItemOffered)
	}
	return icons.Offer.String() + " trade"
}

// MoneyAmount formats a monetary amount with two decimal places
func MoneyAmount(amount decimal.Decimal) string {
	return "R$ " + amount.StringFixed(2)
}
