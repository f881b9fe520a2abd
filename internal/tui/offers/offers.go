// ABOUTME: Offer list TUI component split into received and made tabs
// ABOUTME: Emits accept, refuse, and withdraw requests for the root model to run

package offers

import (
	"fmt"
	"strings"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/icons"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/widgets"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab selects which side of the offers the list shows
type Tab int

const (
	// TabReceived lists offers on the viewer's items
	TabReceived Tab = iota
	// TabMade lists offers the viewer made
	TabMade
)

// AcceptRequestedMsg asks the root model to accept an offer
type AcceptRequestedMsg struct {
	ID int
}

// RefuseRequestedMsg asks the root model to refuse an offer
type RefuseRequestedMsg struct {
	ID int
}

// WithdrawRequestedMsg asks the root model to withdraw one of the
// viewer's own offers
type WithdrawRequestedMsg struct {
	ID int
}

// CancelledMsg is sent when the user backs out of the list
type CancelledMsg struct{}

// Offers is the offer list component
type Offers struct {
	offers []client.Offer
	// ownedItems are ids of items the viewer owns; offers on them
	// count as received
	ownedItems map[int]bool
	viewer     string
	tab        Tab
	cursor     int
	width      int
	height     int
}

// Styles
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	normalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// New creates an offer list for the given viewer
func New(viewer string) *Offers {
	return &Offers{
		viewer:     viewer,
		ownedItems: make(map[int]bool),
	}
}

// SetOffers replaces the displayed offers
func (o *Offers) SetOffers(offers []client.Offer) {
	o.offers = offers
	if o.cursor >= len(o.visible()) {
		o.cursor = 0
	}
}

// SetOwnedItems records which item ids the viewer owns, so offers can
// be split into received and made
func (o *Offers) SetOwnedItems(items []client.Item) {
	o.ownedItems = make(map[int]bool, len(items))
	for _, item := range items {
		if item.Owner == o.viewer {
			o.ownedItems[item.ID] = true
		}
	}
	if o.cursor >= len(o.visible()) {
		o.cursor = 0
	}
}

// Selected returns the offer under the cursor, if any
func (o *Offers) Selected() *client.Offer {
	visible := o.visible()
	if o.cursor < 0 || o.cursor >= len(visible) {
		return nil
	}
	offer := visible[o.cursor]
	return &offer
}

func (o *Offers) visible() []client.Offer {
	var out []client.Offer
	for _, offer := range o.offers {
		received := o.ownedItems[offer.ItemDesired]
		if o.tab == TabReceived && received {
			out = append(out, offer)
		}
		if o.tab == TabMade && offer.Offerer == o.viewer {
			out = append(out, offer)
		}
	}
	return out
}

// Init implements tea.Model
func (o *Offers) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (o *Offers) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.width = msg.Width
		o.height = msg.Height
		return o, nil

	case tea.KeyMsg:
		return o.updateKeys(msg)
	}

	return o, nil
}

func (o *Offers) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxItems := len(o.visible())

	switch msg.String() {
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
		}
	case "down", "j":
		if o.cursor < maxItems-1 {
			o.cursor++
		}
	case "tab", "right", "left", "h", "l":
		if o.tab == TabReceived {
			o.tab = TabMade
		} else {
			o.tab = TabReceived
		}
		o.cursor = 0
	case "a":
		if o.tab == TabReceived {
			if sel := o.Selected(); sel != nil && sel.Status == client.OfferPending {
				id := sel.ID
				return o, func() tea.Msg { return AcceptRequestedMsg{ID: id} }
			}
		}
	case "r":
		if o.tab == TabReceived {
			if sel := o.Selected(); sel != nil && sel.Status == client.OfferPending {
				id := sel.ID
				return o, func() tea.Msg { return RefuseRequestedMsg{ID: id} }
			}
		}
	case "d":
		if o.tab == TabMade {
			if sel := o.Selected(); sel != nil && sel.Status == client.OfferPending {
				id := sel.ID
				return o, func() tea.Msg { return WithdrawRequestedMsg{ID: id} }
			}
		}
	case "esc", "b":
		return o, func() tea.Msg { return CancelledMsg{} }
	}

	return o, nil
}

// View implements tea.Model
func (o *Offers) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(icons.Offer.String() + " Offers"))
	b.WriteString("\n\n")

	received := tabStyle.Render("Received")
	made := tabStyle.Render("Made")
	if o.tab == TabReceived {
		received = activeTabStyle.Render("Received")
	} else {
		made = activeTabStyle.Render("Made")
	}
	b.WriteString(received + "   " + made)
	b.WriteString("\n\n")

	visible := o.visible()
	if len(visible) == 0 {
		if o.tab == TabReceived {
			b.WriteString(emptyStyle.Render("No offers on your items."))
		} else {
			b.WriteString(emptyStyle.Render("You have not made any offers."))
		}
		return b.String()
	}

	for i, offer := range visible {
		cursor := "  "
		style := normalStyle
		if i == o.cursor {
			cursor = "> "
			style = selectedStyle
		}

		line := cursor + style.Render(fmt.Sprintf("Item #%d", offer.ItemDesired))
		line += "  " + widgets.OfferSummary(offer)
		line += "  " + widgets.OfferStatusBadge(offer.Status)
		if o.tab == TabReceived {
			line += "  " + metaStyle.Render("from "+offer.Offerer)
		}
		b.WriteString(line + "\n")
		if offer.Message != "" && i == o.cursor {
			b.WriteString("    " + metaStyle.Render("“"+offer.Message+"”") + "\n")
		}
	}

	return b.String()
}
