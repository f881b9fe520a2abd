// ABOUTME: Item list TUI component with search input and category filter
// ABOUTME: Serves both the public catalog and the user's own item list

package catalog

import (
	"fmt"
	"strings"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/icons"
	"github.com/Nelson-esilva/Trade-Site/internal/tui/widgets"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Mode selects which item list the component renders
type Mode int

const (
	// ModeCatalog shows every listing, for browsing
	ModeCatalog Mode = iota
	// ModeMine shows only the viewer's listings, with edit actions
	ModeMine
)

// state represents the current UI state
type state int

const (
	stateList state = iota
	stateSearch
)

// ItemSelectedMsg is sent when an item is chosen from the list
type ItemSelectedMsg struct {
	ID int
}

// SearchRequestedMsg is sent when the user submits a search
type SearchRequestedMsg struct {
	Query    string
	Category string
}

// CancelledMsg is sent when the user backs out of the list
type CancelledMsg struct{}

// Category filter cycle; empty means no filter
var categories = []string{
	"",
	client.CategoryBooks,
	client.CategoryHandouts,
	client.CategoryEquipment,
	client.CategoryTech,
}

// Catalog is the item list component
type Catalog struct {
	mode     Mode
	items    []client.Item
	viewer   string
	cursor   int
	state    state
	search   textinput.Model
	query    string
	category int
	loading  bool
	width    int
	height   int
}

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	normalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ownerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// New creates a catalog list in the given mode
func New(mode Mode) *Catalog {
	ti := textinput.New()
	ti.Placeholder = "Search title or description"
	ti.CharLimit = 120
	ti.Width = 40

	return &Catalog{
		mode:   mode,
		state:  stateList,
		search: ti,
	}
}

// SetItems replaces the displayed items, keeping the cursor in range
func (c *Catalog) SetItems(items []client.Item) {
	c.items = items
	if c.cursor >= len(c.visible()) {
		c.cursor = 0
	}
}

// SetViewer sets the username whose listings ModeMine shows
func (c *Catalog) SetViewer(username string) {
	c.viewer = username
}

// SetLoading toggles the loading placeholder
func (c *Catalog) SetLoading(loading bool) {
	c.loading = loading
}

// Selected returns the item under the cursor, if any
func (c *Catalog) Selected() *client.Item {
	visible := c.visible()
	if c.cursor < 0 || c.cursor >= len(visible) {
		return nil
	}
	item := visible[c.cursor]
	return &item
}

// visible returns the items the current mode shows
func (c *Catalog) visible() []client.Item {
	if c.mode == ModeCatalog || c.viewer == "" {
		return c.items
	}
	var mine []client.Item
	for _, item := range c.items {
		if item.Owner == c.viewer {
			mine = append(mine, item)
		}
	}
	return mine
}

// Init implements tea.Model
func (c *Catalog) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c *Catalog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return c, nil

	case tea.KeyMsg:
		switch c.state {
		case stateList:
			return c.updateList(msg)
		case stateSearch:
			return c.updateSearch(msg)
		}
	}

	return c, nil
}

func (c *Catalog) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	maxItems := len(c.visible())

	switch msg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < maxItems-1 {
			c.cursor++
		}
	case "enter":
		if selected := c.Selected(); selected != nil {
			id := selected.ID
			return c, func() tea.Msg { return ItemSelectedMsg{ID: id} }
		}
	case "/":
		c.state = stateSearch
		c.search.Focus()
		return c, textinput.Blink
	case "f":
		c.category = (c.category + 1) % len(categories)
		return c, c.emitSearch()
	case "esc", "b":
		return c, func() tea.Msg { return CancelledMsg{} }
	}

	return c, nil
}

func (c *Catalog) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.state = stateList
		c.search.Blur()
		return c, nil
	case "enter":
		c.query = c.search.Value()
		c.state = stateList
		c.search.Blur()
		c.cursor = 0
		return c, c.emitSearch()
	}

	var cmd tea.Cmd
	c.search, cmd = c.search.Update(msg)
	return c, cmd
}

func (c *Catalog) emitSearch() tea.Cmd {
	query := c.query
	category := categories[c.category]
	return func() tea.Msg {
		return SearchRequestedMsg{Query: query, Category: category}
	}
}

// View implements tea.Model
func (c *Catalog) View() string {
	var b strings.Builder

	title := "Catalog"
	if c.mode == ModeMine {
		title = "My Items"
	}
	b.WriteString(titleStyle.Render(icons.Item.String() + " " + title))
	b.WriteString("\n\n")

	if c.state == stateSearch {
		b.WriteString(c.search.View())
		b.WriteString("\n\n")
	} else if c.query != "" || categories[c.category] != "" {
		filter := icons.Search.String() + " "
		if c.query != "" {
			filter += fmt.Sprintf("%q ", c.query)
		}
		if cat := categories[c.category]; cat != "" {
			filter += widgets.CategoryLabel(cat)
		}
		b.WriteString(helpStyle.Render(filter))
		b.WriteString("\n\n")
	}

	if c.loading {
		b.WriteString(emptyStyle.Render("Loading items..."))
		return b.String()
	}

	visible := c.visible()
	if len(visible) == 0 {
		if c.mode == ModeMine {
			b.WriteString(emptyStyle.Render("You have no listings yet. Press n to create one."))
		} else {
			b.WriteString(emptyStyle.Render("No items found."))
		}
		return b.String()
	}

	for i, item := range visible {
		cursor := "  "
		style := normalStyle
		if i == c.cursor {
			cursor = "> "
			style = selectedStyle
		}

		line := cursor + style.Render(item.Title)
		line += "  " + widgets.ItemStatusBadge(item.Status)
		line += "  " + helpStyle.Render(widgets.CategoryLabel(item.Category))
		if c.mode == ModeCatalog && item.Owner != "" {
			line += "  " + ownerStyle.Render(icons.User.String()+" "+item.Owner)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}
