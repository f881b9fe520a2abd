// ABOUTME: Item create/edit form for the user's listings
// ABOUTME: Pre-fills fields when editing an existing item

package forms

import (
	"fmt"
	"strings"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Item form limits
const minTitleLength = 3

// ItemSubmittedMsg carries the validated item fields.
// ID is zero for a new listing.
type ItemSubmittedMsg struct {
	ID    int
	Input client.ItemInput
}

// ItemCancelledMsg is sent when the user backs out
type ItemCancelledMsg struct{}

var categoryOptions = []huh.Option[string]{
	huh.NewOption("Books", client.CategoryBooks),
	huh.NewOption("Handouts", client.CategoryHandouts),
	huh.NewOption("Equipment", client.CategoryEquipment),
	huh.NewOption("Tech", client.CategoryTech),
}

// ItemForm is the listing create/edit form model
type ItemForm struct {
	form *huh.Form
	id   int

	title       string
	description string
	category    string
	location    string
	imageURL    string
	width       int
}

// NewItem creates a form for a new listing, or an edit form when
// existing is non-nil
func NewItem(existing *client.Item) *ItemForm {
	f := &ItemForm{category: client.CategoryBooks}
	title := "New listing"
	if existing != nil {
		f.id = existing.ID
		f.title = existing.Title
		f.description = existing.Description
		f.category = existing.Category
		f.location = existing.Location
		f.imageURL = existing.ImageURL
		title = "Edit listing"
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				CharLimit(200).
				Value(&f.title).
				Validate(validateTitle),
			huh.NewText().
				Title("Description").
				CharLimit(2000).
				Value(&f.description).
				Validate(requireField("description")),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&f.category),
			huh.NewInput().
				Title("Location").
				Description("Campus, city, or pickup point (optional)").
				CharLimit(200).
				Value(&f.location),
			huh.NewInput().
				Title("Image URL").
				Description("Link to a photo of the item (optional)").
				CharLimit(500).
				Value(&f.imageURL),
		).Title(title),
	).WithTheme(createTheme())
	return f
}

// Init implements tea.Model
func (f *ItemForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *ItemForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return ItemCancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		id := f.id
		input := client.ItemInput{
			Title:       strings.TrimSpace(f.title),
			Description: strings.TrimSpace(f.description),
			Category:    f.category,
			Location:    strings.TrimSpace(f.location),
			ImageURL:    strings.TrimSpace(f.imageURL),
		}
		return f, func() tea.Msg {
			return ItemSubmittedMsg{ID: id, Input: input}
		}
	}

	return f, cmd
}

// View implements tea.Model
func (f *ItemForm) View() string {
	return f.form.View()
}

func validateTitle(s string) error {
	if len(strings.TrimSpace(s)) < minTitleLength {
		return fmt.Errorf("title must be at least %d characters", minTitleLength)
	}
	return nil
}
