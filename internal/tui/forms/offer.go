// ABOUTME: Two-step offer form: pick item or money, then the details
// ABOUTME: Exactly one of item_offered and money_amount ends up populated

package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

// OfferSubmittedMsg carries the validated offer payload
type OfferSubmittedMsg struct {
	Input client.OfferInput
}

// OfferCancelledMsg is sent when the user backs out
type OfferCancelledMsg struct{}

// OfferForm is the trade proposal form model
type OfferForm struct {
	form *huh.Form
	step int

	itemDesired int
	// ownItems are the viewer's available listings, offered in trade
	ownItems []client.Item

	offerType   string
	itemOffered string
	amount      string
	message     string
	width       int
}

// NewOffer creates an offer form against the given item. ownItems are
// the viewer's available listings that can be put up in trade.
func NewOffer(itemDesired int, ownItems []client.Item) *OfferForm {
	f := &OfferForm{
		itemDesired: itemDesired,
		ownItems:    ownItems,
		offerType:   client.OfferTypeItem,
		step:        1,
	}
	if len(ownItems) == 0 {
		// Nothing to trade, money is the only option
		f.offerType = client.OfferTypeMoney
	}
	f.form = f.createTypeForm()
	return f
}

func (f *OfferForm) createTypeForm() *huh.Form {
	options := []huh.Option[string]{}
	if len(f.ownItems) > 0 {
		options = append(options, huh.NewOption("Trade one of my items", client.OfferTypeItem))
	}
	options = append(options, huh.NewOption("Offer money", client.OfferTypeMoney))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Offer type").
				Options(options...).
				Value(&f.offerType),
		).Title("Make an offer").
			Description(fmt.Sprintf("Propose a trade for item #%d", f.itemDesired)),
	).WithTheme(createTheme())
}

func (f *OfferForm) createDetailsForm() *huh.Form {
	fields := []huh.Field{}

	if f.offerType == client.OfferTypeItem {
		options := make([]huh.Option[string], 0, len(f.ownItems))
		for _, item := range f.ownItems {
			options = append(options, huh.NewOption(item.Title, strconv.Itoa(item.ID)))
		}
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Item to offer").
				Options(options...).
				Value(&f.itemOffered),
		)
	} else {
		fields = append(fields,
			huh.NewInput().
				Title("Amount").
				Description("In reais, e.g. 50 or 75.50").
				CharLimit(12).
				Value(&f.amount).
				Validate(validateAmount),
		)
	}

	fields = append(fields,
		huh.NewText().
			Title("Message").
			Description("Optional note to the owner").
			CharLimit(500).
			Value(&f.message),
	)

	return huh.NewForm(
		huh.NewGroup(fields...).Title("Offer details"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (f *OfferForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *OfferForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return OfferCancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		return f.advanceStep()
	}

	return f, cmd
}

func (f *OfferForm) advanceStep() (tea.Model, tea.Cmd) {
	switch f.step {
	case 1:
		f.step = 2
		f.form = f.createDetailsForm()
		return f, f.form.Init()

	case 2:
		input := client.OfferInput{
			ItemDesired: f.itemDesired,
			OfferType:   f.offerType,
			Message:     strings.TrimSpace(f.message),
		}
		if f.offerType == client.OfferTypeItem {
			id, err := strconv.Atoi(f.itemOffered)
			if err != nil {
				// Nothing picked; back to the details step
				f.form = f.createDetailsForm()
				return f, f.form.Init()
			}
			input.ItemOffered = &id
		} else {
			amount, err := decimal.NewFromString(strings.TrimSpace(f.amount))
			if err != nil {
				f.form = f.createDetailsForm()
				return f, f.form.Init()
			}
			input.MoneyAmount = &amount
		}
		return f, func() tea.Msg {
			return OfferSubmittedMsg{Input: input}
		}
	}

	return f, nil
}

// View implements tea.Model
func (f *OfferForm) View() string {
	return f.form.View()
}

func validateAmount(s string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a valid amount")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
