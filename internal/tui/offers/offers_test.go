// ABOUTME: Tests for the offer list component
// ABOUTME: Covers received/made splitting and action key handling

package offers

import (
	"strings"
	"testing"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testOffers() ([]client.Offer, []client.Item) {
	offered := 5
	offers := []client.Offer{
		{ID: 1, ItemDesired: 10, Offerer: "joao", OfferType: client.OfferTypeItem, ItemOffered: &offered, Status: client.OfferPending},
		{ID: 2, ItemDesired: 20, Offerer: "maria", OfferType: client.OfferTypeMoney, Status: client.OfferPending},
		{ID: 3, ItemDesired: 10, Offerer: "ana", OfferType: client.OfferTypeMoney, Status: client.OfferRefused},
	}
	items := []client.Item{
		{ID: 10, Owner: "maria"},
		{ID: 20, Owner: "joao"},
	}
	return offers, items
}

func TestReceivedAndMadeSplit(t *testing.T) {
	offerList, items := testOffers()

	o := New("maria")
	o.SetOffers(offerList)
	o.SetOwnedItems(items)

	// Received tab: offers on maria's item 10
	received := o.visible()
	if len(received) != 2 {
		t.Fatalf("expected 2 received offers, got %d", len(received))
	}

	o.Update(tea.KeyMsg{Type: tea.KeyTab})
	if o.tab != TabMade {
		t.Fatal("expected tab key to switch to made tab")
	}
	made := o.visible()
	if len(made) != 1 || made[0].ID != 2 {
		t.Errorf("expected only maria's own offer in made tab")
	}
}

func TestAcceptEmitsForPendingReceived(t *testing.T) {
	offerList, items := testOffers()

	o := New("maria")
	o.SetOffers(offerList)
	o.SetOwnedItems(items)

	_, cmd := o.Update(keyMsg("a"))
	if cmd == nil {
		t.Fatal("expected a command from accept key")
	}
	msg := cmd()
	accept, ok := msg.(AcceptRequestedMsg)
	if !ok {
		t.Fatalf("expected AcceptRequestedMsg, got %T", msg)
	}
	if accept.ID != 1 {
		t.Errorf("expected offer 1, got %d", accept.ID)
	}
}

func TestAcceptIgnoredForResolvedOffer(t *testing.T) {
	offerList, items := testOffers()

	o := New("maria")
	o.SetOffers(offerList)
	o.SetOwnedItems(items)

	// Move to the refused offer
	o.Update(keyMsg("j"))
	_, cmd := o.Update(keyMsg("a"))
	if cmd != nil {
		t.Error("expected no command when accepting a resolved offer")
	}
}

func TestWithdrawOnlyOnMadeTab(t *testing.T) {
	offerList, items := testOffers()

	o := New("maria")
	o.SetOffers(offerList)
	o.SetOwnedItems(items)

	// On received tab, d does nothing
	_, cmd := o.Update(keyMsg("d"))
	if cmd != nil {
		t.Error("expected no withdraw command on received tab")
	}

	o.tab = TabMade
	o.cursor = 0
	_, cmd = o.Update(keyMsg("d"))
	if cmd == nil {
		t.Fatal("expected a command from withdraw key")
	}
	msg := cmd()
	withdraw, ok := msg.(WithdrawRequestedMsg)
	if !ok {
		t.Fatalf("expected WithdrawRequestedMsg, got %T", msg)
	}
	if withdraw.ID != 2 {
		t.Errorf("expected offer 2, got %d", withdraw.ID)
	}
}

func TestViewShowsOfferers(t *testing.T) {
	offerList, items := testOffers()

	o := New("maria")
	o.SetOffers(offerList)
	o.SetOwnedItems(items)

	view := o.View()
	if !strings.Contains(view, "Received") || !strings.Contains(view, "Made") {
		t.Error("expected both tab labels")
	}
	if !strings.Contains(view, "from joao") {
		t.Error("expected received offers to name the offerer")
	}
}
