// ABOUTME: Tests for the item list component
// ABOUTME: Covers cursor movement, mode filtering, and search submission

package catalog

import (
	"strings"
	"testing"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testItems() []client.Item {
	return []client.Item{
		{ID: 1, Title: "Calculus book", Category: client.CategoryBooks, Owner: "maria", Status: client.ItemAvailable},
		{ID: 2, Title: "Lab coat", Category: client.CategoryEquipment, Owner: "joao", Status: client.ItemAvailable},
		{ID: 3, Title: "Old laptop", Category: client.CategoryTech, Owner: "maria", Status: client.ItemUnavailable},
	}
}

func TestCursorMovement(t *testing.T) {
	c := New(ModeCatalog)
	c.SetItems(testItems())

	if sel := c.Selected(); sel == nil || sel.ID != 1 {
		t.Fatalf("expected first item selected initially")
	}

	c.Update(keyMsg("j"))
	if sel := c.Selected(); sel == nil || sel.ID != 2 {
		t.Errorf("expected cursor on second item after j")
	}

	c.Update(keyMsg("k"))
	if sel := c.Selected(); sel == nil || sel.ID != 1 {
		t.Errorf("expected cursor back on first item after k")
	}

	// Cursor does not run off the top
	c.Update(keyMsg("k"))
	if sel := c.Selected(); sel == nil || sel.ID != 1 {
		t.Errorf("expected cursor pinned at first item")
	}
}

func TestMineModeFiltersByOwner(t *testing.T) {
	c := New(ModeMine)
	c.SetViewer("maria")
	c.SetItems(testItems())

	visible := c.visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 of maria's items, got %d", len(visible))
	}
	for _, item := range visible {
		if item.Owner != "maria" {
			t.Errorf("expected only maria's items, got %s's", item.Owner)
		}
	}
}

func TestEnterEmitsSelection(t *testing.T) {
	c := New(ModeCatalog)
	c.SetItems(testItems())

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg := cmd()
	selected, ok := msg.(ItemSelectedMsg)
	if !ok {
		t.Fatalf("expected ItemSelectedMsg, got %T", msg)
	}
	if selected.ID != 1 {
		t.Errorf("expected item 1 selected, got %d", selected.ID)
	}
}

func TestSearchSubmission(t *testing.T) {
	c := New(ModeCatalog)
	c.SetItems(testItems())

	// Open search, type a query, submit
	c.Update(keyMsg("/"))
	if c.state != stateSearch {
		t.Fatal("expected search state after /")
	}
	c.Update(keyMsg("calc"))
	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from search submit")
	}
	msg := cmd()
	search, ok := msg.(SearchRequestedMsg)
	if !ok {
		t.Fatalf("expected SearchRequestedMsg, got %T", msg)
	}
	if search.Query != "calc" {
		t.Errorf("expected query 'calc', got %q", search.Query)
	}
	if c.state != stateList {
		t.Error("expected list state after submit")
	}
}

func TestCategoryFilterCycles(t *testing.T) {
	c := New(ModeCatalog)
	c.SetItems(testItems())

	_, cmd := c.Update(keyMsg("f"))
	if cmd == nil {
		t.Fatal("expected a command from filter key")
	}
	msg := cmd()
	search, ok := msg.(SearchRequestedMsg)
	if !ok {
		t.Fatalf("expected SearchRequestedMsg, got %T", msg)
	}
	if search.Category != client.CategoryBooks {
		t.Errorf("expected first cycle to be books, got %q", search.Category)
	}
}

func TestViewShowsItems(t *testing.T) {
	c := New(ModeCatalog)
	c.SetItems(testItems())

	view := c.View()
	if !strings.Contains(view, "Calculus book") {
		t.Error("expected view to list items")
	}
	if !strings.Contains(view, "maria") {
		t.Error("expected catalog mode to show owners")
	}
}

func TestViewLoading(t *testing.T) {
	c := New(ModeCatalog)
	c.SetLoading(true)

	if !strings.Contains(c.View(), "Loading") {
		t.Error("expected loading placeholder")
	}
}
