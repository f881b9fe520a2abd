// ABOUTME: Integration tests for TUI app
// ABOUTME: Tests guard-driven navigation and store-to-view wiring

package tui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/store"
	"github.com/Nelson-esilva/Trade-Site/internal/token"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, handler http.Handler) (*App, *store.Store) {
	t.Helper()
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	st := store.New(client.New(server.URL, token.New(t.TempDir())))
	t.Cleanup(st.Close)
	return New(st), st
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppInitialState(t *testing.T) {
	app, _ := newTestApp(t, nil)

	if app.screen != ScreenCatalog {
		t.Errorf("expected initial screen to be ScreenCatalog, got %d", app.screen)
	}
	if app.catalogList == nil {
		t.Error("expected catalog list to be initialized")
	}
}

func TestScreenConstants(t *testing.T) {
	// Verify screen constants are defined correctly
	if ScreenCatalog != 0 {
		t.Errorf("expected ScreenCatalog to be 0, got %d", ScreenCatalog)
	}
	if ScreenItemDetail != 1 {
		t.Errorf("expected ScreenItemDetail to be 1, got %d", ScreenItemDetail)
	}
	if ScreenLogin != 2 {
		t.Errorf("expected ScreenLogin to be 2, got %d", ScreenLogin)
	}
}

func TestAnonymousUserRedirectedToLogin(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.width = 100
	app.height = 40

	model, _ := app.Update(keyMsg("m"))
	result := model.(*App)

	if result.screen != ScreenLogin {
		t.Errorf("expected guard to redirect to ScreenLogin, got %d", result.screen)
	}
	if result.returnTo != ScreenMyItems {
		t.Errorf("expected return target to be ScreenMyItems, got %d", result.returnTo)
	}
	if result.loginForm == nil {
		t.Error("expected login form to be created")
	}
}

func TestSessionChangeReturnsToRequestedScreen(t *testing.T) {
	app, st := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/me/":
			json.NewEncoder(w).Encode(client.User{ID: 1, Username: "maria"})
		case "/items/":
			json.NewEncoder(w).Encode([]client.Item{})
		default:
			http.NotFound(w, r)
		}
	}))
	app.width = 100
	app.height = 40

	// Anonymous attempt to reach My Items gets parked at login
	model, _ := app.Update(keyMsg("m"))
	app = model.(*App)
	if app.screen != ScreenLogin {
		t.Fatalf("expected ScreenLogin, got %d", app.screen)
	}

	// Session resolves; the deferred destination is honored
	st.LoadCurrentUser(context.Background())
	model, _ = app.Update(sessionChangedMsg{})
	app = model.(*App)

	if app.screen != ScreenMyItems {
		t.Errorf("expected ScreenMyItems after login, got %d", app.screen)
	}
	if app.myItems == nil {
		t.Error("expected my items list to be created")
	}
}

func TestAuthenticatedUserBouncedFromLogin(t *testing.T) {
	app, st := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.User{ID: 1, Username: "maria"})
	}))
	st.LoadCurrentUser(context.Background())

	app.navigate(ScreenLogin)

	if app.screen != ScreenCatalog {
		t.Errorf("expected guard to bounce to ScreenCatalog, got %d", app.screen)
	}
}

func TestStoreChangedSyncsCatalog(t *testing.T) {
	app, st := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]client.Item{{ID: 1, Title: "Calculus Vol. 1", Status: client.ItemAvailable}})
	}))
	app.width = 100
	app.height = 40

	if err := st.LoadItems(context.Background()); err != nil {
		t.Fatalf("load items: %v", err)
	}
	app.syncChildren()

	view := app.View()
	if !strings.Contains(view, "Calculus Vol. 1") {
		t.Error("expected catalog view to contain the loaded item")
	}
}

func TestViewContainsBranding(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.width = 100
	app.height = 40

	view := app.View()
	if !strings.Contains(view, "TrocaMat") {
		t.Error("expected view to contain 'TrocaMat'")
	}
	// Anonymous catalog footer offers sign-in
	if !strings.Contains(view, "Sign-in") {
		t.Error("expected footer to offer 'Sign-in'")
	}
}

func TestErrorBannerShown(t *testing.T) {
	app, st := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	app.width = 100
	app.height = 40

	st.LoadItems(context.Background())
	app.syncChildren()

	view := app.View()
	if !strings.Contains(view, "Failed to load items.") {
		t.Error("expected error banner with the failure message")
	}
}
