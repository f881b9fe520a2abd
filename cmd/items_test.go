// ABOUTME: Tests for the items command
// ABOUTME: Verifies listing output, filters, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
)

// withTestBackend points the command layer at a stub server and an
// isolated config dir for the duration of a test
func withTestBackend(t *testing.T, handler http.Handler) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	prevDir := configDir
	apiURL = server.URL
	configDir = t.TempDir()
	t.Cleanup(func() {
		apiURL = ""
		configDir = prevDir
	})
}

func TestItemsCommand_Success(t *testing.T) {
	withTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.Item{
			{ID: 1, Title: "Calculus book", Category: "books", Status: "available", Owner: "maria"},
			{ID: 2, Title: "Lab coat", Category: "equipment", Status: "traded", Owner: "joao"},
		})
	}))

	var buf bytes.Buffer
	exitCode := runItems(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	for _, want := range []string{"Calculus book", "available", "maria", "2 item(s)"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestItemsCommand_SearchSendsFilters(t *testing.T) {
	var gotQuery string
	withTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.Item{})
	}))

	itemsSearch = "calculus"
	itemsCategory = "books"
	defer func() { itemsSearch = ""; itemsCategory = "" }()

	var buf bytes.Buffer
	exitCode := runItems(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if !bytes.Contains([]byte(gotQuery), []byte("search=calculus")) {
		t.Errorf("expected search in query string, got %q", gotQuery)
	}
	if !bytes.Contains([]byte(gotQuery), []byte("category=books")) {
		t.Errorf("expected category in query string, got %q", gotQuery)
	}
	if !bytes.Contains(buf.Bytes(), []byte("No items found.")) {
		t.Error("expected empty-result message")
	}
}

func TestItemsCommand_JSONOutput(t *testing.T) {
	withTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]client.Item{{ID: 7, Title: "Notes"}})
	}))

	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	exitCode := runItems(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	var parsed []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(parsed) != 1 || parsed[0]["title"] != "Notes" {
		t.Errorf("unexpected JSON payload: %v", parsed)
	}
}

func TestItemsCommand_ConnectionError(t *testing.T) {
	apiURL = "http://localhost:1"
	prevDir := configDir
	configDir = t.TempDir()
	defer func() { apiURL = ""; configDir = prevDir }()

	var buf bytes.Buffer
	exitCode := runItems(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 40); got != "short" {
		t.Errorf("expected unchanged string, got %q", got)
	}
	long := "a very long title that goes on and on and on and on"
	if got := truncate(long, 10); len([]rune(got)) != 10 {
		t.Errorf("expected 10 runes, got %d (%q)", len([]rune(got)), got)
	}
}
