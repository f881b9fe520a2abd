// ABOUTME: Items command for the trocamat CLI
// ABOUTME: Lists and searches catalog items non-interactively

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/spf13/cobra"
)

var (
	itemsSearch   string
	itemsCategory string
	itemsStatus   string
	itemsLocation string
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List catalog items",
	Long: `List items in the marketplace catalog, optionally filtered.

Exit codes:
  0 - Success
  2 - Error (connectivity, bad filter)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runItems(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(itemsCmd)
	itemsCmd.Flags().StringVar(&itemsSearch, "search", "", "Search in title and description")
	itemsCmd.Flags().StringVar(&itemsCategory, "category", "", "Filter by category (books, handouts, equipment, tech)")
	itemsCmd.Flags().StringVar(&itemsStatus, "status", "", "Filter by status (available, unavailable, traded)")
	itemsCmd.Flags().StringVar(&itemsLocation, "location", "", "Filter by location")
}

// runItems executes the listing and returns exit code
func runItems(ctx context.Context, w io.Writer) int {
	c := newAPIClient()

	filters := client.SearchFilters{
		Category: itemsCategory,
		Status:   itemsStatus,
		Location: itemsLocation,
	}

	var items []client.Item
	var err error
	if itemsSearch == "" && filters == (client.SearchFilters{}) {
		items, err = c.Items(ctx)
	} else {
		items, err = c.SearchItems(ctx, itemsSearch, filters)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(items, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatItemsHuman(items))
	return 0
}

// formatItemsHuman formats an item list for human readability
func formatItemsHuman(items []client.Item) string {
	if len(items) == 0 {
		return "No items found."
	}

	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "#%-4d %-40s %-12s %-10s %s\n",
			item.ID, truncate(item.Title, 40), item.Status, item.Category, item.Owner)
	}
	fmt.Fprintf(&b, "\n%d item(s)", len(items))
	return b.String()
}

// truncate shortens s to max runes with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
