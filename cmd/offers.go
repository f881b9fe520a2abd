// ABOUTME: Offers command for the trocamat CLI
// ABOUTME: Lists the logged-in user's offers non-interactively

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
	"github.com/Nelson-esilva/Trade-Site/internal/tui/widgets"
	"github.com/spf13/cobra"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "List your offers",
	Long: `List offers involving the logged-in user: offers made and offers
received on their items.

Exit codes:
  0 - Success
  2 - Not logged in or error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runOffers(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(offersCmd)
}

// runOffers executes the listing and returns exit code
func runOffers(ctx context.Context, w io.Writer) int {
	c := newAPIClient()

	if !c.HasToken() {
		fmt.Fprintln(w, "Not logged in. Run 'trocamat login' first.")
		return 2
	}

	offers, err := c.Offers(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(offers, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatOffersHuman(offers))
	return 0
}

// formatOffersHuman formats an offer list for human readability
func formatOffersHuman(offers []client.Offer) string {
	if len(offers) == 0 {
		return "No offers."
	}

	var b strings.Builder
	for _, offer := range offers {
		what := "item trade"
		if offer.OfferType == client.OfferTypeMoney && offer.MoneyAmount != nil {
			what = widgets.MoneyAmount(*offer.MoneyAmount)
		} else if offer.ItemOffered != nil {
			what = fmt.Sprintf("item #%d", *offer.ItemOffered)
		}
		fmt.Fprintf(&b, "#%-4d for item #%-4d %-12s %-10s from %s\n",
			offer.ID, offer.ItemDesired, what, offer.Status, offer.Offerer)
	}
	fmt.Fprintf(&b, "\n%d offer(s)", len(offers))
	return b.String()
}
