// ABOUTME: Whoami command for the trocamat CLI
// ABOUTME: Shows the profile behind the persisted session token

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	Long: `Display the user profile associated with the persisted session token.

Exit codes:
  0 - Logged in
  2 - Not logged in or error`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami fetches the current user and returns exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	c := newAPIClient()

	if !c.HasToken() {
		fmt.Fprintln(w, "Not logged in. Run 'trocamat login' first.")
		return 2
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatUserHuman(user))
	}
	return 0
}

// formatUserHuman formats a user profile for human readability
func formatUserHuman(user *client.User) string {
	out := fmt.Sprintf(`Username: %s
Name:     %s
Email:    %s`, user.Username, user.Name, user.Email)
	if user.IsSuperuser || user.IsTradeAdmin {
		out += "\nRole:     admin"
	}
	return out
}
