// ABOUTME: Browse command launching the interactive terminal UI
// ABOUTME: Wires the API client, store, and debug log together

package cmd

import (
	"fmt"
	"os"

	"github.com/Nelson-esilva/Trade-Site/internal/debuglog"
	"github.com/Nelson-esilva/Trade-Site/internal/store"
	"github.com/Nelson-esilva/Trade-Site/internal/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the marketplace interactively",
	Long:  `Open the interactive terminal UI: catalog, offers, and your listings.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Diagnostics go to a file so the TUI stays clean
		debuglog.Init(configDir)
		defer debuglog.Close()

		st := store.New(newAPIClient())
		defer st.Close()

		if err := tui.Run(st); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
