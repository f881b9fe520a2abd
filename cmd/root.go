// ABOUTME: Root command for the trocamat CLI
// ABOUTME: Handles global flags and configuration

package cmd

import (
	"os"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
	"github.com/Nelson-esilva/Trade-Site/internal/token"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiURL     string
	jsonOutput bool

	// configDir holds the token and debug log; overridable in tests
	configDir = token.DefaultConfigDir()
)

const defaultAPIURL = "http://localhost:8000/api"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "trocamat",
	Short: "CLI for the TrocaMat marketplace",
	Long: `trocamat is a command-line interface for TrocaMat, a peer-to-peer
marketplace for trading educational materials.

Run without a subcommand help, or use 'trocamat browse' for the
interactive terminal UI.

Environment Variables:
  TROCAMAT_API_URL  Backend API URL (default: http://localhost:8000/api)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env next to the binary can hold TROCAMAT_API_URL; absence is fine
	godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides TROCAMAT_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("TROCAMAT_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newAPIClient builds the API client with the persisted token store
func newAPIClient() *client.Client {
	return client.New(GetAPIURL(), token.New(configDir))
}
