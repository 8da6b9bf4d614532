// Package main provides the orcidlink CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "orcidlink",
	Short: "Query institutional ORCID linkages from MaIS",
	Long: `orcidlink queries the MaIS ORCID integration service for which
institutional users have linked an ORCID iD and which delegated
scopes they granted.

All commands output JSON by default for easy integration with other
tools. Use --human for human-readable output.

Credentials come from ~/.config/orcidlink/config.yml, a local .env
file, or the MAIS_CLIENT_ID, MAIS_CLIENT_SECRET and MAIS_BASE_URL
environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
