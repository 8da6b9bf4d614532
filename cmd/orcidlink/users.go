package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/libsys/orcidlink/internal/config"
	"github.com/libsys/orcidlink/internal/mais"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and look up ORCID linkage records",
	Long: `Commands for listing and looking up ORCID linkage records.

Environment Variables:
  MAIS_CLIENT_ID      OAuth2 client id
  MAIS_CLIENT_SECRET  OAuth2 client secret
  MAIS_BASE_URL       MaIS deployment base URL

Each overrides the corresponding value in the global config file.`,
}

func init() {
	// Load .env file if present (for MAIS_* credentials)
	_ = godotenv.Load()

	rootCmd.AddCommand(usersCmd)
}

// newMaisClient builds a client from the resolved configuration,
// exiting on configuration errors.
func newMaisClient() *mais.Client {
	cfg, err := config.ResolveMais()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return mais.NewClient(cfg)
}
