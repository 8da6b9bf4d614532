package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libsys/orcidlink/internal/config"
	"github.com/libsys/orcidlink/internal/mais"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Acquire a bearer token with the configured credentials",
	Long: `Perform a client-credentials exchange and print the resulting
authorization header value.

Useful for verifying credentials and for calling the API directly:

  curl -H "Authorization: $(orcidlink token --human)" ...`,
	Args: cobra.NoArgs,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

// TokenResult is the JSON output for the token command.
type TokenResult struct {
	Authorization string `json:"authorization"`
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.ResolveMais()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	provider := &mais.TokenProvider{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		BaseURL:      cfg.BaseURL,
	}
	auth, err := provider.Acquire(context.Background())
	if err != nil {
		exitWithError(ExitError, "acquiring token: %v", err)
	}

	if humanOutput {
		fmt.Println(auth)
		return nil
	}
	return outputJSON(TokenResult{Authorization: auth})
}
