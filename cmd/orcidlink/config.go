package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libsys/orcidlink/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set global configuration values.

Usage:
  orcidlink config                             # Show all config
  orcidlink config base-url                    # Get specific value
  orcidlink config base-url https://mais.edu   # Set value

Keys:
  client-id      OAuth2 client id
  client-secret  OAuth2 client secret (shown masked)
  base-url       MaIS deployment base URL`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// ConfigResponse is the response for config get commands. The client
// secret is never echoed back.
type ConfigResponse struct {
	ClientID  string `json:"client_id,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
	HasSecret bool   `json:"has_client_secret"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("client-id:     %s\n", cfg.ClientID)
			fmt.Printf("client-secret: %s\n", maskSecret(cfg.ClientSecret))
			fmt.Printf("base-url:      %s\n", cfg.BaseURL)
			return nil
		}
		return outputJSON(ConfigResponse{
			ClientID:  cfg.ClientID,
			BaseURL:   cfg.BaseURL,
			HasSecret: cfg.ClientSecret != "",
		})
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		var value string
		switch key {
		case "client-id":
			value = cfg.ClientID
		case "client-secret":
			value = maskSecret(cfg.ClientSecret)
		case "base-url":
			value = cfg.BaseURL
		default:
			exitWithError(ExitError, "unknown configuration key: %s", key)
		}
		if humanOutput {
			fmt.Println(value)
			return nil
		}
		return outputJSON(map[string]string{key: value})
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "client-id":
		cfg.ClientID = value
	case "client-secret":
		cfg.ClientSecret = value
	case "base-url":
		cfg.BaseURL = value
	default:
		exitWithError(ExitError, "unknown configuration key: %s", key)
	}
	if err := config.SaveGlobalConfig(cfg); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}
	if humanOutput {
		fmt.Printf("%s set\n", key)
		return nil
	}
	return outputJSON(map[string]string{"status": "updated", "key": key})
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
