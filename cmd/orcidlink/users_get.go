package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	getSunet string
	getOrcid string
)

var usersGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Look up one user's ORCID linkage",
	Long: `Look up a single user by sunet id or by ORCID iD.

The ORCID iD may be given bare or in URI form; when both flags are set
the sunet id wins.

Examples:
  orcidlink users get --sunet alice
  orcidlink users get --orcid 0000-0002-7262-6251
  orcidlink users get --orcid https://orcid.org/0000-0002-7262-6251`,
	Args: cobra.NoArgs,
	RunE: runUsersGet,
}

func init() {
	usersCmd.AddCommand(usersGetCmd)
	usersGetCmd.Flags().StringVar(&getSunet, "sunet", "", "Sunet id to look up")
	usersGetCmd.Flags().StringVar(&getOrcid, "orcid", "", "ORCID iD to look up (bare or URI form)")
}

func runUsersGet(cmd *cobra.Command, args []string) error {
	if getSunet == "" && getOrcid == "" {
		exitWithError(ExitError, "either --sunet or --orcid is required")
	}

	client := newMaisClient()
	rec, err := client.FetchOne(context.Background(), getSunet, getOrcid)
	if err != nil {
		exitWithError(ExitError, "fetching user: %v", err)
	}
	if rec == nil {
		key := getSunet
		if key == "" {
			key = getOrcid
		}
		exitWithError(ExitNotFound, "no linkage found for %s", key)
	}

	if humanOutput {
		fmt.Printf("sunet:        %s\n", rec.SunetID)
		fmt.Printf("orcid:        %s\n", rec.OrcidID)
		fmt.Printf("scope:        %s\n", rec.Scope)
		fmt.Printf("can update:   %v\n", rec.CanUpdate())
		fmt.Printf("last updated: %s\n", rec.LastUpdated)
		return nil
	}
	return outputJSON(rec)
}
