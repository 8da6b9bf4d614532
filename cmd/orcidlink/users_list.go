package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libsys/orcidlink/internal/mais"
)

var (
	listLimit    int
	listPageSize int
)

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ORCID linkage records",
	Long: `List users known to MaIS, walking the paginated collection to the
end (or to --limit records).

Examples:
  orcidlink users list
  orcidlink users list --limit 10
  orcidlink users list --page-size 500 --human`,
	Args: cobra.NoArgs,
	RunE: runUsersList,
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersListCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum records to return (0 = all)")
	usersListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Server page size (0 = server default)")
}

// UsersListResult is the JSON output for the list command.
type UsersListResult struct {
	Total   int           `json:"total"`
	Records []mais.Record `json:"records"`
}

func runUsersList(cmd *cobra.Command, args []string) error {
	client := newMaisClient()

	records, err := client.FetchAll(context.Background(), listLimit, listPageSize)
	if err != nil {
		exitWithError(ExitError, "fetching users: %v", err)
	}

	if humanOutput {
		for _, rec := range records {
			marker := " "
			if rec.CanUpdate() {
				marker = "*"
			}
			fmt.Printf("%s %-12s %s\n", marker, rec.SunetID, rec.OrcidID)
		}
		fmt.Printf("%d records (* = update scope granted)\n", len(records))
		return nil
	}
	return outputJSON(UsersListResult{Total: len(records), Records: records})
}
