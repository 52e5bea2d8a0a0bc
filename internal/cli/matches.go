package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Completed match history commands",
	}

	cmd.AddCommand(newMatchesRecentCmd())

	return cmd
}

func newMatchesRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently completed matches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []MatchSummary

			if err := client.Get(fmt.Sprintf("/api/v1/matches/recent?limit=%d", limit), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of matches to list")

	return cmd
}
