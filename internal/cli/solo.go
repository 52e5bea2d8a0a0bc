package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newSoloCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solo",
		Short: "Solo game commands",
	}

	cmd.AddCommand(newSoloStartCmd())
	cmd.AddCommand(newSoloGuessCmd())

	return cmd
}

func newSoloStartCmd() *cobra.Command {
	var maxAttempts int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a solo game against a random word",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{}
			if maxAttempts > 0 {
				req["max_attempts"] = maxAttempts
			}

			var result SoloState
			if err := client.Post("/api/v1/solo", req, &result); err != nil {
				return err
			}

			if err := saveState("solo", result.State); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxAttempts, "attempts", 0, "Wrong-guess budget (default: server default)")

	return cmd
}

func newSoloGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <letter>",
		Short: "Guess a letter in the current solo game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState("solo")
			if err != nil {
				return err
			}

			req := map[string]any{
				"state":  json.RawMessage(state),
				"letter": args[0],
			}

			var result SoloGuessResult
			if err := client.Post("/api/v1/solo/guess", req, &result); err != nil {
				return err
			}

			if result.Game.Finished {
				clearState("solo")
			} else if err := saveState("solo", result.Game.State); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
