package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newDuelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duel",
		Short: "Human-vs-computer duel commands",
	}

	cmd.AddCommand(newDuelStartCmd())
	cmd.AddCommand(newDuelGuessCmd())
	cmd.AddCommand(newDuelSolveCmd())

	return cmd
}

func newDuelStartCmd() *cobra.Command {
	var intelligence int
	var word string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a duel against a computer opponent",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"intelligence": intelligence,
			}
			if word != "" {
				req["word"] = word
			}

			var result DuelState
			if err := client.Post("/api/v1/duels", req, &result); err != nil {
				return err
			}

			if err := saveState("duel", result.State); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&intelligence, "intelligence", 50, "Opponent intelligence, 0 to 100")
	cmd.Flags().StringVar(&word, "word", "", "Your secret word for the computer to guess (default: random)")

	return cmd
}

func newDuelGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <letter>",
		Short: "Guess a letter in the current duel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState("duel")
			if err != nil {
				return err
			}

			req := map[string]any{
				"state":  json.RawMessage(state),
				"letter": args[0],
			}

			var result DuelState
			if err := client.Post("/api/v1/duels/guess", req, &result); err != nil {
				return err
			}

			return finishDuelStep(result)
		},
	}
}

func newDuelSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Solve the opponent's word to win immediately",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState("duel")
			if err != nil {
				return err
			}

			req := map[string]any{
				"state": json.RawMessage(state),
			}

			var result DuelState
			if err := client.Post("/api/v1/duels/solve", req, &result); err != nil {
				return err
			}

			return finishDuelStep(result)
		},
	}
}

// finishDuelStep persists or clears the duel snapshot and prints the result
func finishDuelStep(result DuelState) error {
	if result.View.Finished {
		clearState("duel")
	} else if err := saveState("duel", result.State); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}
