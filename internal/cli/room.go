package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Two-player match room commands",
	}

	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomGetCmd())
	cmd.AddCommand(newRoomWordCmd())
	cmd.AddCommand(newRoomGuessCmd())
	cmd.AddCommand(newRoomSolveCmd())
	cmd.AddCommand(newRoomWatchCmd())

	return cmd
}

func newRoomJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <room>",
		Short: "Join a room, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoomState

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/join", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <room>",
		Short: "Show the room from your side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoomState

			if err := client.Get(fmt.Sprintf("/api/v1/rooms/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "word <room> <word>",
		Short: "Submit your secret word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"word": args[1]}
			var result RoomState

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/word", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <room> <letter>",
		Short: "Guess a letter in the opponent's word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"letter": args[1]}
			var result GuessResult

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/guess", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <room>",
		Short: "Solve the opponent's word to win immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GuessResult

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/solve", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <room>",
		Short: "Poll a room and print each change",
		Long: `Poll the room at a fixed interval and print a fresh snapshot whenever
its version moves. Press Ctrl+C to stop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchRoom(args[0], interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Polling interval")

	return cmd
}

func watchRoom(roomID string, interval time.Duration) error {
	out := NewOutput(cfg.Output)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var since int64
	for {
		var result RoomState
		if err := client.Get(fmt.Sprintf("/api/v1/rooms/%s?since=%d", roomID, since), &result); err != nil {
			return err
		}

		if result.Changed {
			since = result.Version
			out.Print(result)
			fmt.Println()
		}

		if result.View != nil && result.View.Finished {
			return nil
		}

		select {
		case <-sigCh:
			return nil
		case <-ticker.C:
		}
	}
}
