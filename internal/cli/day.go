package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Day submission and status operations",
	}

	cmd.AddCommand(newDaySubmitCmd())
	cmd.AddCommand(newDayStatusCmd())

	return cmd
}

func newDaySubmitCmd() *cobra.Command {
	var (
		accepted bool
		message  string
		name     string
		choice   string
		payload  string
	)

	cmd := &cobra.Command{
		Use:   "submit <code> <day>",
		Short: "Submit your answer for a day",
		Long: `Submit your answer for a day. Which flag matters depends on the day:

  day 1:       --accepted
  day 2:       --message (and optionally --name)
  days 3,5,6:  --choice
  days 4,7:    --payload (a JSON document)
  day 8:       no flags needed

The day completes when both players have submitted (day 8 on the first
submission), and the shared reflection is printed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.PlayerID == "" {
				return fmt.Errorf("no player identity; create or join a room first, or pass --player")
			}

			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("day must be a number: %s", args[1])
			}

			body := map[string]any{
				"player_id": cfg.PlayerID,
			}
			if accepted {
				body["accepted"] = true
			}
			if message != "" {
				body["message"] = message
			}
			if name != "" {
				body["name"] = name
			}
			if choice != "" {
				body["choice"] = choice
			}
			if payload != "" {
				var raw json.RawMessage
				if err := json.Unmarshal([]byte(payload), &raw); err != nil {
					return fmt.Errorf("--payload must be valid JSON: %w", err)
				}
				body["payload"] = raw
			}

			path := fmt.Sprintf("/api/v1/rooms/%s/days/%d/submit", args[0], day)

			var result SubmitResult
			if err := client.Post(path, body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&accepted, "accepted", false, "Accept the invitation (day 1)")
	cmd.Flags().StringVar(&message, "message", "", "Your message (day 2)")
	cmd.Flags().StringVar(&name, "name", "", "Name to sign the message with (day 2)")
	cmd.Flags().StringVar(&choice, "choice", "", "Your choice (days 3, 5, 6)")
	cmd.Flags().StringVar(&payload, "payload", "", "Structured JSON answer (days 4, 7)")

	return cmd
}

func newDayStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <code> <day>",
		Short: "Show a day's status from your perspective",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.PlayerID == "" {
				return fmt.Errorf("no player identity; create or join a room first, or pass --player")
			}

			day, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("day must be a number: %s", args[1])
			}

			path := fmt.Sprintf("/api/v1/rooms/%s/days/%d/status?player_id=%s",
				args[0], day, url.QueryEscape(cfg.PlayerID))

			var result StatusResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
