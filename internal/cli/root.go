package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "eightdays",
		Short: "CLI tool for the eight-day ritual API",
		Long: `eightdays is a CLI tool for interacting with the eight-day ritual JSON API.

It supports creating and joining rooms, submitting day answers, checking
day status, and streaming room events over SSE. Your player identity is
saved after create/join so later commands can reuse it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load saved identity if not provided via flag/env
			if err := cfg.LoadPlayerID(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: EIGHTDAYS_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerID, "player", cfg.PlayerID, "Player id (env: EIGHTDAYS_PLAYER)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerIDFile, "player-file", cfg.PlayerIDFile, "Identity file path (env: EIGHTDAYS_PLAYER_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newDayCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
