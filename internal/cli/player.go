package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <uuid>",
		Short: "Resolve a player UUID to a display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerName
			if err := client.Get("/api/v1/players/"+args[0]+"/name", &result); err != nil {
				return fmt.Errorf("failed to resolve player: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
