package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newTopCmd() *cobra.Command {
	var sortKey string

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the ranked leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/leaderboard"
			if sortKey != "" {
				path += "?sort=" + url.QueryEscape(sortKey)
			}

			var result Leaderboard
			if err := client.Get(path, &result); err != nil {
				return fmt.Errorf("failed to fetch leaderboard: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key: playTime, deaths, distance, blocksMined, blocksPlaced, itemsCrafted, mobKills")

	return cmd
}
