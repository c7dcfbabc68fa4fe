package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omibyte.io/prci/targets"
)

func newBoardsCmd(env Env) *cobra.Command {
	var soc string
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List the known boards and the build tags their firmware needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			boards := targets.All()
			if len(soc) > 0 {
				if boards = boards.FindBySoC(soc); len(boards) == 0 {
					return fmt.Errorf("soc %s: %w", soc, targets.ErrTargetNotFound)
				}
			}

			for _, board := range boards {
				current := " "
				if board.Name == env.Value("PRCIBOARD") {
					current = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-18s %-6s %7.2f MHz  -tags=%s\n",
					current, board.Name, board.SoC, float64(board.HFClk)/1e6, board.BuildTags())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&soc, "soc", "", "only list boards built around this SoC")
	return cmd
}
