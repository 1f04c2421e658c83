package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/lyricboard/internal/board"
	"github.com/garrettladley/lyricboard/internal/xerrors"
)

func previewCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Format a random lyric and show it here instead of on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := a.readConfig()
			if err != nil {
				xerrors.Log(ctx, err)
				return err
			}

			result, err := newDispatcher(ctx, cfg).Preview(ctx)
			if err != nil {
				return fmt.Errorf("failed to preview lyric: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n\n", result.Lyric, result.Origin)
			if plain {
				fmt.Fprintln(out, result.Grid.Text())
			} else {
				fmt.Fprintln(out, board.Render(result.Grid))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the grid as plain text without colors")
	return cmd
}
