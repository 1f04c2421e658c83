package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/lyricboard/internal/xerrors"
	"github.com/garrettladley/lyricboard/internal/xhttp"
)

func lyricsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lyrics",
		Short: "List the lyrics a run would choose from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := a.readConfig()
			if err != nil {
				xerrors.Log(ctx, err)
				return err
			}

			httpClient := xhttp.NewHTTPClient(xhttp.WithTimeout(cfg.HTTPTimeout))
			pool, origin := newSelector(ctx, cfg, httpClient).Candidates(ctx)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d lyrics from %s:\n", len(pool), origin)
			for i, lyric := range pool {
				fmt.Fprintf(out, "%3d. %s\n", i+1, strings.ReplaceAll(lyric, "\n", " / "))
			}
			return nil
		},
	}
}
