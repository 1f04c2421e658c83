package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garrettladley/lyricboard/internal/xerrors"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

func sendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Send one random lyric to the board",
		Long:  "Selects a lyric, formats it with VBML, and sends it to the board. Any failure exits non-zero; nothing is retried.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := a.readConfig()
			if err != nil {
				xerrors.Log(ctx, err)
				return err
			}
			if err := cfg.RequireAPIKey(); err != nil {
				xerrors.Log(ctx, err)
				return err
			}

			xslog.FromContext(ctx).InfoContext(ctx, "starting run", xslog.Version())

			result, err := newDispatcher(ctx, cfg).Run(ctx)
			if err != nil {
				return fmt.Errorf("failed to send lyric: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sent to Vestaboard: %s\n", result.Lyric)
			return nil
		},
	}
}

func textCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "text <message...>",
		Short: "Send a plain text message to the board",
		Long:  "Sends the message as-is and lets the board lay it out, skipping VBML formatting.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := a.readConfig()
			if err != nil {
				xerrors.Log(ctx, err)
				return err
			}
			if err := cfg.RequireAPIKey(); err != nil {
				xerrors.Log(ctx, err)
				return err
			}

			text := strings.Join(args, " ")
			if _, err := newDispatcher(ctx, cfg).SendText(ctx, text); err != nil {
				return fmt.Errorf("failed to send text: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sent to Vestaboard: %s\n", text)
			return nil
		},
	}
}
