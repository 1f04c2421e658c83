package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/lyricboard/internal/schedule"
	"github.com/garrettladley/lyricboard/internal/xerrors"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

func scheduleCmd(a *app) *cobra.Command {
	var spec string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Keep running and send a lyric on a cron schedule",
		Long:  "Runs in the foreground and sends one lyric each time the schedule fires (default: every day at 09:00). Overlapping runs are skipped.",
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
			if spec == "" {
				spec = cfg.Schedule
			}

			loc, err := cfg.ScheduleLocation()
			if err != nil {
				return configError(ctx, err)
			}
			s, err := schedule.New(spec, xslog.FromContext(ctx), schedule.WithLocation(loc))
			if err != nil {
				return configError(ctx, err)
			}

			d := newDispatcher(ctx, cfg)
			return s.Run(ctx, func(ctx context.Context) error {
				if _, err := d.Run(ctx); err != nil {
					return fmt.Errorf("failed to send lyric: %w", err)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&spec, "cron", "", "cron expression, overrides SCHEDULE")
	return cmd
}

func configError(ctx context.Context, cause error) error {
	err := xerrors.Configuration(xerrors.WithOp("config"), xerrors.WithCause(cause))
	xerrors.Log(ctx, err)
	return err
}
