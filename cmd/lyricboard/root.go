package main

import (
	"github.com/spf13/cobra"

	"github.com/garrettladley/lyricboard/internal/config"
	"github.com/garrettladley/lyricboard/internal/version"
)

type app struct {
	readConfig func() (config.Config, error)
}

func newRootCmd(a *app) *cobra.Command {
	send := sendCmd(a)

	root := &cobra.Command{
		Use:           "lyricboard",
		Short:         "Send a song lyric to your Vestaboard",
		Long:          "Picks a lyric, lays it out with VBML, and pushes it to a Vestaboard. Run it once a day from cron or CI.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          send.RunE,
	}

	root.AddCommand(
		send,
		previewCmd(a),
		textCmd(a),
		scheduleCmd(a),
		lyricsCmd(a),
	)

	return root
}

// versionString marks local and unreleased builds so bug reports say which
// kind of binary was running.
func versionString() string {
	v := version.Get()
	if version.IsDevelopment(v) {
		return v + " (development build)"
	}
	return v
}
