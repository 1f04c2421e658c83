package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"

	"github.com/garrettladley/lyricboard/internal/config"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

func main() {
	_ = godotenv.Load()

	logger := xslog.NewLoggerFromEnv(os.Stderr)
	slog.SetDefault(logger)

	ctx := xslog.WithLogger(context.Background(), logger)
	root := newRootCmd(&app{readConfig: config.Read})

	err := fang.Execute(ctx, root, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM))
	if code := exitCode(err); code != 0 {
		os.Exit(code)
	}
}

// exitCode is 1 for any failed run. Errors are already logged by the time
// they reach main.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
