package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/lyricboard/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func RunID(id string) slog.Attr {
	const runIDKey = "run_id"
	return slog.String(runIDKey, id)
}

func Step(step string) slog.Attr {
	const stepKey = "step"
	return slog.String(stepKey, step)
}

func Lyric(lyric string) slog.Attr {
	const lyricKey = "lyric"
	return slog.String(lyricKey, lyric)
}

func Source(source string) slog.Attr {
	const sourceKey = "source"
	return slog.String(sourceKey, source)
}

func Candidates(n int) slog.Attr {
	const candidatesKey = "candidates"
	return slog.Int(candidatesKey, n)
}

func Rows(n int) slog.Attr {
	const rowsKey = "rows"
	return slog.Int(rowsKey, n)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Schedule(spec string) slog.Attr {
	const scheduleKey = "schedule"
	return slog.String(scheduleKey, spec)
}

func Next(t time.Time) slog.Attr {
	const nextKey = "next"
	return slog.Time(nextKey, t)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}
