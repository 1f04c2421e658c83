package validator

import (
	"slices"
	"strings"

	"github.com/garrettladley/lyricboard/internal/xerrors"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors
	// keyed by field. returns nil if no errors are found
	Validate() map[string]string
}

// Validate folds field errors into one configuration error, ordered by
// field name so the message is stable.
func Validate(v Validator) *xerrors.Error {
	fields := v.Validate()
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = k + ": " + fields[k]
	}

	return xerrors.Configuration(
		xerrors.WithOp("config"),
		xerrors.WithMessage(strings.Join(msgs, "; ")),
	)
}
