package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Secret holds a credential. Its printed and logged forms are redacted.
type Secret string

var (
	_ fmt.Stringer   = Secret("")
	_ fmt.GoStringer = Secret("")
	_ slog.LogValuer = Secret("")
)

const visibleSuffix = 4

func (s Secret) Reveal() string { return string(s) }

func (s Secret) IsZero() bool { return strings.TrimSpace(string(s)) == "" }

func (s Secret) String() string {
	if s.IsZero() {
		return ""
	}
	// short secrets are fully masked
	if len(s) <= 2*visibleSuffix {
		return "****"
	}
	return "****" + string(s[len(s)-visibleSuffix:])
}

func (s Secret) GoString() string { return s.String() }

func (s Secret) LogValue() slog.Value { return slog.StringValue(s.String()) }
