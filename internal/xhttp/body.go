package xhttp

import (
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

// MaxExcerpt bounds how much of an error response body ends up in logs.
const MaxExcerpt = 512

// IsSuccess reports whether status is 2xx.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// ReadExcerpt drains resp.Body and returns at most MaxExcerpt bytes of it,
// trimmed of surrounding whitespace. Read errors yield whatever was read.
func ReadExcerpt(resp *http.Response) string {
	if resp == nil || resp.Body == nil {
		return ""
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxExcerpt+1))
	_, _ = io.Copy(io.Discard, resp.Body)
	return Excerpt(string(body))
}

// Excerpt truncates s to MaxExcerpt bytes without splitting a rune.
func Excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= MaxExcerpt {
		return s
	}
	cut := MaxExcerpt
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
