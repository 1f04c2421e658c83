package xerrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindConfiguration covers a missing credential or an empty candidate pool.
	KindConfiguration Kind = "configuration"
	// KindFormatting covers a rejected or malformed formatting exchange.
	KindFormatting Kind = "formatting"
	// KindDelivery covers an unreachable display service or a rejected grid.
	KindDelivery Kind = "delivery"
)

type Error struct {
	Kind       Kind
	Op         string
	Message    string
	StatusCode int
	Body       string
	Cause      error
}

func (e *Error) Error() string {
	msg := string(e.Kind) + " error"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

func Configuration(opts ...Option) *Error { return newErr(KindConfiguration, opts) }
func Formatting(opts ...Option) *Error    { return newErr(KindFormatting, opts) }
func Delivery(opts ...Option) *Error      { return newErr(KindDelivery, opts) }

func newErr(kind Kind, opts []Option) *Error {
	e := &Error{Kind: kind}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithOp(op string) Option       { return func(e *Error) { e.Op = op } }
func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }
func WithStatus(status int) Option  { return func(e *Error) { e.StatusCode = status } }
func WithBody(body string) Option   { return func(e *Error) { e.Body = body } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func IsKind(err error, kind Kind) bool {
	e := As(err)
	return e != nil && e.Kind == kind
}
