package rop

import (
	"fmt"
	"strings"
)

const (
	CodeUnknown   = "UNKNOWN_ERROR"
	CodeTimeout   = "TIMEOUT_ERROR"
	CodeAggregate = "AGGREGATE_ERROR"
)

// ResultError is the failure envelope carried by every failed Result.
//
// Raw is always a non-nil error. Code is CodeUnknown when Raw carries no
// usable identifier. Cause, when set, is the normalized form of the error Raw
// wraps.
type ResultError struct {
	Message string
	Raw     error
	Code    string
	Stack   string
	Cause   *ResultError
}

func (e *ResultError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Unwrap exposes Raw so errors.Is / errors.As reach the original error.
func (e *ResultError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Raw
}

// Format prints the code alongside the message for %+v, and the causal
// chain under it.
func (e *ResultError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			var b strings.Builder
			for cur, depth := e, 0; cur != nil; cur, depth = cur.Cause, depth+1 {
				if depth > 0 {
					b.WriteString("\ncaused by: ")
				}
				fmt.Fprintf(&b, "[%s] %s", cur.Code, cur.Message)
			}
			_, _ = s.Write([]byte(b.String()))
			return
		}
		fallthrough
	case 's':
		_, _ = s.Write([]byte(e.Error()))
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// AggregateError holds the ordered failures collected from several results.
type AggregateError struct {
	Errors []*ResultError
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return "1 result failed: " + e.Errors[0].Message
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return fmt.Sprintf("%d results failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *AggregateError) Code() string { return CodeAggregate }

func (e *AggregateError) Name() string { return "AggregateError" }

func (e *AggregateError) Unwrap() []error {
	out := make([]error, 0, len(e.Errors))
	for _, err := range e.Errors {
		out = append(out, err)
	}
	return out
}
