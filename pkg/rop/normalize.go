package rop

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type coder interface{ Code() string }

type namer interface{ Name() string }

type stacker interface{ Stack() string }

// Normalize converts any failure value (a returned error, a recovered panic
// value, or nil) into a *ResultError. It never panics and is idempotent: a
// *ResultError holding a Raw error is returned unchanged.
func Normalize(thrown any) (out *ResultError) {
	defer func() {
		if r := recover(); r != nil {
			out = unknown(fmt.Errorf("Unknown error: %s", safeSprint(r)))
		}
	}()

	if IsNil(thrown) {
		return unknown(errors.New("Unknown error: <nil>"))
	}

	switch v := thrown.(type) {
	case *ResultError:
		if v.Raw != nil {
			return v
		}
		return rebuild(v)
	case error:
		return fromError(v)
	case string:
		return unknown(errors.New(v))
	default:
		return unknown(fmt.Errorf("Unknown error: %v", v))
	}
}

// FromPanic is Normalize for a value returned by recover(). It must be
// called from the deferred function so the captured stack points at the
// panic site. The stack is attached only if the value did not bring one.
func FromPanic(recovered any) *ResultError {
	n := Normalize(recovered)
	if n.Stack != "" {
		return n
	}
	cp := *n
	cp.Stack = string(debug.Stack())
	return &cp
}

func fromError(err error) *ResultError {
	out := &ResultError{
		Message: err.Error(),
		Raw:     err,
		Code:    codeOf(err),
	}
	if s, ok := err.(stacker); ok {
		out.Stack = s.Stack()
	}
	if cause := errors.Unwrap(err); !IsNil(cause) {
		out.Cause = Normalize(cause)
	}
	return out
}

// rebuild completes a hand-made *ResultError that lacks a Raw error.
func rebuild(e *ResultError) *ResultError {
	cp := *e
	if cp.Message == "" {
		cp.Message = "Unknown error: <nil>"
	}
	if cp.Code == "" {
		cp.Code = CodeUnknown
	}
	cp.Raw = errors.New(cp.Message)
	return &cp
}

func codeOf(err error) string {
	if c, ok := err.(coder); ok && c.Code() != "" {
		return c.Code()
	}
	if n, ok := err.(namer); ok && !genericName(n.Name()) {
		return n.Name()
	}
	return CodeUnknown
}

func genericName(name string) bool {
	switch name {
	case "", "Error", "error":
		return true
	}
	return false
}

func unknown(raw error) *ResultError {
	return &ResultError{Message: raw.Error(), Raw: raw, Code: CodeUnknown}
}

func safeSprint(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("%T", v)
		}
	}()
	return fmt.Sprint(v)
}
