package rop

import (
	"fmt"
	"sync"
	"time"
)

// Variant is a nominal error kind with a stable code and a default data
// template. Variants are declared once, usually at package level, and
// produce *VariantError instances per failure.
type Variant struct {
	name     string
	code     string
	defaults map[string]any
}

func (v *Variant) Name() string { return v.name }

func (v *Variant) Code() string { return v.code }

// Defaults returns a copy of the default data template.
func (v *Variant) Defaults() map[string]any { return cloneMap(v.defaults) }

type variantConfig struct {
	code  string
	data  map[string]any
	cause error
}

type VariantOption func(*variantConfig)

// WithData merges data over the variant defaults. Existing keys are overwritten.
func WithData(data map[string]any) VariantOption {
	return func(c *variantConfig) {
		if c.data == nil {
			c.data = map[string]any{}
		}
		for k, val := range data {
			if mv, ok := val.(map[string]any); ok {
				val = cloneMap(mv)
			}
			c.data[k] = val
		}
	}
}

// WithCode overrides the variant code for a single instance.
func WithCode(code string) VariantOption {
	return func(c *variantConfig) { c.code = code }
}

// WithCause records the error this instance wraps.
func WithCause(err error) VariantOption {
	return func(c *variantConfig) { c.cause = err }
}

// New creates an instance. An empty message falls back to the variant name.
func (v *Variant) New(message string, opts ...VariantOption) *VariantError {
	cfg := variantConfig{code: v.code, data: cloneMap(v.defaults)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if message == "" {
		message = v.name
	}
	return &VariantError{
		variant: v,
		message: message,
		code:    cfg.code,
		data:    cfg.data,
		cause:   cfg.cause,
	}
}

// Newf is New with a formatted message.
func (v *Variant) Newf(format string, args ...any) *VariantError {
	return v.New(fmt.Sprintf(format, args...))
}

// Match reports whether err, or any error it wraps, was produced by v. The
// tree is walked depth first like errors.As, so every branch of a joined
// error and every variant cause is visited.
func (v *Variant) Match(err error) (*VariantError, bool) {
	if IsNil(err) {
		return nil, false
	}
	if ve, ok := err.(*VariantError); ok && ve.variant == v {
		return ve, true
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return v.Match(u.Unwrap())
	case interface{ Unwrap() []error }:
		for _, inner := range u.Unwrap() {
			if ve, ok := v.Match(inner); ok {
				return ve, true
			}
		}
	}
	return nil, false
}

// VariantError is an immutable instance of a Variant.
type VariantError struct {
	variant *Variant
	message string
	code    string
	data    map[string]any
	cause   error
}

func (e *VariantError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *VariantError) Name() string { return e.variant.name }

func (e *VariantError) Code() string { return e.code }

func (e *VariantError) Variant() *Variant { return e.variant }

// Data returns a copy of the instance data.
func (e *VariantError) Data() map[string]any { return cloneMap(e.data) }

func (e *VariantError) Unwrap() error { return e.cause }

// Is matches any instance of the same variant.
func (e *VariantError) Is(target error) bool {
	t, ok := target.(*VariantError)
	return ok && t != nil && e.variant == t.variant
}

// Registry indexes variants by code.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]*Variant
}

func NewRegistry() *Registry {
	return &Registry{variants: map[string]*Variant{}}
}

// Define declares a variant. Codes are unique within a registry.
func (r *Registry) Define(name, code string, defaultData map[string]any) (*Variant, error) {
	if code == "" {
		return nil, fmt.Errorf("rop: variant %q needs a code", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.variants[code]; ok {
		return nil, fmt.Errorf("rop: code %q already defined by variant %q", code, existing.name)
	}
	v := &Variant{name: name, code: code, defaults: cloneMap(defaultData)}
	r.variants[code] = v
	return v, nil
}

func (r *Registry) Lookup(code string) (*Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.variants[code]
	return v, ok
}

// Codes returns every registered code.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.variants))
	for code := range r.variants {
		out = append(out, code)
	}
	return out
}

var defaultRegistry = NewRegistry()

// DefineVariant declares a variant in the process-wide registry and panics
// if the code is taken.
func DefineVariant(name, code string, defaultData map[string]any) *Variant {
	v, err := defaultRegistry.Define(name, code, defaultData)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup finds a variant of the process-wide registry by code.
func Lookup(code string) (*Variant, bool) {
	return defaultRegistry.Lookup(code)
}

// TimeoutError is the failure returned when an operation outlives its deadline.
var TimeoutError = DefineVariant("TimeoutError", CodeTimeout, map[string]any{"timeout": time.Duration(0)})

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
