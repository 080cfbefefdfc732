package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ib-77/try/pkg/try"
)

const (
	typeInt     = "int"
	typeInt64   = "int64"
	typeFloat64 = "float64"
	typeDecimal = "decimal.Decimal"
	typeBool    = "bool"
	typeTime    = "time.Time"
	typeUUID    = "uuid.UUID"
)

var defaultLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type config struct {
	base     int
	layouts  []string
	location *time.Location
}

// Option adjusts a single parse.
type Option func(*config)

// WithBase sets the numeric base for Int and Int64. Base 0 lets the usual
// 0b/0o/0x prefixes pick it. Other operations ignore it.
func WithBase(base int) Option {
	return func(c *config) { c.base = base }
}

// WithLayouts replaces the layout set Time tries, in order.
func WithLayouts(layouts ...string) Option {
	return func(c *config) {
		if len(layouts) > 0 {
			c.layouts = layouts
		}
	}
}

// WithLocation sets the location applied to layouts that carry no zone.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{base: 10, layouts: defaultLayouts, location: time.UTC}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func ok[T any](v T) try.Result[T, *try.ParseError] {
	return try.Success[T, *try.ParseError](v)
}

func fail[T any](err *try.ParseError) try.Result[T, *try.ParseError] {
	return try.Fail[T, *try.ParseError](err)
}

func failBlank[T any](text, targetType string) try.Result[T, *try.ParseError] {
	return fail[T](try.NewParseError("empty input", text, targetType, nil))
}

func blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

// Int parses text as a signed integer. Surrounding whitespace is ignored;
// blank text fails before the collaborator runs.
func Int(text string, opts ...Option) try.Result[int, *try.ParseError] {
	if blank(text) {
		return failBlank[int](text, typeInt)
	}
	cfg := newConfig(opts)

	v, err := strconv.ParseInt(strings.TrimSpace(text), cfg.base, 0)
	if err != nil {
		return fail[int](try.NewParseError("invalid int", text, typeInt, err))
	}
	return ok(int(v))
}

// Int64 parses text as an int64, honoring WithBase like Int.
func Int64(text string, opts ...Option) try.Result[int64, *try.ParseError] {
	if blank(text) {
		return failBlank[int64](text, typeInt64)
	}
	cfg := newConfig(opts)

	v, err := strconv.ParseInt(strings.TrimSpace(text), cfg.base, 64)
	if err != nil {
		return fail[int64](try.NewParseError("invalid int64", text, typeInt64, err))
	}
	return ok(v)
}

// Float64 parses text as a float64.
func Float64(text string, opts ...Option) try.Result[float64, *try.ParseError] {
	if blank(text) {
		return failBlank[float64](text, typeFloat64)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return fail[float64](try.NewParseError("invalid float64", text, typeFloat64, err))
	}
	return ok(v)
}

// Decimal parses text as an arbitrary-precision decimal, for amounts where
// float64 rounding is unacceptable.
func Decimal(text string, opts ...Option) try.Result[decimal.Decimal, *try.ParseError] {
	if blank(text) {
		return failBlank[decimal.Decimal](text, typeDecimal)
	}

	v, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return fail[decimal.Decimal](try.NewParseError("invalid decimal.Decimal", text, typeDecimal, err))
	}
	return ok(v)
}

// Bool parses text with strconv.ParseBool semantics (1/t/true, 0/f/false).
func Bool(text string, opts ...Option) try.Result[bool, *try.ParseError] {
	if blank(text) {
		return failBlank[bool](text, typeBool)
	}

	v, err := strconv.ParseBool(strings.TrimSpace(text))
	if err != nil {
		return fail[bool](try.NewParseError("invalid bool", text, typeBool, err))
	}
	return ok(v)
}

// Time parses text against the configured layouts in order and returns the
// first match. Layouts without zone information are interpreted in the
// configured location (UTC when unset); the cause on failure is the last
// layout's error.
func Time(text string, opts ...Option) try.Result[time.Time, *try.ParseError] {
	if blank(text) {
		return failBlank[time.Time](text, typeTime)
	}
	cfg := newConfig(opts)
	trimmed := strings.TrimSpace(text)

	var lastErr error
	for _, layout := range cfg.layouts {
		t, err := time.ParseInLocation(layout, trimmed, cfg.location)
		if err == nil {
			return ok(t)
		}
		lastErr = err
	}
	return fail[time.Time](try.NewParseError("invalid time.Time", text, typeTime, lastErr))
}

// UUID parses text as an RFC 4122 UUID.
func UUID(text string, opts ...Option) try.Result[uuid.UUID, *try.ParseError] {
	if blank(text) {
		return failBlank[uuid.UUID](text, typeUUID)
	}

	v, err := uuid.Parse(strings.TrimSpace(text))
	if err != nil {
		return fail[uuid.UUID](try.NewParseError("invalid uuid.UUID", text, typeUUID, err))
	}
	return ok(v)
}
