package file

import (
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/ib-77/try/pkg/try"
)

const defaultPerm fs.FileMode = 0o644

type config struct {
	enc  encoding.Encoding
	perm fs.FileMode
}

// Option adjusts how a single read or write behaves.
type Option func(*config)

// WithEncoding selects the on-disk character encoding. Reads decode from it
// into UTF-8, writes encode into it. Without this option bytes pass through
// untouched.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.enc = enc }
}

// WithPerm sets the file mode used when a write creates the file.
func WithPerm(perm fs.FileMode) Option {
	return func(c *config) { c.perm = perm }
}

func newConfig(opts []Option) config {
	cfg := config{perm: defaultPerm}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func ok[T any](v T) try.Result[T, *try.FileError] {
	return try.Success[T, *try.FileError](v)
}

func fail[T any](err *try.FileError) try.Result[T, *try.FileError] {
	return try.Fail[T, *try.FileError](err)
}

func blank(path string) bool {
	return strings.TrimSpace(path) == ""
}

// ReadText reads the whole file at path as a string. A blank path fails
// before the filesystem is touched; read and decode errors become a
// FileError carrying the path and the cause.
func ReadText(path string, opts ...Option) try.Result[string, *try.FileError] {
	if blank(path) {
		return fail[string](try.NewFileError("empty path", path, nil))
	}
	cfg := newConfig(opts)

	raw, err := os.ReadFile(path)
	if err != nil {
		return fail[string](try.NewFileError("read failed", path, err))
	}
	if cfg.enc == nil {
		return ok(string(raw))
	}

	decoded, err := cfg.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return fail[string](try.NewFileError("decode failed", path, err))
	}
	return ok(string(decoded))
}

// ReadBytes reads the whole file at path without any decoding.
func ReadBytes(path string) try.Result[[]byte, *try.FileError] {
	if blank(path) {
		return fail[[]byte](try.NewFileError("empty path", path, nil))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fail[[]byte](try.NewFileError("read failed", path, err))
	}
	return ok(raw)
}

// WriteText writes content to path, creating the file with the configured
// mode. With WithEncoding the UTF-8 content is encoded first; an
// unrepresentable rune fails before anything is written.
func WriteText(path, content string, opts ...Option) try.Result[try.Unit, *try.FileError] {
	if blank(path) {
		return fail[try.Unit](try.NewFileError("empty path", path, nil))
	}
	cfg := newConfig(opts)

	data := []byte(content)
	if cfg.enc != nil {
		encoded, err := cfg.enc.NewEncoder().Bytes(data)
		if err != nil {
			return fail[try.Unit](try.NewFileError("encode failed", path, err))
		}
		data = encoded
	}

	if err := os.WriteFile(path, data, cfg.perm); err != nil {
		return fail[try.Unit](try.NewFileError("write failed", path, err))
	}
	return ok(try.Unit{})
}

// WriteBytes writes data to path as-is with the default file mode.
func WriteBytes(path string, data []byte) try.Result[try.Unit, *try.FileError] {
	if blank(path) {
		return fail[try.Unit](try.NewFileError("empty path", path, nil))
	}
	if err := os.WriteFile(path, data, defaultPerm); err != nil {
		return fail[try.Unit](try.NewFileError("write failed", path, err))
	}
	return ok(try.Unit{})
}
