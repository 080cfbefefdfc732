package file

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/ib-77/try/pkg/try"
)

func TestWriteTextReadText_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "note.txt")

	if res := WriteText(path, "hello, files"); !res.IsSuccess() {
		t.Fatalf("expected write success, got: %v", res.Err())
	}

	res := ReadText(path)
	if !res.IsSuccess() || res.Value() != "hello, files" {
		t.Fatalf("expected 'hello, files' back, got: success=%v, val=%q, err=%v", res.IsSuccess(), res.Value(), res.Err())
	}
}

func TestWriteBytesReadBytes_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "blob.bin")
	payload := []byte{0x00, 0xFF, 0x10, 0x7F}

	if res := WriteBytes(path, payload); !res.IsSuccess() {
		t.Fatalf("expected write success, got: %v", res.Err())
	}

	res := ReadBytes(path)
	if !res.IsSuccess() || !bytes.Equal(res.Value(), payload) {
		t.Fatalf("expected payload back, got: success=%v, val=%v, err=%v", res.IsSuccess(), res.Value(), res.Err())
	}
}

func TestReadText_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.txt")

	res := ReadText(path)
	if !res.IsFailure() {
		t.Fatalf("expected failure for missing file, got success with %q", res.Value())
	}
	if res.Err().Path() != path {
		t.Fatalf("expected path %q on error, got %q", path, res.Err().Path())
	}
	if res.Err().Code() != try.CodeFile {
		t.Fatalf("expected file code, got %v", res.Err().Code())
	}
	if !errors.Is(res.Err(), fs.ErrNotExist) {
		t.Fatalf("expected cause chain to reach fs.ErrNotExist, got: %v", res.Err())
	}
}

func TestReadText_BlankPath(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"", "   "} {
		res := ReadText(path)
		if !res.IsFailure() {
			t.Fatalf("expected failure for blank path %q", path)
		}
		if res.Err().Message() != "empty path" {
			t.Fatalf("expected 'empty path', got %q", res.Err().Message())
		}
	}
}

func TestWriteText_BlankPath(t *testing.T) {
	t.Parallel()

	res := WriteText("  ", "content")
	if !res.IsFailure() || res.Err().Message() != "empty path" {
		t.Fatalf("expected 'empty path' failure, got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
}

func TestWriteText_WithPerm(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "secret.txt")

	if res := WriteText(path, "k", WithPerm(0o600)); !res.IsSuccess() {
		t.Fatalf("expected write success, got: %v", res.Err())
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Fatalf("expected mode 0600, got %o", got)
	}
}

func TestWriteText_UTF16RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wide.txt")
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	const text = "héllo ☃"

	if res := WriteText(path, text, WithEncoding(enc)); !res.IsSuccess() {
		t.Fatalf("expected write success, got: %v", res.Err())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("raw read: %v", err)
	}
	if len(raw) < 2 || raw[0] != 0xFF || raw[1] != 0xFE {
		t.Fatalf("expected little-endian BOM on disk, got % x", raw[:min(len(raw), 4)])
	}

	res := ReadText(path, WithEncoding(enc))
	if !res.IsSuccess() || res.Value() != text {
		t.Fatalf("expected %q back, got: success=%v, val=%q, err=%v", text, res.IsSuccess(), res.Value(), res.Err())
	}
}

func TestWriteText_EncodeFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "latin1.txt")

	res := WriteText(path, "snowman ☃", WithEncoding(charmap.ISO8859_1))
	if !res.IsFailure() {
		t.Fatalf("expected encode failure for unmappable rune")
	}
	if res.Err().Message() != "encode failed" {
		t.Fatalf("expected 'encode failed', got %q", res.Err().Message())
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no file after encode failure, stat err: %v", err)
	}
}

func TestWriteBytes_BlankPath(t *testing.T) {
	t.Parallel()

	res := WriteBytes("", []byte("x"))
	if !res.IsFailure() || res.Err().Message() != "empty path" {
		t.Fatalf("expected 'empty path' failure, got: success=%v, err=%v", res.IsSuccess(), res.Err())
	}
}
