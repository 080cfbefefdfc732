// Package file provides safe whole-file reads and writes. Every operation
// returns a Result whose failure is a FileError carrying the attempted
// path, so callers never touch os errors directly.
//
// Highlights:
// - ReadText/ReadBytes: load a file as string or raw bytes
// - WriteText/WriteBytes: store content, creating the file if needed
// - WithEncoding: transcode between UTF-8 and an on-disk charset
// - WithPerm: file mode for writes (0o644 when unset)
//
// A blank path is rejected before the filesystem is touched.
package file
