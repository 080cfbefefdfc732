package try

import "fmt"

// Code is the stable, machine-readable identifier of an error kind. Codes
// are fixed per concrete type and never computed, so callers can match on
// them across versions.
type Code string

const (
	CodeCollection Code = "collection"
	CodeFile       Code = "file"
	CodeJSON       Code = "json"
	CodeParse      Code = "parse"
	CodeHTTP       Code = "http"
	CodeHTTPJSON   Code = "http.json"
)

// Error is the contract every failure carried by a Result satisfies: a
// stable code, a human-readable message, and the collaborator's original
// error preserved for errors.Is / errors.As via Unwrap.
//
// The set of implementations is closed; the unexported method keeps new
// kinds from being declared outside this package.
type Error interface {
	error
	Code() Code
	Message() string
	Unwrap() error
	sealed()
}

var (
	_ Error = (*CollectionError)(nil)
	_ Error = (*FileError)(nil)
	_ Error = (*JSONError)(nil)
	_ Error = (*ParseError)(nil)
	_ Error = (*HTTPError)(nil)
	_ Error = (*CompositeError)(nil)
)

func render(code Code, message string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", code, message, cause)
	}
	return fmt.Sprintf("%s: %s", code, message)
}

// CollectionError reports a failed lookup on a map, slice or sequence.
// Key holds the key or index that was attempted, or the "first"/"last"
// sentinel for empty-sequence accessors.
type CollectionError struct {
	message string
	key     any
	cause   error
}

func NewCollectionError(message string, key any, cause error) *CollectionError {
	return &CollectionError{message: message, key: key, cause: cause}
}

func (e *CollectionError) Error() string   { return render(CodeCollection, e.message, e.cause) }
func (e *CollectionError) Code() Code      { return CodeCollection }
func (e *CollectionError) Message() string { return e.message }
func (e *CollectionError) Unwrap() error   { return e.cause }
func (e *CollectionError) Key() any        { return e.key }
func (e *CollectionError) sealed()         {}

// FileError reports a failed read or write. Path holds the path that was
// attempted, even when it never reached the filesystem.
type FileError struct {
	message string
	path    string
	cause   error
}

func NewFileError(message, path string, cause error) *FileError {
	return &FileError{message: message, path: path, cause: cause}
}

func (e *FileError) Error() string   { return render(CodeFile, e.message, e.cause) }
func (e *FileError) Code() Code      { return CodeFile }
func (e *FileError) Message() string { return e.message }
func (e *FileError) Unwrap() error   { return e.cause }
func (e *FileError) Path() string    { return e.path }
func (e *FileError) sealed()         {}

// JSONError reports a failed serialization or deserialization, including
// empty input and decodes that produce an unexpected null.
type JSONError struct {
	message string
	cause   error
}

func NewJSONError(message string, cause error) *JSONError {
	return &JSONError{message: message, cause: cause}
}

func (e *JSONError) Error() string   { return render(CodeJSON, e.message, e.cause) }
func (e *JSONError) Code() Code      { return CodeJSON }
func (e *JSONError) Message() string { return e.message }
func (e *JSONError) Unwrap() error   { return e.cause }
func (e *JSONError) sealed()         {}

// ParseError reports a failed text-to-value conversion. Input holds the
// original text, TargetType the type it failed to become.
type ParseError struct {
	message    string
	input      string
	targetType string
	cause      error
}

func NewParseError(message, input, targetType string, cause error) *ParseError {
	return &ParseError{message: message, input: input, targetType: targetType, cause: cause}
}

func (e *ParseError) Error() string      { return render(CodeParse, e.message, e.cause) }
func (e *ParseError) Code() Code         { return CodeParse }
func (e *ParseError) Message() string    { return e.message }
func (e *ParseError) Unwrap() error      { return e.cause }
func (e *ParseError) Input() string      { return e.input }
func (e *ParseError) TargetType() string { return e.targetType }
func (e *ParseError) sealed()            {}

// HTTPError reports a failed HTTP operation: bad arguments, a transport
// failure, or (for JSON-integrated operations) an unusable status.
// StatusCode is zero when no response was received.
type HTTPError struct {
	message    string
	requestURI string
	statusCode int
	cause      error
}

func NewHTTPError(message, requestURI string, statusCode int, cause error) *HTTPError {
	return &HTTPError{message: message, requestURI: requestURI, statusCode: statusCode, cause: cause}
}

func (e *HTTPError) Error() string      { return render(CodeHTTP, e.message, e.cause) }
func (e *HTTPError) Code() Code         { return CodeHTTP }
func (e *HTTPError) Message() string    { return e.message }
func (e *HTTPError) Unwrap() error      { return e.cause }
func (e *HTTPError) RequestURI() string { return e.requestURI }
func (e *HTTPError) StatusCode() int    { return e.statusCode }
func (e *HTTPError) sealed()            {}

type compositePhase int

const (
	phaseNone compositePhase = iota
	phaseHTTP
	phaseJSON
)

// CompositeError is the failure of a two-phase HTTP+JSON operation. The
// phase tag guarantees at most one underlying error is populated: the HTTP
// phase short-circuits, so a JSON-phase error implies the transport itself
// did not fail. The zero value is the "no failure" placeholder and is never
// carried by a failed Result.
type CompositeError struct {
	phase      compositePhase
	underlying Error
}

// CompositeFromHTTP builds the composite for a failed HTTP phase.
func CompositeFromHTTP(cause *HTTPError) *CompositeError {
	if cause == nil {
		panic("try: CompositeFromHTTP called with nil cause")
	}
	return &CompositeError{phase: phaseHTTP, underlying: cause}
}

// CompositeFromJSON builds the composite for a failed JSON phase.
func CompositeFromJSON(cause *JSONError) *CompositeError {
	if cause == nil {
		panic("try: CompositeFromJSON called with nil cause")
	}
	return &CompositeError{phase: phaseJSON, underlying: cause}
}

func (e *CompositeError) Error() string {
	if e.underlying == nil {
		return string(CodeHTTPJSON) + ": no failure recorded"
	}
	return fmt.Sprintf("%s: %v", CodeHTTPJSON, e.underlying)
}

func (e *CompositeError) Code() Code { return CodeHTTPJSON }

func (e *CompositeError) Message() string {
	if e.underlying == nil {
		return ""
	}
	return e.underlying.Message()
}

// Unwrap exposes the underlying phase error, so errors.As reaches the
// concrete HTTPError or JSONError and errors.Is reaches its cause.
func (e *CompositeError) Unwrap() error {
	if e.underlying == nil {
		return nil
	}
	return e.underlying
}

func (e *CompositeError) IsHTTPError() bool { return e.phase == phaseHTTP }
func (e *CompositeError) IsJSONError() bool { return e.phase == phaseJSON }

// Underlying returns whichever phase error is populated, or nil for the
// placeholder state. Callers that care which phase failed use HTTPError or
// JSONError instead.
func (e *CompositeError) Underlying() Error {
	return e.underlying
}

// HTTPError returns the HTTP-phase error, or nil when the HTTP phase did
// not fail.
func (e *CompositeError) HTTPError() *HTTPError {
	if e.phase != phaseHTTP {
		return nil
	}
	return e.underlying.(*HTTPError)
}

// JSONError returns the JSON-phase error, or nil when the JSON phase did
// not fail.
func (e *CompositeError) JSONError() *JSONError {
	if e.phase != phaseJSON {
		return nil
	}
	return e.underlying.(*JSONError)
}

func (e *CompositeError) sealed() {}
