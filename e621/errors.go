package e621

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrAuthRequired is returned (wrapped with the operation name) when an
// operation needing credentials is attempted on an unauthenticated client.
var ErrAuthRequired = errors.New("authentication required")

// ErrorKind classifies an APIError.
type ErrorKind string

const (
	// KindUnexpectedStatus marks any non-2xx/204 status not otherwise
	// classified.
	KindUnexpectedStatus ErrorKind = "unexpected_status"
	// KindParse marks a 2xx response whose body was not valid JSON.
	KindParse ErrorKind = "parse"
	// KindEditWindowExpired marks the rejection of an edit on a resource
	// whose edit window has closed (blips older than five minutes).
	KindEditWindowExpired ErrorKind = "edit_window_expired"
)

// APIError represents a response the server produced but the client could
// not accept. It is immutable once constructed and never retried.
type APIError struct {
	Kind          ErrorKind
	StatusCode    int
	Status        string
	Method        string
	Path          string
	RequestBody   string
	RequestForm   url.Values // best-effort decode of RequestBody
	ResponseBody  any        // decoded JSON, or the raw text when undecodable
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("parse error on %s %s (%d %s)", e.Method, e.Path, e.StatusCode, e.Status)
	case KindEditWindowExpired:
		return fmt.Sprintf("edit window expired on %s %s", e.Method, e.Path)
	default:
		return fmt.Sprintf("unexpected %d %s on %s %s", e.StatusCode, e.Status, e.Method, e.Path)
	}
}

// TransportError means the exchange never produced an HTTP response: DNS
// failure, connection reset, refused connection, or an exceeded deadline.
// It deliberately is not an APIError.
type TransportError struct {
	Method  string
	Path    string
	Err     error
	timeout bool
}

func (e *TransportError) Error() string {
	if e.timeout {
		return fmt.Sprintf("%s %s: request timed out: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was caused by the configured
// request deadline.
func (e *TransportError) Timeout() bool { return e.timeout }

// UnsupportedFileTypeError means a binary upload's magic number did not
// match any of the formats the backend accepts. There is no generic
// fallback: the backend requires correct extensions for media ingestion.
type UnsupportedFileTypeError struct {
	Magic []byte
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unrecognized file type (magic: %X)", e.Magic)
}

// ReconstructionError means a null image URL was encountered with no
// override function and no recognized reconstruction mode configured.
type ReconstructionError struct {
	Mode ReconstructionMode
	Host string
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("image url reconstruction failed with no implemented method (mode: %q, host: %s)", string(e.Mode), e.Host)
}

// IsNotFound reports whether err is an APIError with a 404 status. Get
// operations use it to map missing resources to a nil result.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
