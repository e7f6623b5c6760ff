package dftrans

import (
	"errors"
	"fmt"
	"net/http"
)

// Common static errors that can be wrapped with context.
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrConfigRequired        = errors.New("config is required")
	ErrBaseURLRequired       = errors.New("base URL is required")
	ErrNotPointGeometry      = errors.New("geometry is not a point")
	ErrNotLineGeometry       = errors.New("geometry is not a line")
	ErrCoordinateOutOfRange  = errors.New("coordinate out of range")
	ErrNotFeatureCollection  = errors.New("body is not a feature collection")
	ErrUnsupportedTimeFormat = errors.New("unsupported timestamp format")
	ErrEmptyBody             = errors.New("empty response body")
)

// maxBodyInError caps how much of a response body is echoed in error strings.
const maxBodyInError = 256

// TransportError reports a network-level failure: DNS, refused connection,
// timeout or cancellation. The request never produced an HTTP status.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport failure: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a response outside the 2xx range.
type HTTPStatusError struct {
	StatusCode int
	Method     string
	Path       string
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if len(e.Body) > 0 {
		msg += ": " + truncate(e.Body)
	}

	return msg
}

// NotFoundError is the HTTPStatusError returned for a 404.
type NotFoundError struct {
	*HTTPStatusError
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return "not found: " + e.HTTPStatusError.Error()
}

// Unwrap exposes the status error so errors.As(err, **HTTPStatusError) matches.
func (e *NotFoundError) Unwrap() error {
	return e.HTTPStatusError
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewStatusError returns a NotFoundError for 404 and an HTTPStatusError otherwise.
func NewStatusError(statusCode int, method, path string, body []byte) error {
	statusErr := &HTTPStatusError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Body:       body,
	}

	if statusCode == http.StatusNotFound {
		return &NotFoundError{HTTPStatusError: statusErr}
	}

	return statusErr
}

// DecodeError reports a body that is not valid JSON or does not match the
// expected shape. Body holds the raw payload for diagnosis.
type DecodeError struct {
	Path string
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Path, e.Err)
}

// Unwrap returns the parse or validation error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransport checks if the error is a network-level failure.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsDecode checks if the error is a decoding failure.
func IsDecode(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// StatusCode extracts the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	statusErr := &HTTPStatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode, true
	}

	return 0, false
}

func truncate(body []byte) string {
	if len(body) <= maxBodyInError {
		return string(body)
	}

	return string(body[:maxBodyInError]) + "..."
}
