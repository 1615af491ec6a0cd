package edit

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("api key is not configured")
	ErrUpstream      = errors.New("upstream model failure")
	ErrCommunication = errors.New("communication with the model failed")

	ErrNoCandidates = fmt.Errorf("%w: no candidates in response", ErrUpstream)
	ErrNoImage      = fmt.Errorf("%w: no image in response", ErrUpstream)
)

type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindUpstream      Kind = "upstream"
	KindCommunication Kind = "communication"
	KindUnknown       Kind = "unknown"
)

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrUpstream):
		return KindUpstream
	case errors.Is(err, ErrCommunication):
		return KindCommunication
	default:
		return KindUnknown
	}
}

// MessageKey maps an edit error to the translation key shown to users.
func MessageKey(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "error_env_var_not_set"
	case errors.Is(err, ErrNoCandidates):
		return "error_no_candidates"
	case errors.Is(err, ErrNoImage):
		return "error_no_image_in_response"
	case errors.Is(err, ErrUpstream):
		return "error_upstream"
	case errors.Is(err, ErrCommunication):
		return "error_gemini_communication"
	default:
		return "error_unknown"
	}
}

// StatusError is an upstream failure that carries the remote HTTP status.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: status %d", ErrUpstream, e.Status)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrUpstream, e.Status, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

func Upstream(status int, message string) error {
	return &StatusError{Status: status, Message: message}
}

// StatusOf returns the remote status of an upstream failure, or 0.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// Communication wraps a transport or decoding failure.
func Communication(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCommunication, op, err)
}
