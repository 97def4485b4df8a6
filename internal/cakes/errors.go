package cakes

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the server answers successfully but
// the body carries nothing to decode.
var ErrEmptyResponse = errors.New("empty response body")

// NetworkError reports a failed request. Status is the HTTP status code
// when the server answered with a non-2xx status, zero otherwise.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError reports a catalogue body that could not be decoded. Index is
// the offending array element, or -1 when the document itself is bad.
type DecodeError struct {
	Index int
	Key   string
	Err   error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("decode cakes: %v", e.Err)
	case e.Key != "":
		return fmt.Sprintf("decode cakes: element %d: key %q: %v", e.Index, e.Key, e.Err)
	default:
		return fmt.Sprintf("decode cakes: element %d: %v", e.Index, e.Err)
	}
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind names the failure class of err for display: "network", "empty",
// "decode", or "" when err is nil or unclassified.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var netErr *NetworkError
	var decErr *DecodeError
	switch {
	case errors.As(err, &netErr):
		return "network"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.As(err, &decErr):
		return "decode"
	}
	return ""
}
