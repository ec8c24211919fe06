// Package malerr defines the error taxonomy surfaced by the MyAnimeList client.
//
// Every failure returned by the client is one of the types below (possibly wrapped),
// so callers can tell an authentication failure apart from generic client or server
// failures and implement their own retry policy.
package malerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error returned by the client.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindClient
	KindServer
	KindMalformedResponse
	KindUnknownEnumValue
	KindTimeout
	KindTransport
	KindInvalidArgument
	KindNoMatch
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindUnauthorized:      "unauthorized",
	KindClient:            "client error",
	KindServer:            "server error",
	KindMalformedResponse: "malformed response",
	KindUnknownEnumValue:  "unknown enum value",
	KindTimeout:           "timeout",
	KindTransport:         "transport failure",
	KindInvalidArgument:   "invalid argument",
	KindNoMatch:           "no match",
}

func (k Kind) String() string {
	return kindNames[k]
}

// UnauthorizedError is returned for HTTP 401 responses.
type UnauthorizedError struct {
	Body string
}

func (e *UnauthorizedError) Error() string {
	if e.Body == "" {
		return "mal: unauthorized"
	}
	return fmt.Sprintf("mal: unauthorized: %s", e.Body)
}

// ClientError is returned for 4xx responses other than 401.
type ClientError struct {
	Status int
	Body   string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("mal: client error %d: %s", e.Status, e.Body)
}

// ServerError is returned for 5xx responses.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("mal: server error %d: %s", e.Status, e.Body)
}

// MalformedResponseError is returned when a successful response body cannot be decoded.
type MalformedResponseError struct {
	Cause error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("mal: malformed response: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Cause
}

// UnknownEnumValueError is returned when a wire value matches no member of a closed enum.
// Field is empty when the error comes straight from a codec and is filled in by the mapper.
type UnknownEnumValueError struct {
	Field string
	Value string
}

func (e *UnknownEnumValueError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("mal: unknown enum value %q", e.Value)
	}
	return fmt.Sprintf("mal: unknown enum value %q for field %s", e.Value, e.Field)
}

// TimeoutError is returned when a request exceeds its deadline.
type TimeoutError struct {
	Cause error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("mal: request timed out: %v", e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// TransportError wraps any other failure to exchange a request with the service.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mal: transport failure: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// InvalidArgumentError is returned before any network call when a required argument is missing.
type InvalidArgumentError struct {
	Name   string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("mal: invalid argument %s: %s", e.Name, e.Reason)
}

// InvalidArgument is a shorthand constructor for InvalidArgumentError.
func InvalidArgument(name, reason string) error {
	return &InvalidArgumentError{Name: name, Reason: reason}
}

// ErrNoMatch is returned by closest-title lookups when every search came back empty.
var ErrNoMatch = errors.New("mal: no matching title")

// KindOf reports the classification of err, looking through wrapped errors.
func KindOf(err error) Kind {
	var (
		unauthorized *UnauthorizedError
		client       *ClientError
		server       *ServerError
		malformed    *MalformedResponseError
		enum         *UnknownEnumValueError
		timeout      *TimeoutError
		transport    *TransportError
		invalid      *InvalidArgumentError
	)

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &unauthorized):
		return KindUnauthorized
	case errors.As(err, &client):
		return KindClient
	case errors.As(err, &server):
		return KindServer
	case errors.As(err, &enum):
		return KindUnknownEnumValue
	case errors.As(err, &malformed):
		return KindMalformedResponse
	case errors.As(err, &timeout):
		return KindTimeout
	case errors.As(err, &transport):
		return KindTransport
	case errors.As(err, &invalid):
		return KindInvalidArgument
	case errors.Is(err, ErrNoMatch):
		return KindNoMatch
	default:
		return KindUnknown
	}
}

// StatusCode returns the HTTP status carried by err, or 0 when there is none.
func StatusCode(err error) int {
	var (
		client *ClientError
		server *ServerError
	)
	switch {
	case errors.As(err, &client):
		return client.Status
	case errors.As(err, &server):
		return server.Status
	case KindOf(err) == KindUnauthorized:
		return 401
	default:
		return 0
	}
}
