package adapter

import "errors"

// Sentinel errors describing why a tip request fell back to a fixed message.
// They are reported alongside the fallback text so logs retain the cause.
var (
	// ErrUpstreamStatus indicates the provider answered with a non-2xx
	// status code.
	ErrUpstreamStatus = errors.New("tip provider returned non-success status")

	// ErrUpstreamTransport indicates the request never produced a usable
	// response (connection failure, timeout, cancelled context).
	ErrUpstreamTransport = errors.New("tip provider request failed")

	// ErrMalformedResponse indicates a 2xx response whose body did not
	// contain a candidate with text content.
	ErrMalformedResponse = errors.New("tip provider returned malformed response")
)
