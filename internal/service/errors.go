package service

import "fmt"

// ErrorKind classifies every failure the insight pipeline can produce.
type ErrorKind string

const (
	// KindInsufficientData: too few logs for the requested analysis.
	KindInsufficientData ErrorKind = "insufficient_data"
	// KindInvalidInput: malformed request shape, surfaced verbatim.
	KindInvalidInput ErrorKind = "invalid_input"
	// KindMisconfigured: upstream credential missing or rejected. Not
	// recoverable by retrying.
	KindMisconfigured ErrorKind = "service_misconfigured"
	// KindUpstreamFailure: the generation endpoint errored or timed out.
	// Safe to retry manually.
	KindUpstreamFailure ErrorKind = "upstream_failure"
)

// RequestError is the single error value the pipeline returns. Kind
// drives the HTTP status at the boundary; Message is human-readable.
type RequestError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

func insufficientData(msg string) *RequestError {
	return &RequestError{Kind: KindInsufficientData, Message: msg}
}

func invalidInput(msg string) *RequestError {
	return &RequestError{Kind: KindInvalidInput, Message: msg}
}

func misconfigured(msg string) *RequestError {
	return &RequestError{Kind: KindMisconfigured, Message: msg}
}

func upstreamFailure(msg string, err error) *RequestError {
	return &RequestError{Kind: KindUpstreamFailure, Message: msg, Err: err}
}
