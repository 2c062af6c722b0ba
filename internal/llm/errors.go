// In file: internal/llm/errors.go
package llm

import (
	"fmt"
)

// FailureKind classifies a provider failure.
type FailureKind int

const (
	// FailureRequest covers network and HTTP failures talking to the provider.
	FailureRequest FailureKind = iota
	// FailureUnexpectedResponse means the provider answered but the body lacked
	// the fields we read.
	FailureUnexpectedResponse
)

func (k FailureKind) String() string {
	switch k {
	case FailureRequest:
		return "request failed"
	case FailureUnexpectedResponse:
		return "unexpected response"
	default:
		return "unknown failure"
	}
}

// ProviderError is returned by the provider clients for every failed call.
type ProviderError struct {
	Provider string
	Kind     FailureKind
	// Detail carries a diagnostic dump of the response for FailureUnexpectedResponse.
	Detail string
	Err    error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Provider, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Detail != "" {
		msg += "\n" + e.Detail
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
