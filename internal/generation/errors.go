package generation

import (
	"errors"
	"fmt"
	"strings"
)

// failure reasons carried by FailedError
const (
	ReasonTimeout   = "timeout"
	ReasonProvider  = "provider"
	ReasonMalformed = "malformed_response"
)

var ErrMalformedResponse = errors.New("malformed generator response")

// request failed validation. Fields are named by their JSON keys.
type InvalidRequestError struct {
	Missing []string
	Invalid []string
}

func (e *InvalidRequestError) Error() string {
	var parts []string

	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}

	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}

	return strings.Join(parts, "; ")
}

// the capability call failed after the quota unit was spent
type FailedError struct {
	Reason string
	Err    error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Reason, e.Err)
}

func (e *FailedError) Unwrap() error {
	return e.Err
}
