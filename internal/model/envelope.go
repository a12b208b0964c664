package model

import (
	"encoding/json"
	"fmt"
)

// APIError carries the detail of a DigitalOcean API failure in the shape the
// orchestration host expects. The JSON keys are part of the output contract.
type APIError struct {
	Message    string `json:"Message"`
	StatusCode int    `json:"Status Code"`
	Reason     string `json:"Reason"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s (%d %s)", e.Message, e.StatusCode, e.Reason)
}

// Envelope captures the outcome of executing a single module. Exactly one of
// the success payload (Facts) or Error is meaningful; Changed is true only
// when a remote mutation was confirmed.
type Envelope struct {
	Changed bool
	Msg     string
	Failed  bool
	Facts   map[string]any
	Error   *APIError
}

// Success returns a non-failed envelope with the given message.
func Success(msg string) *Envelope {
	return &Envelope{Msg: msg}
}

// ChangedResult returns a non-failed envelope marking a confirmed mutation.
func ChangedResult(msg string) *Envelope {
	return &Envelope{Changed: true, Msg: msg}
}

// Failure returns a failed envelope without API error detail, used for
// outcomes such as convergence timeouts where no transport error occurred.
func Failure(msg string) *Envelope {
	return &Envelope{Failed: true, Msg: msg}
}

// FromAPIError returns a failed envelope carrying the API error detail.
func FromAPIError(apiErr *APIError) *Envelope {
	return &Envelope{Failed: true, Msg: apiErr.Message, Error: apiErr}
}

// WithFact attaches a resource payload field to the envelope and returns it
// for chaining. Facts are inlined at the top level of the JSON output.
func (e *Envelope) WithFact(key string, value any) *Envelope {
	if e.Facts == nil {
		e.Facts = make(map[string]any)
	}
	e.Facts[key] = value
	return e
}

// MarshalJSON flattens the envelope into the wire shape: changed, msg, the
// resource payload fields, and failed/error only when the run failed.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Facts)+4)
	out["changed"] = e.Changed
	out["msg"] = e.Msg
	for key, value := range e.Facts {
		out[key] = value
	}
	if e.Failed {
		out["failed"] = true
	}
	if e.Error != nil {
		out["error"] = e.Error
	}
	return json.Marshal(out)
}
