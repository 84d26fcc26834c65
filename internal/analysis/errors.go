package analysis

import "fmt"

// UpstreamError indicates the completion call itself could not be completed
// (connectivity, auth, quota). Malformed completion output is never an
// error; it is recovered into a fallback profile.
type UpstreamError struct {
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream service error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("upstream service error: %s", e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
