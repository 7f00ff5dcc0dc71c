package qagen

import "fmt"

// MalformedOutputError indicates the model's text could not be decoded
// as JSON even after repair. Fragment holds a bounded preview of the
// offending text for diagnostics and remediation.
type MalformedOutputError struct {
	Fragment string
	Err      error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error { return e.Err }

// SchemaViolationError indicates the decoded structure failed schema
// validation after normalization. Fragment holds a bounded preview of
// the normalized JSON that was rejected.
type SchemaViolationError struct {
	Fragment string
	Err      error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation: %v", e.Err)
}

func (e *SchemaViolationError) Unwrap() error { return e.Err }

// preview truncates s to at most n bytes for error payloads.
func preview(s string, n int) string {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
