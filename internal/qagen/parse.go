package qagen

import (
	"encoding/json"
	"errors"
	"fmt"
)

// parsePayload decodes model text into a generic JSON value. It tries a
// strict decode of the extracted block first and falls back to exactly
// one repair-assisted attempt. Pure: no side effects, no service calls.
func parsePayload(text string, previewLen int) (any, error) {
	block, ok := ExtractBlock(text)
	if !ok {
		return nil, &MalformedOutputError{
			Fragment: preview(text, previewLen),
			Err:      errors.New("no structured block found in model output"),
		}
	}

	var v any
	strictErr := json.Unmarshal([]byte(block), &v)
	if strictErr == nil {
		return v, nil
	}

	repaired := Repair(block)
	repairErr := json.Unmarshal([]byte(repaired), &v)
	if repairErr == nil {
		return v, nil
	}

	return nil, &MalformedOutputError{
		Fragment: preview(block, previewLen),
		Err:      fmt.Errorf("strict decode: %v; repaired decode: %w", strictErr, repairErr),
	}
}
