package api

import (
	"encoding/json"
	"fmt"
)

// Error is a non-2xx server response. The raw body is kept so callers
// can surface backend conflict details verbatim (for example the
// occupied-shelf message on delete).
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Body       string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.Path, e.StatusCode)
}

// extractMessage pulls the human-readable text out of an error body.
// FastAPI uses {"detail": ...}, the envelope uses {"message": ...}.
func extractMessage(body []byte) string {
	var probe struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	if probe.Message != "" {
		return probe.Message
	}
	if len(probe.Detail) > 0 {
		var s string
		if err := json.Unmarshal(probe.Detail, &s); err == nil {
			return s
		}
		return string(probe.Detail)
	}
	return ""
}
