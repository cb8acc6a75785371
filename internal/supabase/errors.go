package supabase

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a failure reported by the hosted database. The PostgREST
// message is preserved verbatim so callers can surface it.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
	Hint    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("supabase API error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("supabase API error %d", e.Status)
}

func decodeAPIError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return fmt.Errorf("read error response: %w", err)
	}

	apiErr := &APIError{Status: resp.StatusCode}
	var parsed struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Details string `json:"details"`
		Hint    string `json:"hint"`
	}
	if jsonErr := json.Unmarshal(body, &parsed); jsonErr == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
		apiErr.Code = parsed.Code
		apiErr.Details = parsed.Details
		apiErr.Hint = parsed.Hint
	} else {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}
