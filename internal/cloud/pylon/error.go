package pylon

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
)

const (
	msgRateLimited  = "Rate limited. Please try again later."
	msgUnauthorized = "Invalid API key. Check your PYLON_API_KEY or --api-key value."
)

// APIError is an error response returned by the Pylon API
type APIError struct {
	StatusCode int
	Message    string
}

func (err APIError) Error() string { return err.Message }

// RequestError is returned when a request could not be completed
// after exhausting its retries
type RequestError struct {
	Attempts int
	Err      error
}

func (err RequestError) Error() string {
	cause := "unknown error"
	if err.Err != nil {
		cause = err.Err.Error()
	}
	return fmt.Sprintf("Request failed after %d attempts: %s", err.Attempts, cause)
}

// Unwrap returns the last transport error observed
func (err RequestError) Unwrap() error { return err.Err }

// parseResponseError builds the APIError for a non-2xx response
func parseResponseError(path string, res *http.Response) error {
	switch res.StatusCode {
	case http.StatusUnauthorized:
		return APIError{res.StatusCode, msgUnauthorized}
	case http.StatusNotFound:
		return APIError{res.StatusCode, "Not found: " + path}
	}

	detail := http.StatusText(res.StatusCode)
	if detail == "" {
		detail = res.Status
	}
	if body, err := ioutil.ReadAll(res.Body); err == nil && len(strings.TrimSpace(string(body))) > 0 {
		detail = string(body)
	}
	return APIError{res.StatusCode, fmt.Sprintf("API error (%d): %s", res.StatusCode, detail)}
}
