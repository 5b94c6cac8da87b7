package pylon

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var jsonNull = json.RawMessage("null")

// Response is a normalized Pylon API response
type Response struct {
	Data        json.RawMessage
	RequestID   string
	HasNextPage bool
	Cursor      string

	// aggregated responses hold every page and carry no pagination details
	aggregated bool
}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	RequestID  string          `json:"request_id"`
	Pagination *struct {
		Cursor      string `json:"cursor"`
		HasNextPage bool   `json:"has_next_page"`
	} `json:"pagination"`
}

type rawEnvelope struct {
	Data        json.RawMessage `json:"data"`
	RequestID   string          `json:"request_id,omitempty"`
	HasNextPage *bool           `json:"has_next_page,omitempty"`
	Cursor      string          `json:"cursor,omitempty"`
}

// Payload returns the response data, null when the response had none
func (r Response) Payload() json.RawMessage {
	if len(bytes.TrimSpace(r.Data)) == 0 {
		return jsonNull
	}
	return r.Data
}

// Envelope returns the full normalized response document
func (r Response) Envelope() interface{} {
	env := rawEnvelope{Data: r.Payload()}
	if r.aggregated {
		return env
	}

	hasNextPage := r.HasNextPage
	env.RequestID = r.RequestID
	env.HasNextPage = &hasNextPage
	env.Cursor = r.Cursor
	return env
}

// NextCursor returns the cursor of the next page, if there is one
func (r Response) NextCursor() string {
	if !r.HasNextPage {
		return ""
	}
	return r.Cursor
}

// Decode unmarshals the response data into v
func (r Response) Decode(v interface{}) error {
	if err := json.Unmarshal(r.Payload(), v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// items returns the response data as a list, wrapping non-array data
func (r Response) items() ([]json.RawMessage, error) {
	payload := r.Payload()
	if trimmed := bytes.TrimSpace(payload); len(trimmed) == 0 || trimmed[0] != '[' {
		return []json.RawMessage{payload}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("failed to decode response data: %w", err)
	}
	return items, nil
}

func normalizeResponse(path string, body []byte) (Response, error) {
	if !json.Valid(body) {
		return Response{}, fmt.Errorf("failed to parse response from %s: invalid JSON", path)
	}

	trimmed := bytes.TrimSpace(body)
	if trimmed[0] != '{' {
		return Response{Data: jsonNull}, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Response{}, fmt.Errorf("failed to parse response from %s: %w", path, err)
	}

	res := Response{Data: env.Data, RequestID: env.RequestID}
	if len(res.Data) == 0 {
		res.Data = jsonNull
	}
	if env.Pagination != nil {
		res.HasNextPage = env.Pagination.HasNextPage
		res.Cursor = env.Pagination.Cursor
	}
	return res, nil
}
