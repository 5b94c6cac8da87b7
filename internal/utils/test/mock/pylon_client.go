package mock

import (
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
)

// PylonClient is a mocked Pylon client
type PylonClient struct {
	pylon.Client
	GetFn func(path string, query map[string]string) (pylon.Response, error)
	MeFn  func() (pylon.Organization, error)
}

// Get calls the mocked Get implementation if provided,
// otherwise the call falls back to the underlying pylon.Client implementation.
// NOTE: this may panic if the underlying pylon.Client is left undefined
func (pc PylonClient) Get(path string, query map[string]string) (pylon.Response, error) {
	if pc.GetFn != nil {
		return pc.GetFn(path, query)
	}
	return pc.Client.Get(path, query)
}

// Me calls the mocked Me implementation if provided,
// otherwise the call falls back to the underlying pylon.Client implementation.
// NOTE: this may panic if the underlying pylon.Client is left undefined
func (pc PylonClient) Me() (pylon.Organization, error) {
	if pc.MeFn != nil {
		return pc.MeFn()
	}
	return pc.Client.Me()
}

// PylonRequest is a request recorded by a PylonClient
type PylonRequest struct {
	Path  string
	Query map[string]string
}

// NewRecordingPylonClient returns a PylonClient which records each request
// and responds with the provided responses in order
// Once the responses run out, the last one is repeated
func NewRecordingPylonClient(responses ...pylon.Response) (*[]PylonRequest, PylonClient) {
	var requests []PylonRequest
	return &requests, PylonClient{
		GetFn: func(path string, query map[string]string) (pylon.Response, error) {
			recorded := make(map[string]string, len(query))
			for key, value := range query {
				recorded[key] = value
			}
			requests = append(requests, PylonRequest{path, recorded})

			if len(responses) == 0 {
				return pylon.Response{}, nil
			}
			idx := len(requests) - 1
			if idx >= len(responses) {
				idx = len(responses) - 1
			}
			return responses[idx], nil
		},
	}
}
