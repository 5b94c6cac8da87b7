package pylon

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrCursorRepeated is returned when the API hands back a cursor it already returned
var ErrCursorRepeated = errors.New("pagination did not advance: the API returned a cursor it had already returned")

// ListOptions are options to list a paginated resource
type ListOptions struct {
	Cursor string
	Limit  int
	All    bool
	Query  map[string]string
}

// List lists the resource found at path, either a single page
// or, when All is set, every page concatenated into one response
func List(c Client, path string, opts ListOptions) (Response, error) {
	query := make(map[string]string, len(opts.Query)+2)
	for key, value := range opts.Query {
		query[key] = value
	}
	if opts.Cursor != "" {
		query[queryCursor] = opts.Cursor
	}
	if opts.Limit > 0 {
		query[queryLimit] = strconv.Itoa(opts.Limit)
	}

	if !opts.All {
		return c.Get(path, query)
	}

	seen := map[string]struct{}{}
	if opts.Cursor != "" {
		seen[opts.Cursor] = struct{}{}
	}

	all := []json.RawMessage{}
	for {
		res, err := c.Get(path, query)
		if err != nil {
			return Response{}, err
		}

		items, err := res.items()
		if err != nil {
			return Response{}, err
		}
		all = append(all, items...)

		if !res.HasNextPage || res.Cursor == "" {
			break
		}
		if _, ok := seen[res.Cursor]; ok {
			return Response{}, ErrCursorRepeated
		}
		seen[res.Cursor] = struct{}{}
		query[queryCursor] = res.Cursor
	}

	data, err := json.Marshal(all)
	if err != nil {
		return Response{}, err
	}
	return Response{Data: data, aggregated: true}, nil
}
