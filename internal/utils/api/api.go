package api

import (
	"net/http"
	"net/url"
)

// set of supported api header keys
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderRetryAfter    = "Retry-After"
	HeaderUserAgent     = "User-Agent"
)

// set of supported api media types
const (
	MediaTypeJSON = "application/json"
)

// IncludeQuery encodes the provided query into the request url
// Parameters with an empty value are left out of the query string
func IncludeQuery(req *http.Request, query map[string]string) {
	if len(query) == 0 {
		return
	}

	q := req.URL.Query()
	for key, value := range query {
		if value == "" {
			continue
		}
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
}

// BearerToken returns the Authorization header value for the provided token
func BearerToken(token string) string {
	return "Bearer " + token
}

// PathEscape escapes a path segment such as a resource id
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}
