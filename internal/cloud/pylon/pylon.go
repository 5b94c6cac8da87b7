// Package pylon is a read-only client for the Pylon REST API
package pylon

const (
	// DefaultBaseURL is the base url of the hosted Pylon API
	DefaultBaseURL = "https://api.usepylon.com"

	pathMe = "/me"

	queryCursor = "cursor"
	queryLimit  = "limit"
)

// Organization is the organization which owns an API key
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Me returns the organization the client is authenticated as
func (c *client) Me() (Organization, error) {
	res, err := c.Get(pathMe, nil)
	if err != nil {
		return Organization{}, err
	}

	var org Organization
	if err := res.Decode(&org); err != nil {
		return Organization{}, err
	}
	return org, nil
}
