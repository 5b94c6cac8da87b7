package mock

import (
	"testing"

	"github.com/usepylon/pylon-cli/internal/cli/user"

	"github.com/spf13/afero"
)

// ProfileCredentialsPath is the credentials file path of mock profiles
const ProfileCredentialsPath = "/home/pylon/.config/pylon/credentials.json"

// NewProfile returns a new CLI profile backed by an in-memory file system
// with the provided flags and environment already resolved
func NewProfile(t *testing.T, flags user.Flags, env user.Env) *user.Profile {
	t.Helper()

	profile := user.NewProfileWithFs(afero.NewMemMapFs(), ProfileCredentialsPath)
	profile.Flags = flags
	profile.Env = env
	if profile.Flags.BaseURL == "" {
		profile.Flags.BaseURL = "http://localhost:8080"
	}
	return profile
}

// NewProfileWithCredentials returns a new mock CLI profile storing the provided credentials
func NewProfileWithCredentials(t *testing.T, creds user.Credentials) *user.Profile {
	t.Helper()

	profile := NewProfile(t, user.Flags{}, user.Env{})
	if err := profile.Store().Save(creds); err != nil {
		t.Fatalf("failed to store mock credentials: %s", err)
	}
	return profile
}
