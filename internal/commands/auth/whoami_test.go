package auth

import (
	"testing"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/utils/test/assert"
	"github.com/usepylon/pylon-cli/internal/utils/test/mock"
)

func TestWhoamiHandler(t *testing.T) {
	client := mock.PylonClient{
		MeFn: func() (pylon.Organization, error) {
			return pylon.Organization{ID: "org_1", Name: "Acme Corp"}, nil
		},
	}

	t.Run("should describe the organization of the stored key", func(t *testing.T) {
		profile := mock.NewProfileWithCredentials(t, testCredentials)
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		assert.Nil(t, (&CommandWhoami{}).Handler(profile, ui, cli.Clients{Pylon: client}, nil))
		assert.Equal(t, `Organization: Acme Corp
Org ID: org_1
Default workspace: acme
Credentials: /home/pylon/.config/pylon/credentials.json
Auth source: stored credentials (acme)
`, out.String())
	})

	t.Run("should report the environment as the key source", func(t *testing.T) {
		profile := mock.NewProfile(t, user.Flags{}, user.Env{APIKey: "env_key"})
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		assert.Nil(t, (&CommandWhoami{}).Handler(profile, ui, cli.Clients{Pylon: client}, nil))
		assert.Equal(t, `Organization: Acme Corp
Org ID: org_1
Credentials: /home/pylon/.config/pylon/credentials.json
Auth source: PYLON_API_KEY environment variable
`, out.String())
	})

	t.Run("should report the flag as the key source", func(t *testing.T) {
		profile := mock.NewProfileWithCredentials(t, testCredentials)
		profile.Flags.APIKey = "flag_key"
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		assert.Nil(t, (&CommandWhoami{}).Handler(profile, ui, cli.Clients{Pylon: client}, nil))
		assert.Contains(t, out.String(), "Auth source: --api-key flag\n")
	})

	t.Run("should fail without any key", func(t *testing.T) {
		profile := mock.NewProfile(t, user.Flags{}, user.Env{})
		_, _, ui := mock.NewSplitUI(mock.UIOptions{})

		err := (&CommandWhoami{}).Handler(profile, ui, cli.Clients{Pylon: client}, nil)
		assert.Equal(t, user.AuthError{}, err)
	})
}

func TestStatusHandler(t *testing.T) {
	t.Run("should describe the stored credentials", func(t *testing.T) {
		profile := mock.NewProfileWithCredentials(t, testCredentials)
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		assert.Nil(t, (&CommandStatus{}).Handler(profile, ui, cli.Clients{}, nil))
		assert.Equal(t, `Credentials file: /home/pylon/.config/pylon/credentials.json
Stored workspaces: 3
Default workspace: acme
PYLON_API_KEY env var: not set
`, out.String())
	})

	t.Run("should report the environment key", func(t *testing.T) {
		profile := mock.NewProfile(t, user.Flags{}, user.Env{APIKey: "env_key"})
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		assert.Nil(t, (&CommandStatus{}).Handler(profile, ui, cli.Clients{}, nil))
		assert.Equal(t, `Credentials file: /home/pylon/.config/pylon/credentials.json
Stored workspaces: 0
PYLON_API_KEY env var: set
`, out.String())
	})

	t.Run("should explain how to authenticate", func(t *testing.T) {
		profile := mock.NewProfile(t, user.Flags{}, user.Env{})
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		assert.Nil(t, (&CommandStatus{}).Handler(profile, ui, cli.Clients{}, nil))
		assert.Equal(t, `Credentials file: /home/pylon/.config/pylon/credentials.json
Stored workspaces: 0
PYLON_API_KEY env var: not set

Not authenticated. To get started:
  pylon auth login --key <api-key>
  # or
  export PYLON_API_KEY=<api-key>
`, out.String())
	})
}
