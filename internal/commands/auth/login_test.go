package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/utils/test/assert"
	"github.com/usepylon/pylon-cli/internal/utils/test/mock"

	"github.com/Netflix/go-expect"
)

func TestWorkspaceName(t *testing.T) {
	for _, tc := range []struct {
		orgName  string
		expected string
	}{
		{"acme", "acme"},
		{"Acme Corp", "acme-corp"},
		{"Acme, Inc.", "acme--inc-"},
		{"my-org-42", "my-org-42"},
		{"Café_Ünïcode", "caf---n-code"},
	} {
		t.Run(fmt.Sprintf("should derive %q from %q", tc.expected, tc.orgName), func(t *testing.T) {
			assert.Equal(t, tc.expected, WorkspaceName(tc.orgName))
		})
	}
}

func TestLoginInputs(t *testing.T) {
	for _, tc := range []struct {
		description string
		inputs      loginInputs
		procedure   func(c *expect.Console)
		test        func(t *testing.T, i loginInputs)
	}{
		{
			description: "should prompt for the api key when not provided",
			procedure: func(c *expect.Console) {
				c.ExpectString("Pylon API Key")
				c.SendLine("pylon_key_123")
				c.ExpectEOF()
			},
			test: func(t *testing.T, i loginInputs) {
				assert.Equal(t, "pylon_key_123", i.Key)
			},
		},
		{
			description: "should not prompt when the api key is provided",
			inputs:      loginInputs{Key: "pylon_key_456", Name: "acme"},
			procedure:   func(c *expect.Console) {},
			test: func(t *testing.T, i loginInputs) {
				assert.Equal(t, loginInputs{Key: "pylon_key_456", Name: "acme"}, i)
			},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			_, console, _, ui, consoleErr := mock.NewVT10XConsole()
			assert.Nil(t, consoleErr)
			defer console.Close()

			profile := mock.NewProfile(t, user.Flags{}, user.Env{})

			doneCh := make(chan (struct{}))
			go func() {
				defer close(doneCh)
				tc.procedure(console)
			}()

			assert.Nil(t, tc.inputs.Resolve(profile, ui))

			console.Tty().Close() // flush the writers
			<-doneCh              // wait for procedure to complete

			tc.test(t, tc.inputs)
		})
	}
}

func newMeServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+apiKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"data":{"id":"org_1","name":"Acme Corp"},"request_id":"req-1"}`))
	}))
}

func TestLoginHandler(t *testing.T) {
	server := newMeServer(t, "pylon_key")
	defer server.Close()

	t.Run("should store the key under the organization name", func(t *testing.T) {
		profile := mock.NewProfile(t, user.Flags{BaseURL: server.URL}, user.Env{})
		out, errOut, ui := mock.NewSplitUI(mock.UIOptions{})

		cmd := &CommandLogin{inputs: loginInputs{Key: "pylon_key"}}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}, nil))

		assert.Equal(t, "Logged in to workspace: Acme Corp (acme-corp)\n  Set as default workspace\n", out.String())
		assert.Equal(t, "", errOut.String())
		assert.Equal(t, user.Credentials{
			Default:    "acme-corp",
			Workspaces: map[string]string{"acme-corp": "pylon_key"},
		}, profile.Store().Load())
	})

	t.Run("should store the key under the provided name without changing the default", func(t *testing.T) {
		profile := mock.NewProfileWithCredentials(t, user.Credentials{
			Default:    "staging",
			Workspaces: map[string]string{"staging": "staging_key"},
		})
		profile.Flags.BaseURL = server.URL
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		cmd := &CommandLogin{inputs: loginInputs{Key: "pylon_key", Name: "prod"}}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}, nil))

		assert.Equal(t, "Logged in to workspace: Acme Corp (prod)\n", out.String())
		assert.Equal(t, user.Credentials{
			Default:    "staging",
			Workspaces: map[string]string{"staging": "staging_key", "prod": "pylon_key"},
		}, profile.Store().Load())
	})

	t.Run("should warn when the api key environment variable is set", func(t *testing.T) {
		profile := mock.NewProfile(t, user.Flags{BaseURL: server.URL}, user.Env{APIKey: "env_key"})
		out, errOut, ui := mock.NewSplitUI(mock.UIOptions{})

		cmd := &CommandLogin{inputs: loginInputs{Key: "pylon_key"}}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}, nil))

		assert.Equal(t, "Logged in to workspace: Acme Corp (acme-corp)\n  Set as default workspace\n", out.String())
		assert.Equal(t, "Warning: PYLON_API_KEY environment variable is set.\nIt takes precedence over stored credentials.\n", errOut.String())
	})

	t.Run("should not store a key rejected by the api", func(t *testing.T) {
		profile := mock.NewProfile(t, user.Flags{BaseURL: server.URL}, user.Env{})
		out, _, ui := mock.NewSplitUI(mock.UIOptions{})

		cmd := &CommandLogin{inputs: loginInputs{Key: "wrong_key"}}
		err := cmd.Handler(profile, ui, cli.Clients{}, nil)

		assert.Equal(t, pylon.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key. Check your PYLON_API_KEY or --api-key value."}, err)
		assert.Equal(t, "", out.String())
		assert.Equal(t, 0, len(profile.Store().Workspaces()))
	})
}
