package user

import (
	"fmt"

	"github.com/usepylon/pylon-cli/internal/cloud/pylon"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	envPrefix = "pylon"

	keyAPIKey  = "api_key"
	keyBaseURL = "base_url"

	// EnvAPIKey is the environment variable holding an API key
	EnvAPIKey = "PYLON_API_KEY"
)

// set of supported CLI user profile flags
const (
	FlagAPIKey      = "api-key"
	FlagAPIKeyUsage = "Pylon API key (overrides PYLON_API_KEY and stored credentials)"

	FlagBaseURL      = "base-url"
	FlagBaseURLUsage = "specify the base Pylon API URL"
)

// Profile is the CLI profile
type Profile struct {
	Flags
	Env Env

	store *Store
	v     *viper.Viper
}

// Flags are the CLI profile flags
type Flags struct {
	APIKey  string
	BaseURL string
}

// Env is the CLI profile environment
type Env struct {
	APIKey  string
	BaseURL string
}

// NewProfile creates a new CLI profile backed by the user's credentials file
func NewProfile() (*Profile, error) {
	path, err := CredentialsPath()
	if err != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", err)
	}
	return NewProfileWithFs(afero.NewOsFs(), path), nil
}

// NewProfileWithFs creates a new CLI profile backed by the credentials file
// at path on the provided file system
func NewProfileWithFs(fs afero.Fs, path string) *Profile {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.BindEnv(keyAPIKey)  //nolint: errcheck
	v.BindEnv(keyBaseURL) //nolint: errcheck

	return &Profile{
		store: NewStore(fs, path),
		v:     v,
	}
}

// Store returns the profile's credentials store
func (p *Profile) Store() *Store {
	return p.store
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	p.Env.APIKey = p.v.GetString(keyAPIKey)
	p.Env.BaseURL = p.v.GetString(keyBaseURL)

	if p.Flags.BaseURL == "" {
		p.Flags.BaseURL = p.Env.BaseURL
	}
	if p.Flags.BaseURL == "" {
		p.Flags.BaseURL = pylon.DefaultBaseURL
	}
	return nil
}

// ResolveAPIKey resolves the API key along with where it came from
func (p *Profile) ResolveAPIKey() (string, KeySource, error) {
	return ResolveAPIKey(p.Flags.APIKey, p.Env.APIKey, p.store.Load())
}

// APIKey resolves the API key
func (p *Profile) APIKey() (string, error) {
	key, _, err := p.ResolveAPIKey()
	return key, err
}
