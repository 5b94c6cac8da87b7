package user

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

const (
	dirPerm  = 0700
	filePerm = 0600
)

// ErrWorkspaceNotFound is returned when a workspace has no stored credential
var ErrWorkspaceNotFound = errors.New("workspace not found in credentials")

// Credentials are the stored workspace API keys
type Credentials struct {
	Default    string            `json:"default,omitempty"`
	Workspaces map[string]string `json:"workspaces"`
}

// WorkspaceNames returns the sorted workspace names
func (creds Credentials) WorkspaceNames() []string {
	names := make([]string, 0, len(creds.Workspaces))
	for name := range creds.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultAPIKey returns the API key of the default workspace
func (creds Credentials) DefaultAPIKey() string {
	if creds.Default == "" {
		return ""
	}
	return creds.Workspaces[creds.Default]
}

// Store is the credentials file
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a new credentials store backed by the file at path
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs, path}
}

// Path returns the credentials file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored credentials
// A missing or unreadable credentials file holds no credentials
func (s *Store) Load() Credentials {
	creds := Credentials{Workspaces: map[string]string{}}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return creds
	}

	var stored Credentials
	if err := json.Unmarshal(data, &stored); err != nil {
		return creds
	}

	creds.Default = stored.Default
	for name, key := range stored.Workspaces {
		creds.Workspaces[name] = key
	}
	return creds
}

// Save overwrites the credentials file
func (s *Store) Save(creds Credentials) error {
	if creds.Workspaces == nil {
		creds.Workspaces = map[string]string{}
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, append(data, '\n'), filePerm); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	if err := s.fs.Chmod(s.path, filePerm); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// AddCredential stores the API key of a workspace
// The workspace becomes the default when no other workspace is stored,
// which is reported back to the caller
func (s *Store) AddCredential(workspace, apiKey string) (bool, error) {
	creds := s.Load()

	isDefault := len(creds.Workspaces) == 0
	if isDefault {
		creds.Default = workspace
	}
	creds.Workspaces[workspace] = apiKey

	return isDefault, s.Save(creds)
}

// RemoveCredential deletes the API key of a workspace
func (s *Store) RemoveCredential(workspace string) error {
	creds := s.Load()
	if _, ok := creds.Workspaces[workspace]; !ok {
		return ErrWorkspaceNotFound
	}
	delete(creds.Workspaces, workspace)

	if creds.Default == workspace {
		creds.Default = ""
		if names := creds.WorkspaceNames(); len(names) > 0 {
			creds.Default = names[0]
		}
	}
	return s.Save(creds)
}

// SetDefaultWorkspace sets the default workspace
func (s *Store) SetDefaultWorkspace(workspace string) error {
	creds := s.Load()
	if _, ok := creds.Workspaces[workspace]; !ok {
		return ErrWorkspaceNotFound
	}
	creds.Default = workspace
	return s.Save(creds)
}

// Workspaces returns the sorted names of the stored workspaces
func (s *Store) Workspaces() []string {
	return s.Load().WorkspaceNames()
}

// DefaultWorkspace returns the default workspace name
func (s *Store) DefaultWorkspace() string {
	return s.Load().Default
}

// APIKey returns the API key stored for a workspace
func (s *Store) APIKey(workspace string) string {
	return s.Load().Workspaces[workspace]
}
