// Package auth holds the commands managing the stored Pylon credentials
package auth

import (
	"fmt"
	"strings"

	"github.com/usepylon/pylon-cli/internal/cli/user"
)

type workspaceNotFoundError struct {
	workspace string
	available []string
}

func (err workspaceNotFoundError) Error() string {
	available := strings.Join(err.available, ", ")
	if available == "" {
		available = "(none)"
	}
	return fmt.Sprintf("Workspace %q not found.\nAvailable: %s", err.workspace, available)
}

func (err workspaceNotFoundError) Unwrap() error { return user.ErrWorkspaceNotFound }

func findWorkspace(store *user.Store, workspace string) error {
	workspaces := store.Workspaces()
	for _, ws := range workspaces {
		if ws == workspace {
			return nil
		}
	}
	return workspaceNotFoundError{workspace, workspaces}
}
