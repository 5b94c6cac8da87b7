package auth

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/terminal"
)

var errNoWorkspace = cli.ValidationError{Message: "No workspace specified and no default set."}

// CommandLogout is the `auth logout` command
type CommandLogout struct{}

// Handler is the command handler
func (cmd *CommandLogout) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	store := profile.Store()

	var workspace string
	if len(args) > 0 {
		workspace = args[0]
	} else {
		workspace = store.DefaultWorkspace()
	}
	if workspace == "" {
		return errNoWorkspace
	}

	if err := findWorkspace(store, workspace); err != nil {
		return err
	}

	if err := store.RemoveCredential(workspace); err != nil {
		return err
	}
	return ui.Print(terminal.NewTextLog("Removed credentials for workspace: %s", workspace))
}
