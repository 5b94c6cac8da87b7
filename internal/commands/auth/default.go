package auth

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/terminal"
)

// CommandDefault is the `auth default` command
type CommandDefault struct{}

// Handler is the command handler
func (cmd *CommandDefault) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	store := profile.Store()

	if len(args) == 0 {
		if ws := store.DefaultWorkspace(); ws != "" {
			return ui.Print(terminal.NewTextLog("Default workspace: %s", ws))
		}
		return ui.Print(terminal.NewTextLog("No default workspace set."))
	}

	workspace := args[0]
	if err := findWorkspace(store, workspace); err != nil {
		return err
	}
	if err := store.SetDefaultWorkspace(workspace); err != nil {
		return err
	}
	return ui.Print(terminal.NewTextLog("Default workspace set to: %s", workspace))
}
