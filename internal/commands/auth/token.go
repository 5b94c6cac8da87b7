package auth

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/terminal"
)

// CommandToken is the `auth token` command
type CommandToken struct{}

// Handler is the command handler
func (cmd *CommandToken) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	key, err := profile.APIKey()
	if err != nil {
		return err
	}
	return ui.Print(terminal.NewTextLog(key))
}
