package auth

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/terminal"
)

// CommandWhoami is the `auth whoami` command
type CommandWhoami struct{}

// Handler is the command handler
func (cmd *CommandWhoami) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	_, source, err := profile.ResolveAPIKey()
	if err != nil {
		return err
	}

	org, err := clients.Pylon.Me()
	if err != nil {
		return err
	}

	store := profile.Store()
	defaultWorkspace := store.DefaultWorkspace()

	logs := []terminal.Log{
		terminal.NewTextLog("Organization: %s", org.Name),
		terminal.NewTextLog("Org ID: %s", org.ID),
	}
	if defaultWorkspace != "" {
		logs = append(logs, terminal.NewTextLog("Default workspace: %s", defaultWorkspace))
	}
	logs = append(logs, terminal.NewTextLog("Credentials: %s", store.Path()))

	if source == user.KeySourceStored {
		logs = append(logs, terminal.NewTextLog("Auth source: %s (%s)", source, defaultWorkspace))
	} else {
		logs = append(logs, terminal.NewTextLog("Auth source: %s", source))
	}
	return ui.Print(logs...)
}
