package auth

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/terminal"
)

const (
	markerDefault = "* "
	markerOther   = "  "
)

// CommandList is the `auth list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	creds := profile.Store().Load()

	workspaces := creds.WorkspaceNames()
	if len(workspaces) == 0 {
		return ui.Print(terminal.NewListLog("No workspaces configured.", "Run: pylon auth login --key <api-key>"))
	}

	rows := make([]interface{}, 0, len(workspaces))
	for _, ws := range workspaces {
		marker := markerOther
		if ws == creds.Default {
			marker = markerDefault
		}
		rows = append(rows, marker+ws)
	}
	return ui.Print(terminal.NewListLog("Configured workspaces:", rows...))
}
