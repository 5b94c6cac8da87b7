package auth

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/terminal"
)

// CommandStatus is the `auth status` command
type CommandStatus struct{}

// Handler is the command handler
func (cmd *CommandStatus) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	store := profile.Store()
	creds := store.Load()

	envState := "not set"
	if profile.Env.APIKey != "" {
		envState = "set"
	}

	logs := []terminal.Log{
		terminal.NewTextLog("Credentials file: %s", store.Path()),
		terminal.NewTextLog("Stored workspaces: %d", len(creds.Workspaces)),
	}
	if creds.Default != "" {
		logs = append(logs, terminal.NewTextLog("Default workspace: %s", creds.Default))
	}
	logs = append(logs, terminal.NewTextLog("%s env var: %s", user.EnvAPIKey, envState))

	if len(creds.Workspaces) == 0 && profile.Env.APIKey == "" {
		logs = append(logs, terminal.NewListLog(
			"\nNot authenticated. To get started:",
			"  pylon auth login --key <api-key>",
			"  # or",
			"  export "+user.EnvAPIKey+"=<api-key>",
		))
	}
	return ui.Print(logs...)
}
