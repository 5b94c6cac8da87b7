package auth

import (
	"regexp"
	"strings"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagKey      = "key"
	flagKeyUsage = "the Pylon API key to store (prompted for when omitted)"

	flagName      = "name"
	flagNameUsage = "the workspace name to store the key under (defaults to the organization name)"
)

var invalidWorkspaceChars = regexp.MustCompile(`[^a-z0-9-]`)

// WorkspaceName derives a workspace name from an organization name
func WorkspaceName(orgName string) string {
	return invalidWorkspaceChars.ReplaceAllString(strings.ToLower(orgName), "-")
}

type loginInputs struct {
	Key  string
	Name string
}

func (i *loginInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.Key != "" {
		return nil
	}
	return ui.AskOne(&survey.Password{Message: "Pylon API Key"}, &i.Key)
}

// CommandLogin is the `auth login` command
type CommandLogin struct {
	inputs loginInputs
}

// Flags is the command flags
func (cmd *CommandLogin) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Key, flagKey, "", flagKeyUsage)
	fs.StringVar(&cmd.inputs.Name, flagName, "", flagNameUsage)
}

// Inputs is the command inputs
func (cmd *CommandLogin) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandLogin) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	client := pylon.NewClient(pylon.ClientOptions{
		BaseURL:   profile.Flags.BaseURL,
		UserAgent: cli.UserAgent(),
	}, cmd.inputs.Key)

	org, err := client.Me()
	if err != nil {
		return err
	}

	workspace := cmd.inputs.Name
	if workspace == "" {
		workspace = WorkspaceName(org.Name)
	}

	isDefault, err := profile.Store().AddCredential(workspace, cmd.inputs.Key)
	if err != nil {
		return err
	}

	logs := []terminal.Log{terminal.NewTextLog("Logged in to workspace: %s (%s)", org.Name, workspace)}
	if isDefault {
		logs = append(logs, terminal.NewTextLog("  Set as default workspace"))
	}
	if profile.Env.APIKey != "" {
		logs = append(logs, terminal.NewWarningLog("Warning: %s environment variable is set.\nIt takes precedence over stored credentials.", user.EnvAPIKey))
	}
	return ui.Print(logs...)
}
