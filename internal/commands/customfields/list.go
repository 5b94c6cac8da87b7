// Package customfields holds the `custom-fields list` command
package customfields

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/commands/resource"
	"github.com/usepylon/pylon-cli/internal/terminal"
	"github.com/usepylon/pylon-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	pathCustomFields = "/custom-fields"

	queryObjectType = "object_type"
)

const (
	flagObjectType      = "object-type"
	flagObjectTypeUsage = "the object type the custom fields belong to"
)

// set of supported object types
const (
	ObjectTypeAccount = "account"
	ObjectTypeIssue   = "issue"
	ObjectTypeContact = "contact"
)

type listInputs struct {
	resource.ListInputs
	ObjectType string
}

// CommandList is the `custom-fields list` command
type CommandList struct {
	inputs listInputs
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	objectType := flags.NewEnum(&cmd.inputs.ObjectType, ObjectTypeAccount, ObjectTypeIssue, ObjectTypeContact)
	fs.Var(objectType, flagObjectType, objectType.Usage(flagObjectTypeUsage))
	flags.MarkRequired(fs, flagObjectType)

	cmd.inputs.ListInputs.Flags(fs)
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	if cmd.inputs.ObjectType == "" {
		return cli.ValidationError{Message: "Missing required option --" + flagObjectType}
	}

	res, err := pylon.List(clients.Pylon, pathCustomFields, cmd.inputs.Options(map[string]string{
		queryObjectType: cmd.inputs.ObjectType,
	}))
	if err != nil {
		return err
	}
	return ui.Print(terminal.NewResponseLog(res))
}
