package resource

import (
	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// ListInputs are the pagination inputs of a list command
type ListInputs struct {
	Cursor string
	Limit  int
	All    bool
}

// Flags registers the pagination flags
func (i *ListInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&i.Cursor, flagCursor, "", flagCursorUsage)
	fs.IntVar(&i.Limit, flagLimit, 0, flagLimitUsage)
	fs.BoolVar(&i.All, flagAll, false, flagAllUsage)
}

// Options returns the list options for the inputs along with the extra query
func (i ListInputs) Options(query map[string]string) pylon.ListOptions {
	return pylon.ListOptions{
		Cursor: i.Cursor,
		Limit:  i.Limit,
		All:    i.All,
		Query:  query,
	}
}

// CommandList lists a paginated Pylon resource
type CommandList struct {
	path   string
	inputs ListInputs
}

// NewList returns a command listing the resource found at path
func NewList(path string) *CommandList {
	return &CommandList{path: path}
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	res, err := pylon.List(clients.Pylon, cmd.path, cmd.inputs.Options(nil))
	if err != nil {
		return err
	}
	return ui.Print(terminal.NewResponseLog(res))
}
