package resource

import (
	"fmt"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/terminal"
	"github.com/usepylon/pylon-cli/internal/utils/api"
)

// CommandGet fetches a single Pylon resource
// The path is a format string with one %s verb per positional argument
type CommandGet struct {
	path string
}

// NewGet returns a command fetching the resource found at the path pattern
func NewGet(path string) *CommandGet {
	return &CommandGet{path}
}

// Path resolves the resource path, escaping each argument as a path segment
func (cmd *CommandGet) Path(args []string) string {
	if len(args) == 0 {
		return cmd.path
	}
	segments := make([]interface{}, 0, len(args))
	for _, arg := range args {
		segments = append(segments, api.PathEscape(arg))
	}
	return fmt.Sprintf(cmd.path, segments...)
}

// Handler is the command handler
func (cmd *CommandGet) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	res, err := clients.Pylon.Get(cmd.Path(args), nil)
	if err != nil {
		return err
	}
	return ui.Print(terminal.NewResponseLog(res))
}
