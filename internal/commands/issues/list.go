// Package issues holds the `issues list` command
package issues

import (
	"fmt"
	"time"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/commands/resource"
	"github.com/usepylon/pylon-cli/internal/terminal"
	"github.com/usepylon/pylon-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	pathIssues = "/issues"

	queryStartTime = "start_time"
	queryEndTime   = "end_time"

	maxRange = 30 * 24 * time.Hour
)

const (
	flagStart      = "start"
	flagStartUsage = "start of the time range, as an RFC3339 timestamp"

	flagEnd      = "end"
	flagEndUsage = "end of the time range, as an RFC3339 timestamp (at most 30 days after --start)"
)

type listInputs struct {
	resource.ListInputs
	Start string
	End   string
}

func (i listInputs) validate() error {
	start, err := flags.ParseTime(i.Start)
	if err != nil {
		return cli.ValidationError{Message: fmt.Sprintf("Invalid start date: %s. Use RFC3339 format (e.g. 2024-01-01T00:00:00Z)", i.Start)}
	}
	end, err := flags.ParseTime(i.End)
	if err != nil {
		return cli.ValidationError{Message: fmt.Sprintf("Invalid end date: %s. Use RFC3339 format (e.g. 2024-01-31T00:00:00Z)", i.End)}
	}

	switch span := end.Sub(start); {
	case span > maxRange:
		return cli.ValidationError{Message: "Date range cannot exceed 30 days"}
	case span < 0:
		return cli.ValidationError{Message: "Start date must be before end date"}
	}
	return nil
}

// CommandList is the `issues list` command
type CommandList struct {
	inputs listInputs
}

// Flags is the command flags
func (cmd *CommandList) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Start, flagStart, "", flagStartUsage)
	fs.StringVar(&cmd.inputs.End, flagEnd, "", flagEndUsage)
	flags.MarkRequired(fs, flagStart)
	flags.MarkRequired(fs, flagEnd)

	cmd.inputs.ListInputs.Flags(fs)
}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	if err := cmd.inputs.validate(); err != nil {
		return err
	}

	res, err := pylon.List(clients.Pylon, pathIssues, cmd.inputs.Options(map[string]string{
		queryStartTime: cmd.inputs.Start,
		queryEndTime:   cmd.inputs.End,
	}))
	if err != nil {
		return err
	}
	return ui.Print(terminal.NewResponseLog(res))
}
