package cli

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/usepylon/pylon-cli/internal/cli/user"
	"github.com/usepylon/pylon-cli/internal/cloud/pylon"
	"github.com/usepylon/pylon-cli/internal/terminal"
	"github.com/usepylon/pylon-cli/internal/utils/flags"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	debugLogPrefix = "DEBUG "
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile   *user.Profile
	ui        terminal.UI
	uiConfig  terminal.UIConfig
	inReader  io.Reader
	outWriter io.Writer
	errWriter io.Writer
	errLogger *log.Logger
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, err := user.NewProfile()
	if err != nil {
		return nil, err
	}

	return &CommandFactory{
		profile:   profile,
		inReader:  os.Stdin,
		outWriter: os.Stdout,
		errWriter: os.Stderr,
		errLogger: log.New(os.Stderr, "Error: ", 0),
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
		Args:    command.Args,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {
		if cmd.Args == nil {
			cmd.Args = cobra.NoArgs
		}

		if command, ok := command.Command.(CommandFlags); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			command.Flags(fs)
		}

		cmd.PreRunE = func(c *cobra.Command, a []string) error {
			if err := factory.Setup(); err != nil {
				return errDisableUsage{err}
			}

			if command, ok := command.Command.(CommandInputs); ok {
				if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
					return errDisableUsage{err}
				}
			}
			return nil
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			factory.ui.Print(terminal.NewDebugLog("Running command: %s %s", Name, display)) //nolint: errcheck

			if err := command.Command.Handler(factory.profile, factory.ui, factory.clients(), a); err != nil {
				return errDisableUsage{err}
			}
			return nil
		}
	}

	return &cmd
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	c, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}

	factory.ensureUI()
	handleUsage(c, err, factory.errWriter)

	if printErr := factory.ui.Print(terminal.NewErrorLog(err)); printErr != nil {
		factory.errLogger.Println(err)
	}
	return 1
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Flags.APIKey, user.FlagAPIKey, "", user.FlagAPIKeyUsage)

	// ui flags
	factory.uiConfig.OutputFormat = terminal.OutputFormatJSON
	fs.Var(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.Raw, terminal.FlagRaw, false, terminal.FlagRawUsage)
	fs.BoolVar(&factory.uiConfig.Verbose, terminal.FlagVerbose, false, terminal.FlagVerboseUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.BaseURL, user.FlagBaseURL, "", user.FlagBaseURLUsage)
	flags.MarkHidden(fs, user.FlagBaseURL)
}

// Setup initializes the command factory once the flags are parsed
func (factory *CommandFactory) Setup() error {
	factory.ensureUI()

	if err := factory.profile.ResolveFlags(); err != nil {
		return fmt.Errorf("failed to resolve CLI profile: %w", err)
	}
	return nil
}

func (factory *CommandFactory) clients() Clients {
	return Clients{
		Pylon: pylon.NewAuthClient(pylon.ClientOptions{
			BaseURL:   factory.profile.Flags.BaseURL,
			UserAgent: UserAgent(),
			Logger:    factory.debugLogger(),
		}, factory.profile),
	}
}

func (factory *CommandFactory) debugLogger() *log.Logger {
	if !factory.uiConfig.Verbose {
		return log.New(ioutil.Discard, "", 0)
	}
	return log.New(factory.errWriter, debugLogPrefix, 0)
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		factory.errWriter = os.Stderr
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

// handleUsage prints the usage text of the failed command
// unless the failure came from the command's execution
func handleUsage(cmd *cobra.Command, err error, w io.Writer) {
	var disableUsage DisableUsage
	if errors.As(err, &disableUsage) {
		return
	}
	if cmd == nil {
		return
	}
	fmt.Fprintln(w, cmd.UsageString())
}
