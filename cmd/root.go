package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(factory.Run(newRootCommand(factory)))
}

func newRootCommand(factory *cli.CommandFactory) *cobra.Command {
	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "Read-only CLI for the Pylon API",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Auth))
	cmd.AddCommand(factory.Build(commands.Usage))
	cmd.AddCommand(factory.Build(commands.Me))
	cmd.AddCommand(factory.Build(commands.Accounts))
	cmd.AddCommand(factory.Build(commands.AuditLogs))
	cmd.AddCommand(factory.Build(commands.Contacts))
	cmd.AddCommand(factory.Build(commands.CustomFields))
	cmd.AddCommand(factory.Build(commands.Issues))
	cmd.AddCommand(factory.Build(commands.KnowledgeBases))
	cmd.AddCommand(factory.Build(commands.MacroGroups))
	cmd.AddCommand(factory.Build(commands.Tags))
	cmd.AddCommand(factory.Build(commands.Teams))
	cmd.AddCommand(factory.Build(commands.TicketForms))
	cmd.AddCommand(factory.Build(commands.TrainingData))
	cmd.AddCommand(factory.Build(commands.UserRoles))
	cmd.AddCommand(factory.Build(commands.Users))

	return cmd
}
