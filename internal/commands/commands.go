package commands

import (
	"strings"

	"github.com/usepylon/pylon-cli/internal/cli"
	"github.com/usepylon/pylon-cli/internal/commands/auth"
	"github.com/usepylon/pylon-cli/internal/commands/customfields"
	"github.com/usepylon/pylon-cli/internal/commands/issues"
	"github.com/usepylon/pylon-cli/internal/commands/resource"
	"github.com/usepylon/pylon-cli/internal/commands/usage"

	"github.com/spf13/cobra"
)

// set of commands
var (
	Auth = cli.CommandDefinition{
		Use:         "auth",
		Description: "Manage Pylon authentication",
		Help: `Manage Pylon authentication

	API keys are stored per workspace in the credentials file. The key used for
	a request is resolved from the --api-key flag, then the PYLON_API_KEY
	environment variable, then the default stored workspace.`,
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "login",
				Display:     "auth login",
				Description: "Add a workspace credential",
				Help: `Add a workspace credential

	Validates the API key against the Pylon API and stores it under a workspace
	named after your organization, unless --name is provided. The first stored
	workspace becomes the default.`,
				Command: &auth.CommandLogin{},
			},
			{
				Use:         "logout [workspace]",
				Display:     "auth logout",
				Description: "Remove a workspace credential",
				Help:        "Removes the credential of the named workspace, or of the default workspace when none is named",
				Command:     &auth.CommandLogout{},
				Args:        cobra.MaximumNArgs(1),
			},
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "auth list",
				Description: "List configured workspaces",
				Command:     &auth.CommandList{},
			},
			{
				Use:         "default [workspace]",
				Display:     "auth default",
				Description: "Get or set the default workspace",
				Command:     &auth.CommandDefault{},
				Args:        cobra.MaximumNArgs(1),
			},
			{
				Use:         "token",
				Display:     "auth token",
				Description: "Print the resolved API key",
				Command:     &auth.CommandToken{},
			},
			{
				Use:         "whoami",
				Display:     "auth whoami",
				Description: "Show current user and workspace info",
				Command:     &auth.CommandWhoami{},
			},
			{
				Use:         "status",
				Display:     "auth status",
				Description: "Show authentication status",
				Command:     &auth.CommandStatus{},
			},
		},
	}

	Usage = cli.CommandDefinition{
		Use:         "usage",
		Description: "Show compact command reference",
		Command:     &usage.Command{},
	}

	Me = cli.CommandDefinition{
		Use:         "me",
		Description: "Get the current organization",
		Command:     resource.NewGet("/me"),
	}

	Accounts = resourceCommand("accounts", "/accounts", "Read accounts", "account")
	Contacts = resourceCommand("contacts", "/contacts", "Read contacts", "contact")

	Issues = cli.CommandDefinition{
		Use:         "issues",
		Aliases:     []string{"issue"},
		Description: "Read issues",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "issues list",
				Description: "List issues created within a time range of at most 30 days",
				Command:     &issues.CommandList{},
			},
			getCommand("issues", "get <id>", "/issues/%s", "Get issue by ID"),
			getCommand("issues", "followers <id>", "/issues/%s/followers", "Get issue followers"),
			getCommand("issues", "messages <id>", "/issues/%s/messages", "Get issue messages"),
			getCommand("issues", "threads <id>", "/issues/%s/threads", "Get issue threads"),
		},
	}

	KnowledgeBases = cli.CommandDefinition{
		Use:         "kb",
		Aliases:     []string{"knowledge-bases"},
		Description: "Read knowledge bases",
		SubCommands: []cli.CommandDefinition{
			listCommand("kb", "/knowledge-bases", "List knowledge bases"),
			getCommand("kb", "get <id>", "/knowledge-bases/%s", "Get knowledge base by ID"),
			getCommand("kb", "collections <id>", "/knowledge-bases/%s/collections", "List collections in a knowledge base"),
			getCommand("kb", "articles <id>", "/knowledge-bases/%s/articles", "List articles in a knowledge base"),
			getCommand("kb", "article <kb-id> <article-id>", "/knowledge-bases/%s/articles/%s", "Get a specific article in a knowledge base"),
		},
	}

	Tags  = resourceCommand("tags", "/tags", "Read tags", "tag")
	Teams = resourceCommand("teams", "/teams", "Read teams", "team")
	Users = resourceCommand("users", "/users", "Read users", "user")

	UserRoles = cli.CommandDefinition{
		Use:         "user-roles",
		Description: "Read user roles",
		SubCommands: []cli.CommandDefinition{
			listCommand("user-roles", "/user-roles", "List user roles"),
		},
	}

	CustomFields = cli.CommandDefinition{
		Use:         "custom-fields",
		Description: "Read custom fields",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "custom-fields list",
				Description: "List the custom fields of an object type",
				Command:     &customfields.CommandList{},
			},
			getCommand("custom-fields", "get <id>", "/custom-fields/%s", "Get custom field by ID"),
		},
	}

	TicketForms = resourceCommand("ticket-forms", "/ticket-forms", "Read ticket forms", "ticket form")

	AuditLogs = cli.CommandDefinition{
		Use:         "audit-logs",
		Description: "Read audit logs",
		SubCommands: []cli.CommandDefinition{
			listCommand("audit-logs", "/audit-logs", "List audit logs"),
		},
	}

	MacroGroups = cli.CommandDefinition{
		Use:         "macro-groups",
		Description: "Read macro groups",
		SubCommands: []cli.CommandDefinition{
			listCommand("macro-groups", "/macro-groups", "List macro groups (response templates)"),
		},
	}

	TrainingData = cli.CommandDefinition{
		Use:         "training-data",
		Description: "Read AI training data",
		SubCommands: []cli.CommandDefinition{
			listCommand("training-data", "/training-data", "List AI training data sources"),
		},
	}
)

// resourceCommand defines a command group with the `list` and `get` sub commands
func resourceCommand(use, path, description, noun string) cli.CommandDefinition {
	return cli.CommandDefinition{
		Use:         use,
		Description: description,
		SubCommands: []cli.CommandDefinition{
			listCommand(use, path, "List "+use),
			getCommand(use, "get <id>", path+"/%s", "Get "+noun+" by ID"),
		},
	}
}

func listCommand(parent, path, description string) cli.CommandDefinition {
	return cli.CommandDefinition{
		Use:         "list",
		Aliases:     []string{"ls"},
		Display:     parent + " list",
		Description: description,
		Command:     resource.NewList(path),
	}
}

func getCommand(parent, use, path, description string) cli.CommandDefinition {
	args := len(strings.Fields(use)) - 1
	return cli.CommandDefinition{
		Use:         use,
		Display:     parent + " " + strings.Fields(use)[0],
		Description: description,
		Command:     resource.NewGet(path),
		Args:        cobra.ExactArgs(args),
	}
}
