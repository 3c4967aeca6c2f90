package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"brm-service/internal/pkg/client"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// resource describes the CRUD calls behind one command group. A nil func
// means the service does not expose that operation.
type resource struct {
	name     string
	singular string
	list     func(ctx context.Context) (interface{}, error)
	get      func(ctx context.Context, id string) (interface{}, error)
	create   func(ctx context.Context, fields client.Fields) (interface{}, error)
	update   func(ctx context.Context, id string, fields client.Fields) (interface{}, error)
	delete   func(ctx context.Context, id string) error
}

func (app *cli) resourceCommand(res resource, short string) *cobra.Command {
	group := &cobra.Command{
		Use:   res.name,
		Short: short,
	}

	if res.list != nil {
		group.AddCommand(&cobra.Command{
			Use:   "list",
			Short: "List " + res.name,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(res.list(ctx))
			},
		})
	}

	if res.get != nil {
		group.AddCommand(&cobra.Command{
			Use:   "get <id>",
			Short: "Show one " + res.singular,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(res.get(ctx, args[0]))
			},
		})
	}

	if res.create != nil {
		var input fieldInput
		cmd := &cobra.Command{
			Use:   "create",
			Short: "Create a " + res.singular,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := input.collect(cmd.InOrStdin())
				if err != nil {
					return err
				}
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(res.create(ctx, fields))
			},
		}
		input.bind(cmd)
		group.AddCommand(cmd)
	}

	if res.update != nil {
		var input fieldInput
		cmd := &cobra.Command{
			Use:   "update <id>",
			Short: "Change fields of a " + res.singular,
			Long:  "Only the fields given are changed. Every other stored field is kept.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fields, err := input.collect(cmd.InOrStdin())
				if err != nil {
					return err
				}
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(res.update(ctx, args[0], fields))
			},
		}
		input.bind(cmd)
		group.AddCommand(cmd)
	}

	if res.delete != nil {
		group.AddCommand(&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a " + res.singular,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				err := res.delete(ctx, args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(app.out, "Deleted %s %s\n", res.singular, args[0])
				return err
			},
		})
	}
	return group
}

func (app *cli) printResult(v interface{}, err error) error {
	if err != nil {
		return err
	}
	return app.print(v)
}

// fieldInput collects a payload from --file (a JSON object, "-" for stdin)
// and repeated --set key=value flags, which win over the file.
type fieldInput struct {
	file string
	sets []string
}

func (f *fieldInput) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", `JSON object with the fields, "-" reads stdin`)
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "field as key=value, repeatable")
}

func (f *fieldInput) collect(stdin io.Reader) (client.Fields, error) {
	if f.file == "" && len(f.sets) == 0 {
		return nil, errors.New("nothing to send, use --set key=value or --file")
	}

	fields := client.Fields{}
	if f.file != "" {
		raw, err := readInputFile(f.file, stdin)
		if err != nil {
			return nil, err
		}
		err = json.Unmarshal(raw, &fields)
		if err != nil {
			return nil, fmt.Errorf("%s is not a JSON object: %w", f.file, err)
		}
	}

	for _, set := range f.sets {
		key, value, ok := strings.Cut(set, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", set)
		}
		fields[key] = value
	}
	return fields, nil
}

func readInputFile(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func (app *cli) accountsCommand() *cobra.Command {
	cmd := app.resourceCommand(resource{
		name:     "accounts",
		singular: "account",
		list: func(ctx context.Context) (interface{}, error) {
			return app.client.ListAccounts(ctx)
		},
		get: func(ctx context.Context, id string) (interface{}, error) {
			return app.client.GetAccount(ctx, id)
		},
		create: func(ctx context.Context, fields client.Fields) (interface{}, error) {
			return app.client.CreateAccount(ctx, fields)
		},
		update: func(ctx context.Context, id string, fields client.Fields) (interface{}, error) {
			return app.client.UpdateAccount(ctx, id, fields)
		},
		delete: func(ctx context.Context, id string) error {
			return app.client.DeleteAccount(ctx, id)
		},
	}, "Manage accounts")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "contacts <account-id>",
			Short: "List the contacts of an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(app.client.ListAccountContacts(ctx, args[0]))
			},
		},
		&cobra.Command{
			Use:   "assessments <account-id>",
			Short: "List the assessments of an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(app.client.ListAccountAssessments(ctx, args[0]))
			},
		},
	)
	return cmd
}

func (app *cli) contactsCommand() *cobra.Command {
	return app.resourceCommand(resource{
		name:     "contacts",
		singular: "contact",
		list: func(ctx context.Context) (interface{}, error) {
			return app.client.ListContacts(ctx)
		},
		get: func(ctx context.Context, id string) (interface{}, error) {
			return app.client.GetContact(ctx, id)
		},
		create: func(ctx context.Context, fields client.Fields) (interface{}, error) {
			return app.client.CreateContact(ctx, fields)
		},
		update: func(ctx context.Context, id string, fields client.Fields) (interface{}, error) {
			return app.client.UpdateContact(ctx, id, fields)
		},
		delete: func(ctx context.Context, id string) error {
			return app.client.DeleteContact(ctx, id)
		},
	}, "Manage contacts")
}

// Templates cannot be changed or removed once created.
func (app *cli) templatesCommand() *cobra.Command {
	return app.resourceCommand(resource{
		name:     "templates",
		singular: "template",
		list: func(ctx context.Context) (interface{}, error) {
			return app.client.ListTemplates(ctx)
		},
		get: func(ctx context.Context, id string) (interface{}, error) {
			return app.client.GetTemplate(ctx, id)
		},
		create: func(ctx context.Context, fields client.Fields) (interface{}, error) {
			return app.client.CreateTemplate(ctx, fields)
		},
	}, "Manage questionnaire templates")
}

func (app *cli) assessmentsCommand() *cobra.Command {
	cmd := app.resourceCommand(resource{
		name:     "assessments",
		singular: "assessment",
		list: func(ctx context.Context) (interface{}, error) {
			return app.client.ListAssessments(ctx)
		},
		get: func(ctx context.Context, id string) (interface{}, error) {
			return app.client.GetAssessment(ctx, id)
		},
		create: func(ctx context.Context, fields client.Fields) (interface{}, error) {
			return app.client.CreateAssessment(ctx, fields)
		},
		update: func(ctx context.Context, id string, fields client.Fields) (interface{}, error) {
			return app.client.UpdateAssessment(ctx, id, fields)
		},
		delete: func(ctx context.Context, id string) error {
			return app.client.DeleteAssessment(ctx, id)
		},
	}, "Manage assessments")

	cmd.AddCommand(&cobra.Command{
		Use:   "response <assessment-id>",
		Short: "Show the response of an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.commandContext(cmd)
			defer cancel()
			return app.printResult(app.client.GetAssessmentResponse(ctx, args[0]))
		},
	})
	return cmd
}
