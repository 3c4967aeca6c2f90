package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"brm-service/internal/app/drivers/logger"
	"brm-service/internal/pkg/client"
	"brm-service/internal/pkg/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// cli holds the global flags and the client built from them. Commands read
// app.client at run time, after the persistent pre-run has set it up.
type cli struct {
	serverURL string
	prefix    string
	output    string
	verbose   bool
	timeout   time.Duration

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	log    *logrus.Logger
	client *client.Client
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	app := &cli{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}

	root := &cobra.Command{
		Use:   "brmctl",
		Short: "Manage accounts, contacts and relationship assessments",
		Long: `brmctl talks to the business relationship management service.

Resources:
  accounts     - companies and their contacts
  contacts     - people attached to an account
  templates    - questionnaire templates
  assessments  - relationship reviews of an account
  responses    - answers to an assessment, including the fill wizard`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&app.serverURL, "server", utils.GetEnvString("BRM_SERVER_URL", "http://localhost:3001"), "service base URL")
	flags.StringVar(&app.prefix, "prefix", utils.GetEnvString("BRM_ENDPOINT_PREFIX", "/api"), "path the API is mounted under")
	flags.StringVarP(&app.output, "output", "o", outputJSON, "output format: json or yaml")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "log requests to stderr")
	flags.DurationVar(&app.timeout, "timeout", 30*time.Second, "timeout for each command")

	root.AddCommand(
		app.accountsCommand(),
		app.contactsCommand(),
		app.templatesCommand(),
		app.assessmentsCommand(),
		app.responsesCommand(),
		app.healthCommand(),
	)
	return root
}

func (app *cli) setup() error {
	if app.output != outputJSON && app.output != outputYAML {
		return fmt.Errorf("unknown output format %q, use %s or %s", app.output, outputJSON, outputYAML)
	}
	app.log = logger.NewCLILogger(app.verbose)
	app.log.SetOutput(app.errOut)
	app.client = client.New(app.serverURL,
		client.WithPrefix(app.prefix),
		client.WithLogger(app.log),
	)
	app.log.WithField("server", app.serverURL).Debug("client configured")
	return nil
}

// commandContext bounds non-interactive commands by --timeout.
func (app *cli) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), app.timeout)
}

func (app *cli) healthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show storage, locker and events health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.commandContext(cmd)
			defer cancel()
			health, err := app.client.Health(ctx)
			if health != nil {
				if printErr := app.print(health); printErr != nil {
					return printErr
				}
			}
			return err
		},
	}
}
