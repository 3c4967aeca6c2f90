package main

import (
	"context"
	"fmt"

	"brm-service/internal/pkg/client"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func (app *cli) responsesCommand() *cobra.Command {
	var assessmentID string
	cmd := app.resourceCommand(resource{
		name:     "responses",
		singular: "response",
		list: func(ctx context.Context) (interface{}, error) {
			return app.client.ListResponses(ctx, assessmentID)
		},
		get: func(ctx context.Context, id string) (interface{}, error) {
			return app.client.GetResponse(ctx, id)
		},
		create: func(ctx context.Context, fields client.Fields) (interface{}, error) {
			return app.client.CreateResponse(ctx, fields)
		},
		update: func(ctx context.Context, id string, fields client.Fields) (interface{}, error) {
			return app.client.UpdateResponse(ctx, id, fields)
		},
	}, "Manage assessment responses")

	for _, sub := range cmd.Commands() {
		if sub.Name() == "list" {
			sub.Flags().StringVar(&assessmentID, "assessment", "", "only responses of this assessment")
		}
	}

	var force bool
	fill := &cobra.Command{
		Use:   "fill <assessment-id>",
		Short: "Answer an assessment section by section",
		Long: `Walks the template sections of the assessment in order and asks one
question at a time. Every answer is saved immediately. Press enter to keep the
current answer or leave a question unanswered.

The response is submitted at the end only when every section is complete,
unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.fill(cmd.Context(), args[0], force)
		},
	}
	fill.Flags().BoolVar(&force, "force", false, "submit even when sections are incomplete")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "submit <response-id>",
			Short: "Submit a response",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(app.client.SubmitResponse(ctx, args[0]))
			},
		},
		&cobra.Command{
			Use:   "answer <response-id> <section-id> <question-id> <value>",
			Short: "Set the answer to one question",
			Long:  "The value is read as JSON when it parses, so 4, true and [\"a\",\"b\"] keep their types. Anything else is sent as text.",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(app.client.UpsertAnswer(ctx, args[0], args[1], args[2], parseAnswerValue(args[3])))
			},
		},
		&cobra.Command{
			Use:   "progress <response-id>",
			Short: "Show section completion of a response",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := app.commandContext(cmd)
				defer cancel()
				return app.printResult(app.client.GetResponseProgress(ctx, args[0]))
			},
		},
		fill,
	)
	return cmd
}

func parseAnswerValue(raw string) interface{} {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err == nil {
		return value
	}
	return raw
}

func (app *cli) say(format string, args ...interface{}) {
	fmt.Fprintf(app.out, format+"\n", args...)
}
