package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"brm-service/internal/app/models"
	"brm-service/internal/pkg/client"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/utils"
)

// errInputClosed ends the wizard's prompting; answers given so far are kept.
var errInputClosed = errors.New("input closed")

func (app *cli) fill(ctx context.Context, assessmentID string, force bool) error {
	assessment, err := app.client.GetAssessment(ctx, assessmentID)
	if err != nil {
		return err
	}
	if assessment.TemplateID == "" {
		return fmt.Errorf("assessment %s has no template to fill", assessmentID)
	}
	template, err := app.client.GetTemplate(ctx, assessment.TemplateID)
	if err != nil {
		return err
	}

	response, err := app.resolveResponse(ctx, assessment)
	if err != nil {
		return err
	}
	if response.IsSubmitted() {
		app.say("Response %s was submitted on %s and can no longer be filled.", response.ID, response.SubmittedAt)
		return nil
	}

	app.say("%s (%s)", assessment.Name, template.Name)
	inputClosed := false
	for i, section := range template.Sections {
		app.say("")
		app.say("[%d/%d] %s", i+1, len(template.Sections), section.Title)
		if section.Description != "" {
			app.say("%s", section.Description)
		}

		for _, question := range section.Questions {
			if inputClosed {
				break
			}
			current, _ := response.Answer(section.ID, question.ID)
			value, err := app.ask(question, current)
			if errors.Is(err, errInputClosed) {
				inputClosed = true
				break
			}
			if err != nil {
				return err
			}
			if value == nil {
				continue
			}
			response, err = app.client.UpsertAnswer(ctx, response.ID, section.ID, question.ID, value)
			if err != nil {
				return err
			}
			app.log.WithField(constvars.LoggingQuestionIDKey, question.ID).Debug("answer saved")
		}

		progress, err := app.client.GetResponseProgress(ctx, response.ID)
		if err != nil {
			return err
		}
		app.reportSection(progress, section.ID)
	}

	progress, err := app.client.GetResponseProgress(ctx, response.ID)
	if err != nil {
		return err
	}
	app.say("")
	if !progress.Complete && !force {
		app.say("Not every section is complete. Answers are saved; run fill again to continue or pass --force to submit anyway.")
		return nil
	}

	submitted, err := app.client.SubmitResponse(ctx, response.ID)
	if err != nil {
		return err
	}
	app.say("Response %s submitted.", submitted.ID)
	return nil
}

// resolveResponse returns the assessment's response, starting one when none
// exists yet.
func (app *cli) resolveResponse(ctx context.Context, assessment *models.Assessment) (*models.AssessmentResponse, error) {
	response, err := app.client.GetAssessmentResponse(ctx, assessment.ID)
	if err == nil {
		return response, nil
	}
	if !client.IsNotFound(err) {
		return nil, err
	}

	app.log.WithField(constvars.LoggingAssessmentIDKey, assessment.ID).Debug("starting a new response")
	return app.client.CreateResponse(ctx, client.Fields{
		"assessmentId": assessment.ID,
		"accountId":    assessment.AccountID,
	})
}

func (app *cli) reportSection(progress *models.ResponseProgress, sectionID string) {
	for _, section := range progress.Sections {
		if section.SectionID != sectionID {
			continue
		}
		state := "incomplete"
		if section.Complete {
			state = "complete"
		}
		app.say("Section %q: %d of %d answered, %s", section.Title, section.Answered, section.Total, state)
		return
	}
}

// ask prompts until the input is valid for the question type. A nil value
// means the question was skipped.
func (app *cli) ask(question models.Question, current interface{}) (interface{}, error) {
	marker := ""
	if question.Required {
		marker = " *"
	}
	app.say("%s%s", question.Text, marker)
	for i, option := range question.Options {
		app.say("  %d) %s", i+1, option)
	}
	if utils.IsAnswered(current) {
		app.say("  current: %v", current)
	}

	for {
		fmt.Fprint(app.out, "> ")
		line, err := app.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			return nil, nil
		}

		value, parseErr := parseQuestionInput(question, line)
		if parseErr == nil {
			return value, nil
		}
		app.say("%v", parseErr)
	}
}

func (app *cli) readLine() (string, error) {
	line, err := app.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func parseQuestionInput(question models.Question, line string) (interface{}, error) {
	switch question.Type {
	case constvars.QuestionTypeNumber:
		number, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", line)
		}
		return number, nil
	case constvars.QuestionTypeMultipleChoice:
		return pickOption(question.Options, line)
	case constvars.QuestionTypeCheckboxes:
		picked := []string{}
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			option, err := pickOption(question.Options, part)
			if err != nil {
				return nil, err
			}
			picked = append(picked, option)
		}
		if len(picked) == 0 {
			return nil, errors.New("pick at least one option")
		}
		return picked, nil
	default:
		return line, nil
	}
}

// pickOption accepts an option's 1-based number or its exact text.
func pickOption(options []string, input string) (string, error) {
	if index, err := strconv.Atoi(input); err == nil {
		if index >= 1 && index <= len(options) {
			return options[index-1], nil
		}
		return "", fmt.Errorf("choose a number between 1 and %d", len(options))
	}
	for _, option := range options {
		if strings.EqualFold(option, input) {
			return option, nil
		}
	}
	return "", fmt.Errorf("%q is not one of the options", input)
}
