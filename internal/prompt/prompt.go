package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the operator interrupts the prompt.
var ErrAborted = errors.New("prompt aborted")

// ErrEmptyTopic is returned by ValidateTopic for blank input.
var ErrEmptyTopic = errors.New("topic must not be empty")

// Prompter reads a decision topic from the operator.
type Prompter interface {
	Topic(ctx context.Context) (string, error)
}

// Survey prompts on the controlling terminal.
type Survey struct {
	Message string
	Help    string
}

// NewSurvey returns a terminal Prompter with the default wording.
func NewSurvey() *Survey {
	return &Survey{
		Message: "Decision topic:",
		Help:    "A short title, e.g. \"Adopt gRPC\". It becomes the record title and its folder name.",
	}
}

// Topic asks for a topic and returns it trimmed.
func (s *Survey) Topic(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	q := &survey.Input{
		Message: s.Message,
		Help:    s.Help,
	}
	if err := survey.AskOne(q, &out, survey.WithValidator(validateAnswer)); err != nil {
		return "", translateSurveyErr(err)
	}
	return strings.TrimSpace(out), nil
}

// ValidateTopic rejects blank topics.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}

func validateAnswer(ans interface{}) error {
	s, _ := ans.(string)
	return ValidateTopic(s)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// Static is a Prompter that returns a fixed answer.
type Static struct {
	Answer string
	Err    error
}

// Topic returns the configured answer.
func (s Static) Topic(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.Err != nil {
		return "", s.Err
	}
	return strings.TrimSpace(s.Answer), nil
}
