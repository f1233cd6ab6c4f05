// Package wizard collects a project configuration interactively.
package wizard

import (
	"errors"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/project"
)

// ErrCancelled is returned when the user aborts the wizard.
var ErrCancelled = oerrors.Wrap(oerrors.ErrCancelled, "wizard cancelled")

// ErrNoQuestions is returned when Run is called without questions.
var ErrNoQuestions = errors.New("wizard: no questions")

// QuestionType selects the form field used for a question.
type QuestionType int

const (
	// QuestionTypeInput is a free-text answer.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeSelect picks one option.
	QuestionTypeSelect
	// QuestionTypeMultiSelect picks any number of options.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no answer.
	QuestionTypeConfirm
)

// Option is one choice of a select question.
type Option struct {
	Label string
	Value string
}

// Question is a single wizard step. Answers are written straight into the
// project file being built.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Options     []Option

	// Condition hides the question when it returns false.
	Condition func(f *project.File) bool

	// Get reads the current answer from the file, used as the default.
	Get func(f *project.File) Answer
	// Set stores the answer in the file.
	Set func(f *project.File, a Answer)

	// Validate rejects an answer before it is stored.
	Validate func(a Answer) error
}

// Answer holds the value of one question. Only the field matching the
// question type is used.
type Answer struct {
	Text   string
	Values []string
	Yes    bool
}

// Prompter asks one question and returns the answer.
type Prompter func(q *Question, current Answer) (Answer, error)
