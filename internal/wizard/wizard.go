package wizard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/stackgen/cli/internal/output"
	"github.com/stackgen/cli/internal/project"
)

// Run asks every visible question in order, starting from start, and
// returns the completed project file. Conditions are evaluated against the
// answers given so far.
func Run(start project.File, questions []Question, prompt Prompter) (project.File, error) {
	if len(questions) == 0 {
		return project.File{}, ErrNoQuestions
	}

	f := start
	f.Infrastructure = slices.Clone(start.Infrastructure)
	f.Authentication.Providers = slices.Clone(start.Authentication.Providers)
	f.AIAgents = slices.Clone(start.AIAgents)

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(&f) {
			output.Debug("wizard question skipped", "id", q.ID)
			continue
		}

		a, err := prompt(q, q.Get(&f))
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return project.File{}, ErrCancelled
			}
			return project.File{}, fmt.Errorf("wizard error: %w", err)
		}
		if q.Validate != nil {
			if err := q.Validate(a); err != nil {
				return project.File{}, fmt.Errorf("%s: %w", q.ID, err)
			}
		}
		q.Set(&f, a)
	}

	// Answers hidden by a later choice are dropped.
	if isDocumentStore(f.Database) {
		f.ORM = project.NoORM.Tag()
	}
	if !isOAuth2(f.Authentication.Type) {
		f.Authentication.Providers = nil
	}

	return f, nil
}

// RunWithDefaults runs the default questions through huh forms.
func RunWithDefaults(start project.File) (project.File, error) {
	return Run(start, DefaultQuestions(), HuhPrompter(newTheme()))
}

// HuhPrompter asks each question as its own huh form.
func HuhPrompter(theme *huh.Theme) Prompter {
	return func(q *Question, current Answer) (Answer, error) {
		a := current
		field := buildField(q, &a)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(!output.IsInputTTY())
		if err := form.Run(); err != nil {
			return Answer{}, err
		}
		return a, nil
	}
}

func buildField(q *Question, a *Answer) huh.Field {
	opts := make([]huh.Option[string], len(q.Options))
	for i, o := range q.Options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	switch q.Type {
	case QuestionTypeSelect:
		return huh.NewSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(opts...).
			Value(&a.Text)
	case QuestionTypeMultiSelect:
		for i, o := range q.Options {
			opts[i] = opts[i].Selected(slices.Contains(a.Values, o.Value))
		}
		ms := huh.NewMultiSelect[string]().
			Title(q.Title).
			Description(q.Description).
			Options(opts...).
			Value(&a.Values)
		if q.Validate != nil {
			ms = ms.Validate(func(v []string) error { return q.Validate(Answer{Values: v}) })
		}
		return ms
	case QuestionTypeConfirm:
		return huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Value(&a.Yes)
	default:
		in := huh.NewInput().
			Title(q.Title).
			Description(q.Description).
			Placeholder(a.Text).
			Value(&a.Text)
		if q.Validate != nil {
			in = in.Validate(func(v string) error { return q.Validate(Answer{Text: v}) })
		}
		return in
	}
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(output.ColorCyan).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(output.ColorDimGray)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(output.ColorBoldRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(output.ColorBoldRed)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(output.ColorCyan).SetString("> ")
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(output.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(output.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(output.ColorDimGray).SetString("[ ] ")

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
