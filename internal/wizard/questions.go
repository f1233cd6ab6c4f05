package wizard

import (
	"errors"
	"regexp"

	"github.com/stackgen/cli/internal/project"
)

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Question IDs.
const (
	QName           = "name"
	QDatabase       = "database"
	QORM            = "orm"
	QInfrastructure = "infrastructure"
	QFrontend       = "frontend"
	QAuthType       = "auth_type"
	QAuthProviders  = "auth_providers"
	QRouterStrategy = "router_strategy"
	QAPIUI          = "api_ui"
	QHATEOAS        = "hateoas"
	QDockerCompose  = "docker_compose"
	QAIAgents       = "ai_agents"
)

type enum interface {
	~string
	Tag() string
}

func options[T enum](all []T) []Option {
	out := make([]Option, len(all))
	for i, v := range all {
		out[i] = Option{Label: string(v), Value: v.Tag()}
	}
	return out
}

// DefaultQuestions returns the full question set in asking order.
func DefaultQuestions() []Question {
	strategies := make([]Option, len(project.RouterStrategies))
	for i, r := range project.RouterStrategies {
		strategies[i] = Option{Label: string(r), Value: r.Dir()}
	}

	return []Question{
		{
			ID:          QName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Used for the workspace, crate names and the output directory.",
			Get:         func(f *project.File) Answer { return Answer{Text: f.Name} },
			Set:         func(f *project.File, a Answer) { f.Name = a.Text },
			Validate: func(a Answer) error {
				if !namePattern.MatchString(a.Text) {
					return errors.New("must start with a letter and contain only letters, digits, '-' or '_'")
				}
				return nil
			},
		},
		{
			ID:      QDatabase,
			Type:    QuestionTypeSelect,
			Title:   "Database",
			Options: options(project.Databases),
			Get:     func(f *project.File) Answer { return Answer{Text: f.Database} },
			Set:     func(f *project.File, a Answer) { f.Database = a.Text },
		},
		{
			ID:          QORM,
			Type:        QuestionTypeSelect,
			Title:       "Database access",
			Description: "MongoDB always uses its native driver.",
			Options:     options(project.ORMs),
			Condition:   func(f *project.File) bool { return !isDocumentStore(f.Database) },
			Get:         func(f *project.File) Answer { return Answer{Text: f.ORM} },
			Set:         func(f *project.File, a Answer) { f.ORM = a.Text },
		},
		{
			ID:      QInfrastructure,
			Type:    QuestionTypeMultiSelect,
			Title:   "Infrastructure add-ons",
			Options: options(project.Infrastructures),
			Get:     func(f *project.File) Answer { return Answer{Values: f.Infrastructure} },
			Set:     func(f *project.File, a Answer) { f.Infrastructure = a.Values },
		},
		{
			ID:      QFrontend,
			Type:    QuestionTypeSelect,
			Title:   "Frontend",
			Options: options(project.Frontends),
			Get:     func(f *project.File) Answer { return Answer{Text: f.Frontend} },
			Set:     func(f *project.File, a Answer) { f.Frontend = a.Text },
		},
		{
			ID:      QAuthType,
			Type:    QuestionTypeSelect,
			Title:   "Authentication",
			Options: options(project.AuthTypes),
			Get:     func(f *project.File) Answer { return Answer{Text: f.Authentication.Type} },
			Set:     func(f *project.File, a Answer) { f.Authentication.Type = a.Text },
		},
		{
			ID:        QAuthProviders,
			Type:      QuestionTypeMultiSelect,
			Title:     "OAuth2 providers",
			Options:   options(project.OAuthProviders),
			Condition: func(f *project.File) bool { return isOAuth2(f.Authentication.Type) },
			Get:       func(f *project.File) Answer { return Answer{Values: f.Authentication.Providers} },
			Set:       func(f *project.File, a Answer) { f.Authentication.Providers = a.Values },
		},
		{
			ID:      QRouterStrategy,
			Type:    QuestionTypeSelect,
			Title:   "Router strategy",
			Options: strategies,
			Get:     func(f *project.File) Answer { return Answer{Text: f.RouterStrategy} },
			Set:     func(f *project.File, a Answer) { f.RouterStrategy = a.Text },
		},
		{
			ID:      QAPIUI,
			Type:    QuestionTypeSelect,
			Title:   "API documentation UI",
			Options: options(project.APIUIs),
			Get:     func(f *project.File) Answer { return Answer{Text: f.APIUI} },
			Set:     func(f *project.File, a Answer) { f.APIUI = a.Text },
		},
		{
			ID:    QHATEOAS,
			Type:  QuestionTypeConfirm,
			Title: "Add HATEOAS links to responses?",
			Get:   func(f *project.File) Answer { return Answer{Yes: f.HATEOAS} },
			Set:   func(f *project.File, a Answer) { f.HATEOAS = a.Yes },
		},
		{
			ID:    QDockerCompose,
			Type:  QuestionTypeConfirm,
			Title: "Generate docker-compose.yml?",
			Get:   func(f *project.File) Answer { return Answer{Yes: f.DevOps.DockerCompose} },
			Set:   func(f *project.File, a Answer) { f.DevOps.DockerCompose = a.Yes },
		},
		{
			ID:          QAIAgents,
			Type:        QuestionTypeMultiSelect,
			Title:       "AI agent folders",
			Description: "Adds instruction files for the selected coding agents.",
			Options:     options(project.AIAgents),
			Get:         func(f *project.File) Answer { return Answer{Values: f.AIAgents} },
			Set:         func(f *project.File, a Answer) { f.AIAgents = a.Values },
		},
	}
}

func isDocumentStore(db string) bool {
	d, err := project.ParseDatabase(db)
	return err == nil && d.IsDocumentStore()
}

func isOAuth2(t string) bool {
	a, err := project.ParseAuthType(t)
	return err == nil && a == project.OAuth2
}
