// Package project defines the validated project configuration and the render
// context derived from it.
package project

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"

	oerrors "github.com/stackgen/cli/internal/errors"
)

// CurrentVersion is the configuration schema version written by this build.
const CurrentVersion = 1

// DefaultName is used when no project name is given.
const DefaultName = "my-axum-app"

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Authentication holds the scheme and, for OAuth2 only, the providers.
type Authentication struct {
	Type      AuthType        `validate:"oneof=None Basic Jwt OAuth2"`
	Providers []OAuthProvider `validate:"dive,oneof=Discord Google Apple GitHub"`
}

// DevOps holds deployment tooling switches.
type DevOps struct {
	DockerCompose bool
}

// Config is an immutable, validated project configuration.
// Build it with NewConfig; fields should not be modified afterwards.
type Config struct {
	Version        int              `validate:"eq=1"`
	Name           string           `validate:"required,max=64,projectname"`
	Database       Database         `validate:"oneof=Postgres MySQL MongoDB SQLite"`
	ORM            ORM              `validate:"oneof=Sqlx Diesel SeaOrm None"`
	Infrastructure []Infrastructure `validate:"dive,oneof=Redis Kafka Socket"`
	Frontend       Frontend         `validate:"oneof=React Vue Svelte Angular None"`
	Auth           Authentication
	RouterStrategy RouterStrategy `validate:"oneof=Standard AxumController AxumFolderRouter"`
	APIUI          APIUI          `validate:"oneof=Swagger Scalar None"`
	HATEOAS        bool
	DevOps         DevOps
	AIAgents       []AIAgent `validate:"dive,oneof=Claude Gemini GPT"`
}

// Option configures a Config under construction.
type Option func(*Config)

// WithDatabase sets the database.
func WithDatabase(d Database) Option { return func(c *Config) { c.Database = d } }

// WithORM sets the ORM.
func WithORM(o ORM) Option { return func(c *Config) { c.ORM = o } }

// WithInfrastructure sets the add-on services.
func WithInfrastructure(infra ...Infrastructure) Option {
	return func(c *Config) { c.Infrastructure = slices.Clone(infra) }
}

// WithFrontend sets the frontend framework.
func WithFrontend(f Frontend) Option { return func(c *Config) { c.Frontend = f } }

// WithAuth sets the authentication scheme and OAuth2 providers.
func WithAuth(t AuthType, providers ...OAuthProvider) Option {
	return func(c *Config) {
		c.Auth = Authentication{Type: t, Providers: slices.Clone(providers)}
	}
}

// WithRouterStrategy sets the api routing variant.
func WithRouterStrategy(r RouterStrategy) Option { return func(c *Config) { c.RouterStrategy = r } }

// WithAPIUI sets the API documentation UI.
func WithAPIUI(u APIUI) Option { return func(c *Config) { c.APIUI = u } }

// WithHATEOAS toggles hypermedia links in responses.
func WithHATEOAS(on bool) Option { return func(c *Config) { c.HATEOAS = on } }

// WithDockerCompose toggles the docker-compose file.
func WithDockerCompose(on bool) Option { return func(c *Config) { c.DevOps.DockerCompose = on } }

// WithAIAgents sets the agent folders.
func WithAIAgents(agents ...AIAgent) Option {
	return func(c *Config) { c.AIAgents = slices.Clone(agents) }
}

// Default returns the configuration produced by accepting every default answer.
func Default(name string) Config {
	return Config{
		Version:        CurrentVersion,
		Name:           name,
		Database:       Postgres,
		ORM:            Sqlx,
		Frontend:       React,
		Auth:           Authentication{Type: JWT},
		RouterStrategy: Standard,
		APIUI:          Swagger,
		DevOps:         DevOps{DockerCompose: true},
	}
}

// NewConfig builds a validated configuration.
//
// Cross-field rules are applied before validation: a document-store database
// forces ORM to None, set-valued fields drop duplicates keeping first
// occurrence, and OAuth providers are cleared unless the scheme is OAuth2.
func NewConfig(name string, opts ...Option) (*Config, error) {
	cfg := Default(name)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Database.IsDocumentStore() {
		cfg.ORM = NoORM
	}
	cfg.Infrastructure = dedupe(cfg.Infrastructure)
	cfg.AIAgents = dedupe(cfg.AIAgents)
	if cfg.Auth.Type == OAuth2 {
		cfg.Auth.Providers = dedupe(cfg.Auth.Providers)
	} else {
		cfg.Auth.Providers = nil
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("projectname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks field-level constraints of cfg.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating configuration: %w", err)
	}

	fe := verrs[0]
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid value %v (rule %q)", fe.Value(), fe.Tag()),
		"",
		fe.Namespace(),
		hintFor(fe.Tag()),
	)
}

func hintFor(rule string) string {
	switch rule {
	case "projectname":
		return "Project names start with a letter and contain only letters, digits, '-' and '_'."
	case "eq":
		return fmt.Sprintf("This build reads configuration version %d.", CurrentVersion)
	default:
		return ""
	}
}

func dedupe[T comparable](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// HasInfrastructure reports whether the add-on is selected.
func (c *Config) HasInfrastructure(i Infrastructure) bool {
	return slices.Contains(c.Infrastructure, i)
}
