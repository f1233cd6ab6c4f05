package project

import (
	"fmt"

	oerrors "github.com/stackgen/cli/internal/errors"
)

// FileName is the default project file name.
const FileName = "stackgen.yaml"

// AuthFile is the serialized authentication block.
type AuthFile struct {
	Type      string   `mapstructure:"type" yaml:"type" json:"type"`
	Providers []string `mapstructure:"providers" yaml:"providers,omitempty" json:"providers,omitempty"`
}

// DevOpsFile is the serialized devops block.
type DevOpsFile struct {
	DockerCompose bool `mapstructure:"docker_compose" yaml:"docker_compose" json:"docker_compose"`
}

// File is the on-disk form of a project configuration. Enum values are
// matched case-insensitively when converted with Config.
type File struct {
	Version        int        `mapstructure:"version" yaml:"version" json:"version"`
	Name           string     `mapstructure:"name" yaml:"name" json:"name"`
	Database       string     `mapstructure:"database" yaml:"database" json:"database"`
	ORM            string     `mapstructure:"orm" yaml:"orm" json:"orm"`
	Infrastructure []string   `mapstructure:"infrastructure" yaml:"infrastructure" json:"infrastructure"`
	Frontend       string     `mapstructure:"frontend" yaml:"frontend" json:"frontend"`
	Authentication AuthFile   `mapstructure:"authentication" yaml:"authentication" json:"authentication"`
	RouterStrategy string     `mapstructure:"router_strategy" yaml:"router_strategy" json:"router_strategy"`
	APIUI          string     `mapstructure:"api_ui" yaml:"api_ui" json:"api_ui"`
	HATEOAS        bool       `mapstructure:"hateoas" yaml:"hateoas" json:"hateoas"`
	DevOps         DevOpsFile `mapstructure:"devops" yaml:"devops" json:"devops"`
	AIAgents       []string   `mapstructure:"ai_agents" yaml:"ai_agents" json:"ai_agents"`
}

// DefaultFile returns the file form of Default(name).
func DefaultFile(name string) File {
	cfg := Default(name)
	return ToFile(&cfg)
}

// ToFile converts a configuration to its file form.
func ToFile(cfg *Config) File {
	f := File{
		Version:        cfg.Version,
		Name:           cfg.Name,
		Database:       cfg.Database.Tag(),
		ORM:            cfg.ORM.Tag(),
		Infrastructure: tags(cfg.Infrastructure),
		Frontend:       cfg.Frontend.Tag(),
		Authentication: AuthFile{Type: cfg.Auth.Type.Tag()},
		RouterStrategy: cfg.RouterStrategy.Dir(),
		APIUI:          cfg.APIUI.Tag(),
		HATEOAS:        cfg.HATEOAS,
		DevOps:         DevOpsFile{DockerCompose: cfg.DevOps.DockerCompose},
		AIAgents:       tags(cfg.AIAgents),
	}
	if cfg.Auth.Type == OAuth2 {
		f.Authentication.Providers = tags(cfg.Auth.Providers)
	}
	return f
}

// Config parses every field and builds a validated configuration.
// A zero version is read as the current version.
func (f File) Config() (*Config, error) {
	version := f.Version
	if version == 0 {
		version = CurrentVersion
	}
	if version != CurrentVersion {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("unsupported configuration version %d", f.Version),
			"", "version",
			fmt.Sprintf("This build reads configuration version %d.", CurrentVersion),
		)
	}

	var opts []Option
	var err error

	if f.Database != "" {
		var d Database
		if d, err = ParseDatabase(f.Database); err != nil {
			return nil, fieldError("database", err)
		}
		opts = append(opts, WithDatabase(d))
	}
	if f.ORM != "" {
		var o ORM
		if o, err = ParseORM(f.ORM); err != nil {
			return nil, fieldError("orm", err)
		}
		opts = append(opts, WithORM(o))
	}

	infra, err := parseAll(f.Infrastructure, ParseInfrastructure)
	if err != nil {
		return nil, fieldError("infrastructure", err)
	}
	opts = append(opts, WithInfrastructure(infra...))

	if f.Frontend != "" {
		var fe Frontend
		if fe, err = ParseFrontend(f.Frontend); err != nil {
			return nil, fieldError("frontend", err)
		}
		opts = append(opts, WithFrontend(fe))
	}

	if f.Authentication.Type != "" {
		at, err := ParseAuthType(f.Authentication.Type)
		if err != nil {
			return nil, fieldError("authentication.type", err)
		}
		providers, err := parseAll(f.Authentication.Providers, ParseOAuthProvider)
		if err != nil {
			return nil, fieldError("authentication.providers", err)
		}
		opts = append(opts, WithAuth(at, providers...))
	}

	if f.RouterStrategy != "" {
		var r RouterStrategy
		if r, err = ParseRouterStrategy(f.RouterStrategy); err != nil {
			return nil, fieldError("router_strategy", err)
		}
		opts = append(opts, WithRouterStrategy(r))
	}
	if f.APIUI != "" {
		var u APIUI
		if u, err = ParseAPIUI(f.APIUI); err != nil {
			return nil, fieldError("api_ui", err)
		}
		opts = append(opts, WithAPIUI(u))
	}

	agents, err := parseAll(f.AIAgents, ParseAIAgent)
	if err != nil {
		return nil, fieldError("ai_agents", err)
	}
	opts = append(opts,
		WithAIAgents(agents...),
		WithHATEOAS(f.HATEOAS),
		WithDockerCompose(f.DevOps.DockerCompose),
	)

	name := f.Name
	if name == "" {
		name = DefaultName
	}
	return NewConfig(name, opts...)
}

func fieldError(field string, err error) error {
	return oerrors.NewValidationError(err.Error(), "", field, "")
}

func parseAll[T any](in []string, fn func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(in))
	for _, s := range in {
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func tags[T interface{ Tag() string }](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = v.Tag()
	}
	return out
}
