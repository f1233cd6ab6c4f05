package project

import (
	"fmt"
	"strings"
)

// Database is the primary datastore of the generated project.
type Database string

const (
	Postgres Database = "Postgres"
	MySQL    Database = "MySQL"
	MongoDB  Database = "MongoDB"
	SQLite   Database = "SQLite"
)

// Databases lists every supported database in prompt order.
var Databases = []Database{Postgres, MySQL, MongoDB, SQLite}

// IsDocumentStore reports whether the database has no relational schema.
func (d Database) IsDocumentStore() bool { return d == MongoDB }

func (d Database) String() string { return string(d) }

// Tag returns the lower-cased form used in templates and project files.
func (d Database) Tag() string { return tag(string(d)) }

// ParseDatabase parses a database name case-insensitively.
func ParseDatabase(s string) (Database, error) { return parse("database", s, Databases) }

// ORM is the database access layer.
type ORM string

const (
	Sqlx   ORM = "Sqlx"
	Diesel ORM = "Diesel"
	SeaOrm ORM = "SeaOrm"
	NoORM  ORM = "None"
)

// ORMs lists every supported ORM in prompt order.
var ORMs = []ORM{Sqlx, Diesel, SeaOrm, NoORM}

func (o ORM) String() string { return string(o) }

// Tag returns the lower-cased form used in templates and project files.
func (o ORM) Tag() string { return tag(string(o)) }

// ParseORM parses an ORM name case-insensitively.
func ParseORM(s string) (ORM, error) { return parse("orm", s, ORMs) }

// Infrastructure is an optional add-on service.
type Infrastructure string

const (
	Redis  Infrastructure = "Redis"
	Kafka  Infrastructure = "Kafka"
	Socket Infrastructure = "Socket"
)

// Infrastructures lists every supported add-on in prompt order.
var Infrastructures = []Infrastructure{Redis, Kafka, Socket}

func (i Infrastructure) String() string { return string(i) }

// Tag returns the lower-cased form used in templates and project files.
func (i Infrastructure) Tag() string { return tag(string(i)) }

// ParseInfrastructure parses an add-on name case-insensitively.
func ParseInfrastructure(s string) (Infrastructure, error) {
	return parse("infrastructure", s, Infrastructures)
}

// Frontend is the client framework placed under api/client.
type Frontend string

const (
	React      Frontend = "React"
	Vue        Frontend = "Vue"
	Svelte     Frontend = "Svelte"
	Angular    Frontend = "Angular"
	NoFrontend Frontend = "None"
)

// Frontends lists every supported frontend in prompt order.
var Frontends = []Frontend{React, Vue, Svelte, Angular, NoFrontend}

func (f Frontend) String() string { return string(f) }

// Tag returns the lower-cased form used in templates and project files.
func (f Frontend) Tag() string { return tag(string(f)) }

// ParseFrontend parses a frontend name case-insensitively.
func ParseFrontend(s string) (Frontend, error) { return parse("frontend", s, Frontends) }

// AuthType is the authentication scheme.
type AuthType string

const (
	NoAuth AuthType = "None"
	Basic  AuthType = "Basic"
	JWT    AuthType = "Jwt"
	OAuth2 AuthType = "OAuth2"
)

// AuthTypes lists every supported scheme in prompt order.
var AuthTypes = []AuthType{NoAuth, Basic, JWT, OAuth2}

func (a AuthType) String() string { return string(a) }

// Tag returns the lower-cased form used in templates and project files.
func (a AuthType) Tag() string { return tag(string(a)) }

// ParseAuthType parses an authentication scheme case-insensitively.
func ParseAuthType(s string) (AuthType, error) { return parse("authentication", s, AuthTypes) }

// OAuthProvider is an OAuth2 identity provider.
type OAuthProvider string

const (
	Discord OAuthProvider = "Discord"
	Google  OAuthProvider = "Google"
	Apple   OAuthProvider = "Apple"
	GitHub  OAuthProvider = "GitHub"
)

// OAuthProviders lists every supported provider in prompt order.
var OAuthProviders = []OAuthProvider{Discord, Google, Apple, GitHub}

func (p OAuthProvider) String() string { return string(p) }

// Tag returns the lower-cased form used in templates and project files.
func (p OAuthProvider) Tag() string { return tag(string(p)) }

// ParseOAuthProvider parses a provider name case-insensitively.
func ParseOAuthProvider(s string) (OAuthProvider, error) {
	return parse("oauth provider", s, OAuthProviders)
}

// RouterStrategy selects one of the mutually exclusive api routing variants.
type RouterStrategy string

const (
	Standard         RouterStrategy = "Standard"
	AxumController   RouterStrategy = "AxumController"
	AxumFolderRouter RouterStrategy = "AxumFolderRouter"
)

// RouterStrategies lists every routing variant in prompt order.
var RouterStrategies = []RouterStrategy{Standard, AxumController, AxumFolderRouter}

func (r RouterStrategy) String() string { return string(r) }

// Tag returns the lower-cased form.
func (r RouterStrategy) Tag() string { return tag(string(r)) }

// Dir returns the variant's directory name under api/router_strategies.
func (r RouterStrategy) Dir() string { return snake(string(r)) }

// ParseRouterStrategy parses a routing variant, accepting the display, lower and snake forms.
func ParseRouterStrategy(s string) (RouterStrategy, error) {
	return parse("router strategy", s, RouterStrategies)
}

// APIUI is the interactive API documentation page.
type APIUI string

const (
	Swagger APIUI = "Swagger"
	Scalar  APIUI = "Scalar"
	NoAPIUI APIUI = "None"
)

// APIUIs lists every documentation UI in prompt order.
var APIUIs = []APIUI{Swagger, Scalar, NoAPIUI}

func (u APIUI) String() string { return string(u) }

// Tag returns the lower-cased form used in templates and project files.
func (u APIUI) Tag() string { return tag(string(u)) }

// ParseAPIUI parses a documentation UI name case-insensitively.
func ParseAPIUI(s string) (APIUI, error) { return parse("api ui", s, APIUIs) }

// AIAgent is an assistant whose instruction folder is placed at the project root.
type AIAgent string

const (
	Claude AIAgent = "Claude"
	Gemini AIAgent = "Gemini"
	GPT    AIAgent = "GPT"
)

// AIAgents lists every supported agent in prompt order.
var AIAgents = []AIAgent{Claude, Gemini, GPT}

func (a AIAgent) String() string { return string(a) }

// Tag returns the lower-cased form used in templates and project files.
func (a AIAgent) Tag() string { return tag(string(a)) }

// Folder returns the hidden folder name for the agent, e.g. ".claude".
func (a AIAgent) Folder() string { return "." + a.Tag() }

// ParseAIAgent parses an agent name case-insensitively.
func ParseAIAgent(s string) (AIAgent, error) { return parse("ai agent", s, AIAgents) }

func tag(s string) string { return strings.ToLower(s) }

// snake converts a display name such as "AxumFolderRouter" to "axum_folder_router".
func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

func parse[T ~string](kind, s string, all []T) (T, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	norm = strings.ReplaceAll(norm, "-", "")
	for _, v := range all {
		if tag(string(v)) == norm {
			return v, nil
		}
	}
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = tag(string(v))
	}
	return "", fmt.Errorf("unknown %s %q (want one of %s)", kind, s, strings.Join(names, ", "))
}
