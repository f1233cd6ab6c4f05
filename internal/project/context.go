package project

import (
	"maps"
	"slices"
)

// Render context keys.
const (
	KeyName           = "name"
	KeyDatabase       = "database"
	KeyORM            = "orm"
	KeyInfrastructure = "infrastructure"
	KeyFrontend       = "frontend"
	KeyHATEOAS        = "hateoas"
	KeyRouterStrategy = "router_strategy"
	KeyRouterDir      = "router_dir"
	KeyAPIUI          = "api_ui"
	KeyAuthType       = "auth_type"
	KeyAuthentication = "authentication"
	KeyOAuthProviders = "oauth_providers"
	KeyDevOps         = "devops"
	KeyDockerCompose  = "docker_compose"
	KeyAIAgents       = "ai_agents"
)

// RenderContext is the immutable key/value mapping handed to every template.
// The zero value is an empty context.
type RenderContext struct {
	data map[string]any
}

// NewRenderContext derives the render context from cfg. It is pure: the same
// configuration always yields an equal context.
func NewRenderContext(cfg *Config) RenderContext {
	data := map[string]any{
		KeyName:           cfg.Name,
		KeyDatabase:       cfg.Database.Tag(),
		KeyORM:            cfg.ORM.Tag(),
		KeyInfrastructure: tags(cfg.Infrastructure),
		KeyFrontend:       cfg.Frontend.Tag(),
		KeyHATEOAS:        cfg.HATEOAS,
		KeyRouterStrategy: cfg.RouterStrategy.String(),
		KeyRouterDir:      cfg.RouterStrategy.Dir(),
		KeyAPIUI:          cfg.APIUI.Tag(),
		KeyAuthType:       cfg.Auth.Type.Tag(),
		KeyAuthentication: cfg.Auth.Type.Tag(),
		KeyDevOps: map[string]any{
			KeyDockerCompose: cfg.DevOps.DockerCompose,
		},
		KeyAIAgents: tags(cfg.AIAgents),
	}
	if cfg.Auth.Type == OAuth2 {
		data[KeyOAuthProviders] = tags(cfg.Auth.Providers)
	}
	return RenderContext{data: data}
}

// Data returns a deep copy of the context suitable for template execution.
func (c RenderContext) Data() map[string]any {
	return cloneMap(c.data)
}

// Lookup returns the value stored under key.
func (c RenderContext) Lookup(key string) (any, bool) {
	v, ok := c.data[key]
	return v, ok
}

// Has reports whether key is present.
func (c RenderContext) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Keys returns the context keys in sorted order.
func (c RenderContext) Keys() []string {
	return slices.Sorted(maps.Keys(c.data))
}

func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		switch tv := v.(type) {
		case map[string]any:
			out[k] = cloneMap(tv)
		case []string:
			out[k] = slices.Clone(tv)
		default:
			out[k] = v
		}
	}
	return out
}
