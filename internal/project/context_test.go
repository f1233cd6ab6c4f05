package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderContext_Keys(t *testing.T) {
	cfg, err := NewConfig("Shop_API",
		WithDatabase(MySQL),
		WithORM(Diesel),
		WithInfrastructure(Redis, Kafka),
		WithFrontend(Vue),
		WithAuth(OAuth2, GitHub, Google),
		WithRouterStrategy(AxumController),
		WithAPIUI(Scalar),
		WithHATEOAS(true),
		WithDockerCompose(false),
		WithAIAgents(Claude),
	)
	require.NoError(t, err)

	data := NewRenderContext(cfg).Data()

	assert.Equal(t, "Shop_API", data["name"])
	assert.Equal(t, "mysql", data["database"])
	assert.Equal(t, "diesel", data["orm"])
	assert.Equal(t, []string{"redis", "kafka"}, data["infrastructure"])
	assert.Equal(t, "vue", data["frontend"])
	assert.Equal(t, true, data["hateoas"])
	assert.Equal(t, "AxumController", data["router_strategy"])
	assert.Equal(t, "axum_controller", data["router_dir"])
	assert.Equal(t, "scalar", data["api_ui"])
	assert.Equal(t, "oauth2", data["auth_type"])
	assert.Equal(t, "oauth2", data["authentication"])
	assert.Equal(t, []string{"github", "google"}, data["oauth_providers"])
	assert.Equal(t, map[string]any{"docker_compose": false}, data["devops"])
	assert.Equal(t, []string{"claude"}, data["ai_agents"])
}

func TestNewRenderContext_ProvidersAbsentUnlessOAuth2(t *testing.T) {
	for _, auth := range []AuthType{NoAuth, Basic, JWT} {
		t.Run(auth.String(), func(t *testing.T) {
			cfg, err := NewConfig("demo", WithAuth(auth))
			require.NoError(t, err)

			rc := NewRenderContext(cfg)
			assert.False(t, rc.Has(KeyOAuthProviders))
			assert.Equal(t, auth.Tag(), rc.Data()[KeyAuthType])
		})
	}
}

func TestNewRenderContext_Deterministic(t *testing.T) {
	cfg, err := NewConfig("demo", WithInfrastructure(Socket, Redis), WithAIAgents(Gemini))
	require.NoError(t, err)

	a := NewRenderContext(cfg)
	b := NewRenderContext(cfg)
	assert.Equal(t, a.Data(), b.Data())
	assert.Equal(t, a.Keys(), b.Keys())
}

func TestRenderContext_DataIsACopy(t *testing.T) {
	cfg, err := NewConfig("demo", WithInfrastructure(Redis))
	require.NoError(t, err)
	rc := NewRenderContext(cfg)

	data := rc.Data()
	data["name"] = "changed"
	data["infrastructure"].([]string)[0] = "kafka"
	data["devops"].(map[string]any)["docker_compose"] = false

	fresh := rc.Data()
	assert.Equal(t, "demo", fresh["name"])
	assert.Equal(t, []string{"redis"}, fresh["infrastructure"])
	assert.Equal(t, true, fresh["devops"].(map[string]any)["docker_compose"])
}

func TestRenderContext_Lookup(t *testing.T) {
	cfg, err := NewConfig("demo")
	require.NoError(t, err)
	rc := NewRenderContext(cfg)

	v, ok := rc.Lookup(KeyRouterStrategy)
	require.True(t, ok)
	assert.Equal(t, "Standard", v)

	_, ok = rc.Lookup("missing")
	assert.False(t, ok)

	var zero RenderContext
	assert.False(t, zero.Has(KeyName))
	assert.Empty(t, zero.Data())
}
