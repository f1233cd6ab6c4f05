package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/stackgen/cli/internal/errors"
)

func TestFile_Config(t *testing.T) {
	f := File{
		Version:        1,
		Name:           "demo",
		Database:       "sqlite",
		ORM:            "diesel",
		Infrastructure: []string{"redis", "Redis"},
		Frontend:       "svelte",
		Authentication: AuthFile{Type: "oauth2", Providers: []string{"github"}},
		RouterStrategy: "axum_folder_router",
		APIUI:          "none",
		HATEOAS:        true,
		DevOps:         DevOpsFile{DockerCompose: true},
		AIAgents:       []string{"gpt"},
	}

	cfg, err := f.Config()
	require.NoError(t, err)

	assert.Equal(t, SQLite, cfg.Database)
	assert.Equal(t, Diesel, cfg.ORM)
	assert.Equal(t, []Infrastructure{Redis}, cfg.Infrastructure)
	assert.Equal(t, Svelte, cfg.Frontend)
	assert.Equal(t, Authentication{Type: OAuth2, Providers: []OAuthProvider{GitHub}}, cfg.Auth)
	assert.Equal(t, AxumFolderRouter, cfg.RouterStrategy)
	assert.Equal(t, NoAPIUI, cfg.APIUI)
	assert.True(t, cfg.HATEOAS)
	assert.Equal(t, []AIAgent{GPT}, cfg.AIAgents)
}

func TestFile_RoundTripDefault(t *testing.T) {
	f := DefaultFile("demo")
	cfg, err := f.Config()
	require.NoError(t, err)

	want := Default("demo")
	assert.Equal(t, want.Database, cfg.Database)
	assert.Equal(t, want.ORM, cfg.ORM)
	assert.Equal(t, want.Auth.Type, cfg.Auth.Type)
	assert.Equal(t, want.RouterStrategy, cfg.RouterStrategy)
	assert.Equal(t, want.DevOps, cfg.DevOps)
}

func TestFile_ConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		file  File
		field string
	}{
		{"bad version", File{Version: 2, Name: "demo"}, "version"},
		{"bad database", File{Name: "demo", Database: "oracle"}, "database"},
		{"bad provider", File{Name: "demo", Authentication: AuthFile{Type: "oauth2", Providers: []string{"okta"}}}, "authentication.providers"},
		{"bad router", File{Name: "demo", RouterStrategy: "nested"}, "router_strategy"},
		{"bad agent", File{Name: "demo", AIAgents: []string{"copilot"}}, "ai_agents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Config()
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrValidation)

			var detail *oerrors.DetailError
			require.ErrorAs(t, err, &detail)
			assert.Equal(t, tt.field, detail.Field)
		})
	}
}

func TestFile_EmptyNameUsesDefault(t *testing.T) {
	cfg, err := File{}.Config()
	require.NoError(t, err)
	assert.Equal(t, DefaultName, cfg.Name)
}
