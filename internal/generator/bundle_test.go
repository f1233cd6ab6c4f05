package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackgen/cli/internal/project"
	"github.com/stackgen/cli/internal/templates"
	"github.com/stackgen/cli/internal/testutil"
)

// The embedded templates must render for every value of every enum.
func TestGenerate_EmbeddedBundleMatrix(t *testing.T) {
	cases := []struct {
		name string
		opts []project.Option
	}{
		{"defaults", nil},
		{"mysql diesel controller", []project.Option{
			project.WithDatabase(project.MySQL), project.WithORM(project.Diesel),
			project.WithRouterStrategy(project.AxumController), project.WithAuth(project.Basic),
			project.WithAPIUI(project.Scalar), project.WithFrontend(project.Svelte),
		}},
		{"sqlite seaorm folder router", []project.Option{
			project.WithDatabase(project.SQLite), project.WithORM(project.SeaOrm),
			project.WithRouterStrategy(project.AxumFolderRouter), project.WithAuth(project.NoAuth),
			project.WithAPIUI(project.NoAPIUI), project.WithHATEOAS(true),
		}},
		{"mongodb oauth2 everything", []project.Option{
			project.WithDatabase(project.MongoDB),
			project.WithInfrastructure(project.Redis, project.Kafka, project.Socket),
			project.WithAuth(project.OAuth2, project.GitHub, project.Google, project.Discord, project.Apple),
			project.WithAIAgents(project.Claude, project.Gemini, project.GPT),
			project.WithFrontend(project.Angular),
		}},
		{"postgres no orm no frontend", []project.Option{
			project.WithORM(project.NoORM), project.WithFrontend(project.NoFrontend),
			project.WithDockerCompose(false), project.WithAuth(project.JWT),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newConfig(t, tc.opts...)
			dst := memfs.New()
			report, err := New(templates.Bundle(), dst).Generate(context.Background(), cfg, RunOptions{Timestamp: fixedTime})
			require.NoError(t, err)

			files := testutil.ReadTree(t, dst)
			assert.Contains(t, files["Cargo.toml"], `members = ["core", "application", "infrastructure", "api"]`)
			assert.Contains(t, files["api/Cargo.toml"], `name = "demo-api"`)
			assert.NotContains(t, files["api/Cargo.toml"], "Replaced by the selected router strategy")
			assert.Contains(t, files, "api/src/main.rs")
			assert.Contains(t, files, "api/scripts/dev.sh")
			for p, body := range files {
				assert.False(t, strings.HasSuffix(p, templates.Marker), "marker left on %s", p)
				if strings.HasSuffix(p, ".rs") || strings.HasSuffix(p, ".toml") {
					assert.NotContains(t, body, "<no value>", p)
				}
			}
			assert.Equal(t, cfg.RouterStrategy, report.RouterStrategy)
		})
	}
}

func TestGenerate_EmbeddedBundleContent(t *testing.T) {
	cfg := newConfig(t,
		project.WithInfrastructure(project.Redis),
		project.WithAuth(project.OAuth2, project.GitHub),
		project.WithRouterStrategy(project.AxumController),
	)
	dst := memfs.New()
	_, err := New(templates.Bundle(), dst).Generate(context.Background(), cfg, RunOptions{Timestamp: fixedTime})
	require.NoError(t, err)
	files := testutil.ReadTree(t, dst)

	assert.Contains(t, files["api/Cargo.toml"], "axum-controller")
	assert.Contains(t, files["api/Cargo.toml"], "oauth2")
	assert.Contains(t, files, "api/src/controllers/user_controller.rs")
	assert.NotContains(t, files, "api/src/routes.rs")
	assert.Contains(t, files[".env.example"], "GITHUB_CLIENT_ID=")
	assert.Contains(t, files[".env.example"], "REDIS_URL=")
	assert.Contains(t, files["infrastructure/src/lib.rs"], "pub mod cache;")
	assert.Contains(t, files["docker-compose.yml"], "redis:")
	assert.Contains(t, files["migrations/1773500966_init.sql"], "CREATE TABLE users")
	assert.Contains(t, files["api/client/package.json"], `"name": "demo-client"`)
	assert.Contains(t, files["application/src/services/user_service.rs"], "use demo_core::")
}
