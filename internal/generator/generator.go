// Package generator sequences the template regions that make up a generated
// project. It renders through a templates.Source into a billy filesystem and
// never reads the clock itself.
package generator

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/output"
	"github.com/stackgen/cli/internal/project"
	"github.com/stackgen/cli/internal/templates"
)

// Destination module names.
const (
	ModuleCore           = "core"
	ModuleApplication    = "application"
	ModuleInfrastructure = "infrastructure"
	ModuleAPI            = "api"
	ClientDir            = "api/client"
	MigrationsDir        = "migrations"
)

// StructuralModules are rendered verbatim from the region of the same name.
var StructuralModules = []string{ModuleCore, ModuleApplication, ModuleInfrastructure}

// rootFiles maps template files to workspace-root destinations.
var rootFiles = []struct{ src, dst string }{
	{"root_project/Cargo.toml.tmpl", "Cargo.toml"},
	{"root_project/.gitignore.tmpl", ".gitignore"},
	{"root_project/.env.example.tmpl", ".env.example"},
	{"common/README.md.tmpl", "README.md"},
	{"common/STRUCTURE.md.tmpl", "STRUCTURE.md"},
}

// Generator renders a project configuration into a destination filesystem.
type Generator struct {
	src      templates.Source
	dst      billy.Filesystem
	renderer *templates.TreeRenderer
	backend  templates.Backend
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer replaces the default tree renderer.
func WithRenderer(r *templates.TreeRenderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithBackend records which backend src came from, for the report.
func WithBackend(b templates.Backend) Option {
	return func(g *Generator) { g.backend = b }
}

// New creates a generator reading from src and writing to the root of dst.
func New(src templates.Source, dst billy.Filesystem, opts ...Option) *Generator {
	g := &Generator{
		src:      src,
		dst:      dst,
		renderer: templates.NewTreeRenderer(nil),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RunOptions carries per-run inputs that must not be derived inside the generator.
type RunOptions struct {
	// Timestamp names migration files. Callers pass time.Now() in production.
	Timestamp time.Time
}

// Report summarizes one generation run.
type Report struct {
	Project        string
	Backend        templates.Backend
	RouterStrategy project.RouterStrategy

	// Files lists every written path relative to the destination root, in write order.
	Files []string

	// Placeholders lists regions that were absent and replaced by a placeholder.
	Placeholders []string
}

func (r *Report) add(paths ...string) {
	r.Files = append(r.Files, paths...)
}

// Generate runs every step in order and stops at the first failure. Files
// written before a failure are left in place.
//
// cfg is checked field by field before anything is written; cross-field
// rules are left to project.NewConfig.
func (g *Generator) Generate(ctx context.Context, cfg *project.Config, run RunOptions) (*Report, error) {
	if err := project.Validate(cfg); err != nil {
		return nil, err
	}
	data := project.NewRenderContext(cfg)
	report := &Report{
		Project:        cfg.Name,
		Backend:        g.backend,
		RouterStrategy: cfg.RouterStrategy,
	}

	steps := []struct {
		name string
		fn   func(context.Context, *project.Config, project.RenderContext, RunOptions, *Report) error
	}{
		{"root", g.rootFiles},
		{"agents", g.agents},
		{"modules", g.structural},
		{"api", g.api},
		{"frontend", g.frontend},
		{"devops", g.devops},
		{"migrations", g.migrations},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		before := len(report.Files)
		if err := step.fn(ctx, cfg, data, run, report); err != nil {
			return report, fmt.Errorf("%s: %w", step.name, err)
		}
		output.StepLogger(step.name).Debug("step complete", "files", len(report.Files)-before)
	}
	return report, nil
}

func (g *Generator) rootFiles(_ context.Context, _ *project.Config, data project.RenderContext, _ RunOptions, r *Report) error {
	for _, f := range rootFiles {
		if err := g.renderer.RenderFile(g.src, f.src, g.dst, f.dst, data); err != nil {
			return err
		}
		r.add(f.dst)
	}
	return nil
}

func (g *Generator) agents(_ context.Context, cfg *project.Config, data project.RenderContext, _ RunOptions, r *Report) error {
	for _, agent := range cfg.AIAgents {
		folder := agent.Folder()
		if err := g.dst.MkdirAll(folder, 0o755); err != nil {
			return oerrors.WrapPath(oerrors.ErrFilesystem, folder, err)
		}
		dst := path.Join(folder, "README.md")
		src := path.Join(templates.RegionRootProject, folder, "README.md.tmpl")
		if err := g.renderer.RenderFile(g.src, src, g.dst, dst, data); err != nil {
			return err
		}
		r.add(dst)
	}
	return nil
}

func (g *Generator) structural(ctx context.Context, _ *project.Config, data project.RenderContext, _ RunOptions, r *Report) error {
	for _, module := range StructuralModules {
		region, err := g.region(module)
		if err != nil {
			return err
		}
		written, err := g.renderer.Render(ctx, region, g.dst, module, data)
		r.add(written...)
		if err != nil {
			return fmt.Errorf("%s: %w", module, err)
		}
	}
	return nil
}

// api renders the shared api region without the variants, then overlays the
// selected variant. The variant manifest fully replaces the shared one.
func (g *Generator) api(ctx context.Context, cfg *project.Config, data project.RenderContext, _ RunOptions, r *Report) error {
	base, err := g.region(templates.RegionAPI)
	if err != nil {
		return err
	}
	written, err := g.renderer.Render(ctx, base, g.dst, ModuleAPI, data,
		templates.Excluding(templates.RegionRouterStrategies))
	r.add(written...)
	if err != nil {
		return err
	}

	variantsDir := path.Join(ModuleAPI, templates.RegionRouterStrategies)
	for _, p := range written {
		if p == variantsDir || strings.HasPrefix(p, variantsDir+"/") {
			return fmt.Errorf("router variant file %s leaked into the shared api pass", p)
		}
	}

	variantPath := templates.StrategyRegion(cfg.RouterStrategy)
	variant, err := g.region(variantPath)
	if err != nil {
		return err
	}

	manifest := path.Join(ModuleAPI, "Cargo.toml")
	if err := g.renderer.RenderFile(variant, "Cargo.toml.tmpl", g.dst, manifest, data); err != nil {
		return err
	}
	r.add(manifest)

	srcDir, ok := variant.Descend("src")
	if !ok || !srcDir.Exists() {
		return oerrors.WrapPath(oerrors.ErrMissingSubtree, path.Join(variantPath, "src"), nil)
	}
	written, err = g.renderer.Render(ctx, srcDir, g.dst, path.Join(ModuleAPI, "src"), data)
	r.add(written...)
	return err
}

// frontend places the client under api/client. An absent frontend region is
// not an error: a placeholder README is written instead.
func (g *Generator) frontend(ctx context.Context, cfg *project.Config, data project.RenderContext, _ RunOptions, r *Report) error {
	if err := g.dst.MkdirAll(ClientDir, 0o755); err != nil {
		return oerrors.WrapPath(oerrors.ErrFilesystem, ClientDir, err)
	}
	if cfg.Frontend == project.NoFrontend {
		return nil
	}

	regionPath := templates.FrontendRegion(cfg.Frontend)
	region, ok := g.src.Descend(regionPath)
	if !ok || !region.Exists() {
		output.Warn("no template for frontend, writing placeholder",
			"frontend", cfg.Frontend.Tag(), "region", regionPath)
		readme := path.Join(ClientDir, "README.md")
		if err := writePlaceholder(g.dst, readme, cfg.Frontend); err != nil {
			return err
		}
		r.add(readme)
		r.Placeholders = append(r.Placeholders, regionPath)
		return nil
	}

	written, err := g.renderer.Render(ctx, region, g.dst, ClientDir, data)
	r.add(written...)
	return err
}

func (g *Generator) devops(_ context.Context, cfg *project.Config, data project.RenderContext, _ RunOptions, r *Report) error {
	if !cfg.DevOps.DockerCompose {
		return nil
	}
	const dst = "docker-compose.yml"
	if err := g.renderer.RenderFile(g.src, "devops/docker-compose.yml.tmpl", g.dst, dst, data); err != nil {
		return err
	}
	r.add(dst)
	return nil
}

func (g *Generator) migrations(_ context.Context, cfg *project.Config, data project.RenderContext, run RunOptions, r *Report) error {
	if cfg.ORM == project.NoORM {
		return nil
	}
	if err := g.dst.MkdirAll(MigrationsDir, 0o755); err != nil {
		return oerrors.WrapPath(oerrors.ErrFilesystem, MigrationsDir, err)
	}

	layout := LayoutFor(cfg.ORM, run.Timestamp)
	if err := g.renderer.RenderFile(g.src, "migrations/init.sql.tmpl", g.dst, layout.Up, data); err != nil {
		return err
	}
	r.add(layout.Up)

	if layout.Down != "" {
		if err := writeRaw(g.dst, layout.Down, []byte(DieselDownSQL)); err != nil {
			return err
		}
		r.add(layout.Down)
	}
	return nil
}

func (g *Generator) region(p string) (templates.Source, error) {
	sub, ok := g.src.Descend(p)
	if !ok || !sub.Exists() {
		return nil, oerrors.WrapPath(oerrors.ErrMissingSubtree, p, nil)
	}
	return sub, nil
}
