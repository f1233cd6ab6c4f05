package templates

import (
	"fmt"
	"path"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/output"
	"github.com/stackgen/cli/internal/project"
)

// Region names inside a template tree.
const (
	RegionRootProject      = "root_project"
	RegionCommon           = "common"
	RegionCore             = "core"
	RegionApplication      = "application"
	RegionInfrastructure   = "infrastructure"
	RegionAPI              = "api"
	RegionRouterStrategies = "router_strategies"
	RegionFrontend         = "frontend"
	RegionDevOps           = "devops"
	RegionMigrations       = "migrations"
)

// Region describes one subtree the generator reads.
type Region struct {
	Path        string
	Description string

	// Required regions fail generation when absent. Optional regions are
	// either conditional on the configuration or have a fallback.
	Required bool
}

// Regions returns every region in generation order.
func Regions() []Region {
	regions := []Region{
		{RegionRootProject, "Workspace manifest, ignore file, env example, agent folders", true},
		{RegionCommon, "README and structure overview", true},
		{RegionCore, "Domain entities and errors", true},
		{RegionApplication, "Use cases and services", true},
		{RegionInfrastructure, "Database and add-on adapters", true},
		{RegionAPI, "HTTP layer shared by every router strategy", true},
	}
	for _, rs := range project.RouterStrategies {
		regions = append(regions, Region{
			Path:        StrategyRegion(rs),
			Description: fmt.Sprintf("%s router manifest and sources", rs),
			Required:    true,
		})
	}
	for _, fe := range project.Frontends {
		if fe == project.NoFrontend {
			continue
		}
		regions = append(regions, Region{
			Path:        FrontendRegion(fe),
			Description: fmt.Sprintf("%s client (placeholder when absent)", fe),
		})
	}
	return append(regions,
		Region{RegionDevOps, "docker-compose file", false},
		Region{RegionMigrations, "Initial SQL migration", false},
	)
}

// Get returns the region at p.
func Get(p string) (Region, error) {
	for _, r := range Regions() {
		if r.Path == p {
			return r, nil
		}
	}
	return Region{}, fmt.Errorf("unknown template region %q: %w", p, oerrors.ErrNotFound)
}

// StrategyRegion returns the region holding the variant for rs.
func StrategyRegion(rs project.RouterStrategy) string {
	return path.Join(RegionAPI, RegionRouterStrategies, rs.Dir())
}

// FrontendRegion returns the region holding the client for fe.
func FrontendRegion(fe project.Frontend) string {
	return path.Join(RegionFrontend, fe.Tag())
}

// Inspect reports presence and file count of every region in src.
func Inspect(src Source) ([]output.RegionStatus, error) {
	var out []output.RegionStatus
	for _, r := range Regions() {
		st := output.RegionStatus{Region: r.Path}
		sub, ok := src.Descend(r.Path)
		if !ok || !sub.Exists() {
			st.Status = output.StatusMissing
			if !r.Required {
				st.Status = output.StatusOptional
			}
			out = append(out, st)
			continue
		}

		entries, err := sub.Entries()
		if err != nil {
			return nil, err
		}
		excl := &renderConfig{}
		if r.Path == RegionAPI {
			Excluding(RegionRouterStrategies)(excl)
		}
		for _, e := range entries {
			if !e.IsDir && !excl.excluded(e.Path) {
				st.Files++
			}
		}
		st.Status = output.StatusPresent
		out = append(out, st)
	}
	return out, nil
}
