package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/project"
)

// Project file keys accepted by --set.
const (
	keyVersion        = "version"
	keyName           = "name"
	keyDatabase       = "database"
	keyORM            = "orm"
	keyInfrastructure = "infrastructure"
	keyFrontend       = "frontend"
	keyAuthType       = "authentication.type"
	keyAuthProviders  = "authentication.providers"
	keyRouterStrategy = "router_strategy"
	keyAPIUI          = "api_ui"
	keyHATEOAS        = "hateoas"
	keyDockerCompose  = "devops.docker_compose"
	keyAIAgents       = "ai_agents"
)

var (
	listKeys = map[string]bool{keyInfrastructure: true, keyAuthProviders: true, keyAIAgents: true}
	boolKeys = map[string]bool{keyHATEOAS: true, keyDockerCompose: true}
)

// projectDefaults flattens project.DefaultFile into viper keys.
func projectDefaults() map[string]any {
	f := project.DefaultFile(project.DefaultName)
	return map[string]any{
		keyVersion:        f.Version,
		keyName:           f.Name,
		keyDatabase:       f.Database,
		keyORM:            f.ORM,
		keyInfrastructure: f.Infrastructure,
		keyFrontend:       f.Frontend,
		keyAuthType:       f.Authentication.Type,
		keyAuthProviders:  f.Authentication.Providers,
		keyRouterStrategy: f.RouterStrategy,
		keyAPIUI:          f.APIUI,
		keyHATEOAS:        f.HATEOAS,
		keyDockerCompose:  f.DevOps.DockerCompose,
		keyAIAgents:       f.AIAgents,
	}
}

// ProjectKeys lists every key accepted by --set, sorted.
func ProjectKeys() []string {
	defaults := projectDefaults()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadProject reads a project file. Keys absent from the file take their
// value from project.DefaultFile. An empty path loads the defaults alone.
// Overrides are key=value pairs applied after the file; list keys take
// comma-separated values.
func LoadProject(path string, overrides ...string) (*project.File, error) {
	v := viper.New()
	for k, val := range projectDefaults() {
		v.SetDefault(k, val)
	}

	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return nil, fmt.Errorf("expanding project path: %w", err)
		}
		v.SetConfigFile(expanded)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, oerrors.NewNotFoundError("project file not found", expanded,
					"Run 'stackgen project init' to create one.")
			}
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("reading project file: %v", err), expanded, "", "")
		}
	}

	for _, o := range overrides {
		if err := applyOverride(v, o); err != nil {
			return nil, err
		}
	}

	var f project.File
	if err := v.UnmarshalExact(&f); err != nil {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("decoding project file: %v", err), path, "",
			"Run 'stackgen project vet' for field-level errors.")
	}
	return &f, nil
}

func applyOverride(v *viper.Viper, o string) error {
	key, val, ok := strings.Cut(o, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	if !ok || key == "" {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid override %q", o), "", "",
			"Use --set key=value.")
	}
	if _, known := projectDefaults()[key]; !known {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown project key %q", key), "", key,
			"Valid keys: "+strings.Join(ProjectKeys(), ", "))
	}

	val = strings.TrimSpace(val)
	switch {
	case listKeys[key]:
		items := []string{}
		for _, item := range strings.Split(val, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		v.Set(key, items)
	case boolKeys[key]:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid boolean %q", val), "", key, "")
		}
		v.Set(key, b)
	case key == keyVersion:
		n, err := strconv.Atoi(val)
		if err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid version %q", val), "", key, "")
		}
		v.Set(key, n)
	default:
		v.Set(key, val)
	}
	return nil
}

// WriteProject writes f as YAML to path. An existing file is only replaced
// when force is set.
func WriteProject(path string, f project.File, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "project file already exists",
			Location: path,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding project file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding project file: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return oerrors.WrapPath(oerrors.ErrFilesystem, path, err)
	}
	return nil
}
