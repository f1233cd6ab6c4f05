package config

import (
	"strconv"

	"github.com/stackgen/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one setting after precedence has been applied.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// Flags holds the command-line values that take part in resolution.
// Empty strings and nil mean the flag was not given.
type Flags struct {
	Config     string
	Templates  string
	Output     string
	Timestamps *bool
}

// Resolved contains every setting resolved using
// (1) flag, (2) STACKGEN_* env, (3) settings file, (4) default.
type Resolved struct {
	Config     ResolvedValue
	Templates  ResolvedValue
	Output     ResolvedValue
	Timestamps ResolvedValue
}

// TimestampsEnabled reports the resolved timestamp preference.
// Unparseable values fall back to true.
func (r Resolved) TimestampsEnabled() bool {
	b, err := strconv.ParseBool(r.Timestamps.Value)
	if err != nil {
		return true
	}
	return b
}

// Values returns the resolved values in a stable order.
func (r Resolved) Values() []ResolvedValue {
	return []ResolvedValue{r.Config, r.Templates, r.Output, r.Timestamps}
}

// ResolveConfigPath resolves the settings file path using precedence:
// (1) --config flag, (2) STACKGEN_CONFIG env, (3) ~/.stackgen/config.yaml default
func ResolveConfigPath(l *Loader, flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	env, _ := l.Env(KeyConfig)
	return resolve(KeyConfig, flagValue, env, "", paths.ConfigFile), nil
}

// ResolveAll loads the settings file selected by flags and resolves every
// setting against it.
func ResolveAll(l *Loader, flags Flags) (Resolved, *Settings, error) {
	cfgPath, err := ResolveConfigPath(l, flags.Config)
	if err != nil {
		return Resolved{}, nil, err
	}

	settings, err := l.Load(cfgPath.Value)
	if err != nil {
		return Resolved{}, nil, err
	}

	res := Resolved{Config: cfgPath}

	env, _ := l.Env(KeyTemplates)
	res.Templates = resolve(KeyTemplates, flags.Templates, env, settings.Templates, "")

	env, _ = l.Env(KeyOutput)
	res.Output = resolve(KeyOutput, flags.Output, env, settings.Output, "")

	env, _ = l.Env(KeyTimestamps)
	res.Timestamps = resolve(KeyTimestamps, boolString(flags.Timestamps), env,
		boolString(settings.Log.Timestamps), strconv.FormatBool(*DefaultSettings().Log.Timestamps))

	return res, settings, nil
}

func resolve(key, flag, env, file, def string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flag},
		{SourceEnv, env},
		{SourceConfig, file},
		{SourceDefault, def},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	if result.Source == "" {
		result.Source = SourceDefault
	}
	return result
}

func boolString(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
