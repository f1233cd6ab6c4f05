// Package config provides configuration loading and management.
package config

// LogSettings contains logging-related settings.
type LogSettings struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Settings represents the stackgen tool settings.
// Loaded from ~/.stackgen/config.yaml.
type Settings struct {
	// Templates is a directory tree used instead of the embedded bundle.
	// Env: STACKGEN_TEMPLATES
	Templates string `mapstructure:"templates" yaml:"templates,omitempty"`

	// Output is the parent directory for generated projects.
	// Env: STACKGEN_OUTPUT
	Output string `mapstructure:"output" yaml:"output,omitempty"`

	// Log contains logging-related settings.
	Log LogSettings `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultSettings returns Settings with all default values populated.
func DefaultSettings() *Settings {
	timestamps := true
	return &Settings{
		Log: LogSettings{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy with unset fields filled from DefaultSettings.
func (s *Settings) WithDefaults() *Settings {
	out := *s
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = DefaultSettings().Log.Timestamps
	}
	return &out
}
