package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for stackgen settings.
const envPrefix = "STACKGEN"

// Setting keys.
const (
	KeyConfig     = "config"
	KeyTemplates  = "templates"
	KeyOutput     = "output"
	KeyTimestamps = "log.timestamps"
)

// envName returns the environment variable read for key.
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Loader reads the settings file and the STACKGEN_* environment.
// File and environment are kept apart so resolution can report sources.
type Loader struct {
	v   *viper.Viper
	env *viper.Viper
}

// NewLoader creates a new settings loader.
func NewLoader() *Loader {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	env.AutomaticEnv()

	for _, key := range []string{KeyConfig, KeyTemplates, KeyOutput, KeyTimestamps} {
		_ = env.BindEnv(key)
	}

	return &Loader{v: viper.New(), env: env}
}

// Load loads settings from the given file path.
// If configFile is empty, it uses the default settings file path.
// A missing file yields empty settings.
func (l *Loader) Load(configFile string) (*Settings, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &s, nil
}

// Env returns the environment value bound to key, if set and non-empty.
func (l *Loader) Env(key string) (string, bool) {
	if !l.env.IsSet(key) {
		return "", false
	}
	val := l.env.GetString(key)
	return val, val != ""
}

// ConfigFileExists checks if the settings file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
