package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PARTSCAT_ROOT.
const EnvPrefix = "PARTSCAT"

// DefaultTitle is the toolbar title when none is configured.
const DefaultTitle = "Parts catalogue"

// DefaultColumns are the column titles of the catalogue.
var DefaultColumns = []string{"MAKE", "MODEL", "YEAR", "ASSEMBLY"}

// LogSettings configures the file logger.
type LogSettings struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Settings application settings
type Settings struct {
	Root       string      `mapstructure:"root" yaml:"root"`
	Extension  string      `mapstructure:"extension" yaml:"extension"`
	Opener     string      `mapstructure:"opener" yaml:"opener"`
	HideHidden bool        `mapstructure:"hide_hidden" yaml:"hide_hidden"`
	Title      string      `mapstructure:"title" yaml:"title"`
	Columns    []string    `mapstructure:"columns" yaml:"columns"`
	Log        LogSettings `mapstructure:"log" yaml:"log"`
}

// RegisterFlags registers the settings flags on the given FlagSet.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("root", "r", "", "Catalogue root directory (make/model/year/document)")
	flags.StringP("ext", "e", "", "Document extension to list, e.g. .pdf")
	flags.String("opener", "", "Command used to open documents (default: platform handler)")
	flags.Bool("hide-hidden", false, "Hide dot-files and hidden directories")
	flags.StringP("config", "c", "", "Path to a YAML config file")
	flags.String("log-file", "", "Log file path")
	flags.String("log-level", "", "Log level: debug, info, warn, error or disabled")
}

// LoadSettingsWithFlags loads settings with optional CLI flag overrides; a nil
// flag set reads only the environment and config files.
// Priority: CLI flags > environment variables > config file > defaults.
func LoadSettingsWithFlags(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()

	v.SetDefault("root", defaultRoot())
	v.SetDefault("extension", ".pdf")
	v.SetDefault("opener", "")
	v.SetDefault("hide_hidden", false)
	v.SetDefault("title", DefaultTitle)
	v.SetDefault("columns", DefaultColumns)
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("log.file", EnvPrefix+"_LOG_FILE")
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL")

	configFile := ""
	if flags != nil {
		_ = v.BindPFlag("root", flags.Lookup("root"))
		_ = v.BindPFlag("extension", flags.Lookup("ext"))
		_ = v.BindPFlag("opener", flags.Lookup("opener"))
		_ = v.BindPFlag("hide_hidden", flags.Lookup("hide-hidden"))
		_ = v.BindPFlag("log.file", flags.Lookup("log-file"))
		_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}
	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG")
	}

	if configFile != "" {
		v.SetConfigFile(expandHomeDir(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "partscat"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if err := settings.normalize(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Settings) normalize() error {
	s.Root = expandHomeDir(strings.TrimSpace(s.Root))
	if s.Root == "" {
		return errors.New("root directory must not be empty")
	}
	if abs, err := filepath.Abs(s.Root); err == nil {
		s.Root = abs
	}

	s.Extension = strings.TrimSpace(s.Extension)
	if s.Extension == "" {
		return errors.New("document extension must not be empty")
	}
	if !strings.HasPrefix(s.Extension, ".") {
		s.Extension = "." + s.Extension
	}

	if len(s.Columns) != len(DefaultColumns) {
		return fmt.Errorf("expected %d column titles, got %d", len(DefaultColumns), len(s.Columns))
	}

	s.Opener = strings.TrimSpace(s.Opener)
	s.Log.File = expandHomeDir(strings.TrimSpace(s.Log.File))
	s.Log.Level = strings.ToLower(strings.TrimSpace(s.Log.Level))
	return nil
}

// CheckRoot reports why the root cannot be listed, or nil for a directory or
// a missing root. Callers only log the result; an unusable root shows as an
// empty catalogue.
func (s *Settings) CheckRoot() error {
	info, err := os.Stat(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("catalogue root %s: %w", s.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("catalogue root %s is not a directory", s.Root)
	}
	return nil
}

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "SmallSimpleManuals"
	}
	return filepath.Join(home, "SmallSimpleManuals")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "partscat.log")
	}
	return filepath.Join(dir, "partscat", "partscat.log")
}

// expandHomeDir expands ~ to the user's home directory
func expandHomeDir(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
