package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	OutputDir        string        `mapstructure:"output_dir"`
	PDFEngine        string        `mapstructure:"pdf_engine"` // native, chrome
	AutosaveInterval time.Duration `mapstructure:"autosave_interval"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFormat        string        `mapstructure:"log_format"` // console, json
	DBPath           string        `mapstructure:"db_path"`
	ChromeTimeout    time.Duration `mapstructure:"chrome_timeout"`
}

// ErrUnknownKey is returned by Set for keys the application does not read
var ErrUnknownKey = errors.New("unknown config key")

var AppConfig *Config

var configDir string

// Initialize loads or creates ~/.quickcv/config.yaml. QUICKCV_HOME moves
// the directory elsewhere.
func Initialize() error {
	_ = godotenv.Load()

	dir := os.Getenv("QUICKCV_HOME")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".quickcv")
	}
	return InitializeAt(dir)
}

// InitializeAt loads or creates config.yaml inside dir
func InitializeAt(dir string) error {
	viper.Reset()
	configDir = dir
	configFile := filepath.Join(dir, "config.yaml")

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	viper.SetDefault("output_dir", ".")
	viper.SetDefault("pdf_engine", "native")
	viper.SetDefault("autosave_interval", "1s")
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("log_format", "console")
	viper.SetDefault("db_path", filepath.Join(dir, "quickcv.db"))
	viper.SetDefault("chrome_timeout", "60s")

	viper.SetEnvPrefix("QUICKCV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "quickcv.db")
	}

	AppConfig = cfg
	return nil
}

// Validate checks values that would otherwise fail late
func (c *Config) Validate() error {
	switch c.PDFEngine {
	case "native", "chrome":
	default:
		return fmt.Errorf("invalid pdf_engine %q: want native or chrome", c.PDFEngine)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want console or json", c.LogFormat)
	}
	if c.AutosaveInterval <= 0 {
		return fmt.Errorf("autosave_interval must be positive, got %s", c.AutosaveInterval)
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# quickcv configuration
# Directory exported documents are written to
output_dir: .

# PDF drawing engine: native or chrome (needs a local Chrome/Chromium)
pdf_engine: native
chrome_timeout: 60s

# Quiet period after the last edit before the resume is saved
autosave_interval: 1s

# Logging: debug, info, warn, error; format console or json
log_level: warn
log_format: console
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Keys lists the settings understood by quickcv
func Keys() []string {
	keys := []string{"output_dir", "pdf_engine", "autosave_interval", "log_level", "log_format", "db_path", "chrome_timeout"}
	sort.Strings(keys)
	return keys
}

// Set validates and persists a configuration value
func Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	known := false
	for _, k := range Keys() {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	switch key {
	case "autosave_interval", "chrome_timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
	case "pdf_engine":
		if value != "native" && value != "chrome" {
			return fmt.Errorf("invalid pdf_engine %q: want native or chrome", value)
		}
	case "log_format":
		if value != "console" && value != "json" {
			return fmt.Errorf("invalid log_format %q: want console or json", value)
		}
	}

	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configDir != "" {
		return filepath.Join(configDir, "config.yaml")
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".quickcv", "config.yaml")
}
