// Package config resolves hostsnap settings from defaults, an
// optional hostsnap.yml, and HOSTSNAP_* environment overrides,
// in that order. A .env file in the working directory is honored too.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"hostsnap/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no
// --config flag is given. Its absence is not an error.
const DefaultConfigFile = "hostsnap.yml"

var configLogger = logger.PackageLogger("CONFIG", "⚙️ CONFIG")

// Config holds every knob a snapshot run reads.
type Config struct {
	// ScanDir is the root the file statistics walk. Created if absent.
	ScanDir string `yaml:"scan_dir"`
	// Template is the HTML template path. A missing template aborts the run.
	Template string `yaml:"template"`
	// Output is the rendered report path, overwritten on every run.
	Output string `yaml:"output"`
	// TopProcesses is how many ranked processes the report shows.
	TopProcesses int `yaml:"top_processes"`
	// LargestFiles is how many ranked files the report shows.
	LargestFiles int `yaml:"largest_files"`
	// LogLevel is one of debug, info, warn, error, fatal.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration, matching the paths the
// shipped template and sample directory use.
func Default() Config {
	return Config{
		ScanDir:      "sample_data",
		Template:     "template.html",
		Output:       "index.html",
		TopProcesses: 3,
		LargestFiles: 10,
		LogLevel:     "info",
	}
}

// Load resolves the effective configuration. The yaml file at path is
// optional when it is the default location; an explicitly requested
// file that cannot be read is an error. Environment variables win
// over the file, flags (applied by the commands) win over both.
func Load(path string) (Config, error) {
	// No secrets in this project, but HOSTSNAP_* overrides tend to
	// live in .env files during development.
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid config format in %s: %w", path, err)
		}
		configLogger.Debug("Loaded configuration from %s", path)
	case os.IsNotExist(err) && !explicit:
		configLogger.Debug("No %s found, using defaults", DefaultConfigFile)
	default:
		return Config{}, fmt.Errorf("config file not readable: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations no run could satisfy.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ScanDir) == "" {
		return fmt.Errorf("scan_dir must not be empty")
	}
	if strings.TrimSpace(c.Template) == "" {
		return fmt.Errorf("template must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.TopProcesses <= 0 {
		return fmt.Errorf("top_processes must be > 0, got %d", c.TopProcesses)
	}
	if c.LargestFiles <= 0 {
		return fmt.Errorf("largest_files must be > 0, got %d", c.LargestFiles)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.ScanDir = env("HOSTSNAP_SCAN_DIR", cfg.ScanDir)
	cfg.Template = env("HOSTSNAP_TEMPLATE", cfg.Template)
	cfg.Output = env("HOSTSNAP_OUTPUT", cfg.Output)
	cfg.TopProcesses = envInt("HOSTSNAP_TOP_PROCESSES", cfg.TopProcesses)
	cfg.LargestFiles = envInt("HOSTSNAP_LARGEST_FILES", cfg.LargestFiles)
	cfg.LogLevel = strings.ToLower(env("HOSTSNAP_LOG_LEVEL", cfg.LogLevel))
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		configLogger.Warn("Ignoring %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
