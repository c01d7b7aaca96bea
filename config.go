package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	OutputDir     string  `yaml:"output_dir"`
	DPI           float64 `yaml:"dpi"`
	Padding       float64 `yaml:"padding"`
	LogLevel      string  `yaml:"log_level"`
	CopyPath      bool    `yaml:"copy_path"`
	Parallel      bool    `yaml:"parallel"`
	Confirmations bool    `yaml:"confirmations"`
}

func defaultConfig() *Config {
	return &Config{
		OutputDir:     "",
		DPI:           defaultDPI,
		Padding:       defaultPadding,
		LogLevel:      "info",
		Confirmations: true,
	}
}

// loadConfig layers the defaults, the YAML file, a .env file and FLOWPAINT_*
// environment variables, in that order. An empty path means the rc file in
// the home directory, which may be missing; an explicit path must exist.
func loadConfig(path, envFile string) (*Config, error) {
	config := defaultConfig()

	explicit := path != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, defaultConfigName)
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, err
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = vars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	// the process environment wins over .env, as with godotenv.Load
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := config.applyEnv(lookup); err != nil {
		return nil, err
	}

	config.OutputDir = expandPath(config.OutputDir)
	return config, config.validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, key := range []string{"output_dir", "dpi", "padding", "log_level", "copy_path", "parallel", "confirmations"} {
		value, ok := lookup(envPrefix + strings.ToUpper(key))
		if !ok {
			continue
		}
		if err := c.set(key, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, strings.ToUpper(key), err)
		}
	}
	return nil
}

// set assigns one key from its string form, as found in the environment.
func (c *Config) set(key, value string) error {
	var err error
	switch strings.ToLower(key) {
	case "output_dir", "outputdir":
		c.OutputDir = value
	case "dpi":
		c.DPI, err = strconv.ParseFloat(value, 64)
	case "padding":
		c.Padding, err = strconv.ParseFloat(value, 64)
	case "log_level", "loglevel":
		c.LogLevel = value
	case "copy_path", "copy":
		c.CopyPath, err = strconv.ParseBool(value)
	case "parallel":
		c.Parallel, err = strconv.ParseBool(value)
	case "confirmations", "confirm":
		c.Confirmations, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return err
}

func (c *Config) validate() error {
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %g", c.DPI)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %g", c.Padding)
	}
	if _, ok := logLevelMatches[strings.ToUpper(c.LogLevel)]; !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

func expandPath(value string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// OutputPath places filename in the output directory. The directory is not
// created; exporting into a missing directory fails.
func (c *Config) OutputPath(filename string) string {
	if c.OutputDir == "" {
		return filename
	}
	return filepath.Join(c.OutputDir, filename)
}
