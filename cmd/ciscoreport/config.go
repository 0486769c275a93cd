package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"

	"ciscoreport/parser"
)

const defaultConfigPath = "~/.config/ciscoreport.yaml"

type config struct {
	Format           string `yaml:"format"`
	SampleLimit      int    `yaml:"sample_limit"`
	LegacySNMPLabels bool   `yaml:"legacy_snmp_labels"`
	Workers          int    `yaml:"workers"`
	MaxFiles         int    `yaml:"max_files"`
	MaxFileSize      int64  `yaml:"max_file_size"`
	LogLevel         string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Format:      "text",
		SampleLimit: parser.DefaultSampleLimit,
		Workers:     runtime.NumCPU(),
		MaxFiles:    100,
		MaxFileSize: 10 << 20,
		LogLevel:    "info",
	}
}

// loadConfig reads path over the defaults. An empty path means the default
// location, which may be absent.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	optional := path == ""
	if optional {
		path = defaultConfigPath
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyOptions lets command-line flags override the file.
func (c *config) applyOptions(opts *options) {
	if opts.Format != "" {
		c.Format = opts.Format
	}
	if opts.Workers > 0 {
		c.Workers = opts.Workers
	}
	if opts.SampleLimit > 0 {
		c.SampleLimit = opts.SampleLimit
	}
	if opts.LegacySNMPLabels {
		c.LegacySNMPLabels = true
	}
	if opts.Debug {
		c.LogLevel = "debug"
	}
}

func (c config) validate() error {
	switch {
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.MaxFiles < 1:
		return fmt.Errorf("max_files must be at least 1, got %d", c.MaxFiles)
	case c.MaxFileSize < 1:
		return fmt.Errorf("max_file_size must be positive, got %d", c.MaxFileSize)
	case c.SampleLimit < 0:
		return fmt.Errorf("sample_limit must not be negative, got %d", c.SampleLimit)
	}
	return nil
}

func (c config) parserOptions() parser.Options {
	return parser.Options{
		SampleLimit:      c.SampleLimit,
		LegacySNMPLabels: c.LegacySNMPLabels,
	}
}
