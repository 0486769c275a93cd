package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]struct {
		content string
		wantErr bool
		check   func(t *testing.T, cfg config)
	}{
		"overrides defaults": {
			content: "format: html\nsample_limit: 10\nworkers: 2\nmax_files: 5\nlog_level: debug\n",
			check:   func(t *testing.T, cfg config) {
				assert.Equal(t, "html", cfg.Format)
				assert.Equal(t, 10, cfg.SampleLimit)
				assert.Equal(t, 2, cfg.Workers)
				assert.Equal(t, 5, cfg.MaxFiles)
				assert.Equal(t, int64(10<<20), cfg.MaxFileSize)
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
		"legacy labels": {
			content: "legacy_snmp_labels: true\n",
			check:   func(t *testing.T, cfg config) {
				assert.True(t, cfg.parserOptions().LegacySNMPLabels)
				assert.Equal(t, "text", cfg.Format)
			},
		},
		"unknown key": {
			content: "formatt: html\n",
			wantErr: true,
		},
		"malformed": {
			content: "workers: [",
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, "cfg.yaml", test.content)

			cfg, err := loadConfig(path)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			test.check(t, cfg)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_ApplyOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.applyOptions(&options{Format: "yaml", Workers: 8, SampleLimit: 3, Debug: true})

	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 3, cfg.SampleLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]func(c *config){
		"zero workers":   func(c *config) { c.Workers = 0 },
		"zero max files": func(c *config) { c.MaxFiles = 0 },
		"zero max size":  func(c *config) { c.MaxFileSize = 0 },
		"negative limit": func(c *config) { c.SampleLimit = -1 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
}
