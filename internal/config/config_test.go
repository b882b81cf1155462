package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CVKIT_DATA", "CVKIT_TEMPLATE", "CVKIT_PORT", "CVKIT_RECENT_COUNT", "CVKIT_VERBOSE"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"recent_count": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.RecentCount)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.DataPath)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{Port: 8080, RecentCount: 3}},
		{name: "zero values", cfg: Config{}},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "port"},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "negative recent", cfg: Config{RecentCount: -2}, wantErr: "recent_count"},
		{name: "missing data file", cfg: Config{DataPath: "/nonexistent/cv.json"}, wantErr: "data file not found"},
		{name: "missing template", cfg: Config{Template: "/nonexistent/cv.tex"}, wantErr: "template file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		DataPath:    "default.json",
		Template:    "default.tex",
		Port:        8080,
		RecentCount: 3,
	}

	partial := Config{
		Port:    9000,
		Verbose: true,
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port)
	assert.True(t, merged.Verbose)
	assert.Equal(t, "default.json", merged.DataPath)
	assert.Equal(t, "default.tex", merged.Template)
	assert.Equal(t, 3, merged.RecentCount)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CVKIT_PORT", "9191")
	t.Setenv("CVKIT_RECENT_COUNT", "not-a-number")
	t.Setenv("CVKIT_VERBOSE", "true")

	cfg := FromEnv()
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, 0, cfg.RecentCount)
	assert.True(t, cfg.Verbose)
}

func TestResolve_Layering(t *testing.T) {
	clearEnv(t)
	t.Setenv("CVKIT_PORT", "9191")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"recent_count": 7}`), 0644))

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port, "env fills what the file leaves out")
	assert.Equal(t, 7, cfg.RecentCount, "file wins over defaults")
}

func TestResolve_DefaultsOnly(t *testing.T) {
	clearEnv(t)

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultRecentCount, cfg.RecentCount)
}

func TestResolve_InvalidFileValues(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"recent_count": -1}`), 0644))

	_, err := Resolve(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recent_count")
}
