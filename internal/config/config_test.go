package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/paths"
)

// isolate points the settings search path at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit(t *testing.T) {
	isolate(t)
	Init()

	assert.Equal(t, CurrentVersion, viper.GetInt("version"))
	assert.Empty(t, viper.GetStringSlice("defaults.ides"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, coreconfig.DefaultValues(), cfg.InstallDefaults())
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "version: 1\ndefaults:\n  user_profile: bob\n  project_type: BROWNFIELD\n  ides:\n    - vscode\n    - cursor\n")
	Init()

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bob", cfg.Defaults.UserProfile)
	assert.Equal(t, "BROWNFIELD", cfg.Defaults.ProjectType)
	assert.Equal(t, []string{"vscode", "cursor"}, cfg.Defaults.IDEs)
	assert.Equal(t, path, ConfigFileUsed())
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "defaults:\n  user_profile: bob\n")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bob", cfg.Defaults.UserProfile)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "defaults:\n  user_profile: bob\n")
	t.Setenv("AIOS_DEFAULTS_USER_PROFILE", "advanced")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "advanced", cfg.Defaults.UserProfile)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)
	Init()

	_, err := Load("/non/existent/path/config.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound), "got %v", err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unsupported version", "version: 2\n", ErrUnsupportedVersion},
		{"unknown profile", "defaults:\n  user_profile: wizard\n", ErrUnknownValue},
		{"unknown project type", "defaults:\n  project_type: redfield\n", ErrUnknownValue},
		{"blank ide", "defaults:\n  ides: [vscode, \"\"]\n", ErrBlankIDE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			path := writeConfig(t, dir, tt.content)
			Init()

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), "validating config")
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "defaults: [unclosed\n")
	Init()

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestInit_ClearsPreviousState(t *testing.T) {
	dirA := isolate(t)
	fileA := writeConfig(t, dirA, "defaults:\n  user_profile: bob\n")
	Init()
	_, err := Load(fileA)
	require.NoError(t, err)

	dirB := isolate(t)
	writeConfig(t, dirB, "defaults:\n  project_type: BROWNFIELD\n")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Defaults.UserProfile, "state from the first file leaked")
	assert.Equal(t, "BROWNFIELD", cfg.Defaults.ProjectType)
}

func TestInstallDefaults(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, coreconfig.DefaultValues(), nilCfg.InstallDefaults())

	cfg := &Config{Version: 1, Defaults: Defaults{IDEs: []string{"trae"}, AIOSVersion: "4.0.0"}}
	got := cfg.InstallDefaults()
	assert.Equal(t, []string{"trae"}, got.SelectedIDEs)
	assert.Equal(t, "4.0.0", got.AIOSVersion)
	assert.Equal(t, coreconfig.DefaultUserProfile, got.UserProfile)
}
