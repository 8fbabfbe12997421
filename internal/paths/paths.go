package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/thoreinstein/aios/internal/errors"
)

// AppName is the installer name used for its settings directory.
const AppName = "aios"

// Fixed names inside a target project.
const (
	// CoreDirName is the dotfile directory that holds the core configuration.
	CoreDirName = ".aios-core"

	// CoreConfigFileName is the core configuration document's file name.
	CoreConfigFileName = "core-config.yaml"
)

// ConfigDirEnv overrides the installer settings directory when set.
const ConfigDirEnv = "AIOS_CONFIG_DIR"

// DefaultDirPerm is the permission for newly created project directories.
const DefaultDirPerm = 0o755

// ErrInvalidPath indicates the provided path is malformed or empty.
var ErrInvalidPath = errors.New("invalid path")

// CoreDir returns <targetDir>/.aios-core.
// Returns an empty string for an empty targetDir.
func CoreDir(targetDir string) string {
	if targetDir == "" {
		return ""
	}
	return filepath.Join(targetDir, CoreDirName)
}

// CoreConfigPath returns <targetDir>/.aios-core/core-config.yaml.
// Returns an empty string for an empty targetDir.
func CoreConfigPath(targetDir string) string {
	dir := CoreDir(targetDir)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, CoreConfigFileName)
}

// ResolveTarget cleans targetDir and makes it absolute.
// An empty targetDir resolves to the current working directory.
func ResolveTarget(targetDir string) (string, error) {
	if targetDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolving working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(targetDir)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidPath, "%s: %v", targetDir, err)
	}
	return abs, nil
}

// EnsureDir creates the directory and any necessary parents on fsys.
// If perm is 0, DefaultDirPerm is used. Existing directories are left alone.
func EnsureDir(fsys afero.Fs, path string, perm os.FileMode) error {
	if path == "" {
		return ErrInvalidPath
	}
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return fsys.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the installer settings directory:
// $AIOS_CONFIG_DIR when set, otherwise <ConfigHome>/aios.
func AppConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// AppConfigPath returns <AppConfigDir>/config.yaml.
func AppConfigPath() string {
	return filepath.Join(AppConfigDir(), "config.yaml")
}
