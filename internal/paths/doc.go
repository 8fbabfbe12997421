// Package paths resolves the locations the installer reads and writes.
//
// Two families of paths exist:
//
//   - Project paths: the core configuration document lives at a fixed
//     location inside the target project, <target>/.aios-core/core-config.yaml.
//   - Installer paths: the installer's own settings file lives under the XDG
//     config home (github.com/adrg/xdg), ~/.config/aios/config.yaml on Linux.
//     AIOS_CONFIG_DIR overrides the directory.
//
// # Project Layout
//
//	<target>/
//	  .aios-core/
//	    core-config.yaml
//
// # Directory Creation
//
// [EnsureDir] creates a directory tree on an afero filesystem and is
// idempotent.
package paths
