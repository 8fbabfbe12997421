// Package config loads the aios installer's own settings.
//
// The settings file lives at $XDG_CONFIG_HOME/aios/config.yaml (or in
// $AIOS_CONFIG_DIR) and supplies the fallback values used when neither the
// command line nor an existing project configuration decides an option:
//
//	version: 1
//	defaults:
//	  user_profile: bob
//	  project_type: BROWNFIELD
//	  ides: [vscode, cursor]
//
// Every key can be overridden from the environment, for example
// AIOS_DEFAULTS_USER_PROFILE=advanced. The UI language is not configurable
// here; it always falls back to English.
package config
