// Package environment writes a project's core configuration.
//
// A [Configurator] reads any core-config.yaml left by an earlier install,
// resolves every option through three tiers (explicit input, then the
// persisted value, then the default) and replaces the file atomically. The
// persisted file is the only state; a Configurator may be reused for any
// number of targets.
package environment
