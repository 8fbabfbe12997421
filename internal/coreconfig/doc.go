// Package coreconfig generates and reads the project's core configuration
// document, <target>/.aios-core/core-config.yaml.
//
// The package has two pure halves:
//
//   - [Generate] turns install [Options] into YAML text. Every option maps to
//     a fixed key; unset options take documented defaults. The layout is
//     stable: language is always emitted on the line after user_profile so
//     diffs between installer versions stay small.
//   - [ReadExistingLanguage] and the other PersistedState accessors report a
//     previously persisted value, or absence. Documents written before a key
//     existed are read without error; the key is simply absent.
//
// Neither half performs I/O except [LoadPersisted], which reads a snapshot
// through an afero filesystem.
//
// # Optional Fields
//
// Options fields are pointers. nil means "unset"; a pointer to the zero
// value is an explicit choice:
//
//	coreconfig.Options{Language: pointer.To("pt")}        // explicit pt
//	coreconfig.Options{SelectedIDEs: pointer.To([]string{})} // explicitly no IDEs
//	coreconfig.Options{}                                   // everything defaults
//
// # Language Codes
//
// Language codes are accepted verbatim. [KnownLanguage] reports whether a
// code is one the installer ships translations for, but nothing rejects an
// unknown code.
package coreconfig
