package config

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
)

// Validation errors for settings fields.
var (
	// ErrUnsupportedVersion indicates a settings format this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrUnknownValue indicates a default outside the supported choices.
	ErrUnknownValue = errors.New("unknown value")

	// ErrBlankIDE indicates an empty entry in defaults.ides.
	ErrBlankIDE = errors.New("blank IDE name")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, &FieldError{Field: "version", Value: fmt.Sprint(cfg.Version), Err: ErrUnsupportedVersion})
	}

	if p := cfg.Defaults.UserProfile; p != "" && !coreconfig.KnownUserProfile(p) {
		errs = append(errs, &FieldError{Field: "defaults.user_profile", Value: p, Err: ErrUnknownValue})
	}

	if t := cfg.Defaults.ProjectType; t != "" && !coreconfig.KnownProjectType(t) {
		errs = append(errs, &FieldError{Field: "defaults.project_type", Value: t, Err: ErrUnknownValue})
	}

	for _, id := range cfg.Defaults.IDEs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, &FieldError{Field: "defaults.ides", Value: id, Err: ErrBlankIDE})
		}
	}

	return errs
}

// FieldError reports an invalid settings field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
