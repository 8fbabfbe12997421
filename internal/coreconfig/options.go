package coreconfig

import (
	"fmt"
	"slices"
	"strings"

	"github.com/siderolabs/go-pointer"

	"github.com/thoreinstein/aios/internal/errors"
)

// Documented defaults for unset options.
const (
	DefaultLanguage    = "en"
	DefaultUserProfile = "advanced"
	DefaultProjectType = "GREENFIELD"
	DefaultAIOSVersion = "0.0.0-dev"
)

// ErrInvalidIDE indicates a selected IDE entry is blank.
var ErrInvalidIDE = errors.New("blank IDE name")

// Options are the install-time choices. nil fields are unset.
type Options struct {
	ProjectType  *string
	SelectedIDEs *[]string
	UserProfile  *string
	Language     *string
	AIOSVersion  *string
}

// Resolved holds effective values after defaulting. SelectedIDEs is never nil.
type Resolved struct {
	ProjectType  string
	SelectedIDEs []string
	UserProfile  string
	Language     string
	AIOSVersion  string
}

// Options returns r as fully explicit Options.
func (r Resolved) Options() Options {
	return Options{
		ProjectType:  pointer.To(r.ProjectType),
		SelectedIDEs: pointer.To(slices.Clone(r.SelectedIDEs)),
		UserProfile:  pointer.To(r.UserProfile),
		Language:     pointer.To(r.Language),
		AIOSVersion:  pointer.To(r.AIOSVersion),
	}
}

// Defaults are the caller-owned fallbacks for every option but language,
// whose default is always DefaultLanguage.
type Defaults struct {
	ProjectType  string
	SelectedIDEs []string
	UserProfile  string
	AIOSVersion  string
}

// DefaultValues returns the documented defaults.
func DefaultValues() Defaults {
	return Defaults{
		ProjectType:  DefaultProjectType,
		SelectedIDEs: []string{},
		UserProfile:  DefaultUserProfile,
		AIOSVersion:  DefaultAIOSVersion,
	}
}

// Merge returns d with every non-empty field of over applied on top.
func (d Defaults) Merge(over Defaults) Defaults {
	if over.ProjectType != "" {
		d.ProjectType = over.ProjectType
	}
	if over.SelectedIDEs != nil {
		d.SelectedIDEs = slices.Clone(over.SelectedIDEs)
	}
	if over.UserProfile != "" {
		d.UserProfile = over.UserProfile
	}
	if over.AIOSVersion != "" {
		d.AIOSVersion = over.AIOSVersion
	}
	return d
}

// Resolve applies the documented defaults to every unset field of opts.
func Resolve(opts Options) Resolved {
	return ResolveWith(opts, DefaultValues())
}

// ResolveWith applies defaults to every unset field of opts.
// opts is not modified; the IDE list is copied and de-duplicated.
func ResolveWith(opts Options, defaults Defaults) Resolved {
	ides := defaults.SelectedIDEs
	if opts.SelectedIDEs != nil {
		ides = *opts.SelectedIDEs
	}

	return Resolved{
		ProjectType:  valueOr(opts.ProjectType, defaults.ProjectType),
		SelectedIDEs: uniqueIDEs(ides),
		UserProfile:  valueOr(opts.UserProfile, defaults.UserProfile),
		Language:     valueOr(opts.Language, DefaultLanguage),
		AIOSVersion:  valueOr(opts.AIOSVersion, defaults.AIOSVersion),
	}
}

func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// uniqueIDEs drops repeated entries, keeping first-seen order.
func uniqueIDEs(in []string) []string {
	out := make([]string, 0, len(in))
	for _, id := range in {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// Validate checks opts for contract violations.
// Returns nil if valid, or a slice of validation errors.
func Validate(opts Options) []error {
	var errs []error

	if opts.SelectedIDEs != nil {
		for i, id := range *opts.SelectedIDEs {
			if strings.TrimSpace(id) == "" {
				errs = append(errs, &IDEError{Index: i, Value: id, Err: ErrInvalidIDE})
			}
		}
	}

	return errs
}

// IDEError reports a problem with one entry of SelectedIDEs.
type IDEError struct {
	Index int
	Value string
	Err   error
}

func (e *IDEError) Error() string {
	return fmt.Sprintf("ide.selected[%d] %q: %v", e.Index, e.Value, e.Err)
}

func (e *IDEError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates the errors returned by Validate.
// It matches errors.ErrInvalidOptions.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return errors.ErrInvalidOptions.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return errors.ErrInvalidOptions
}
