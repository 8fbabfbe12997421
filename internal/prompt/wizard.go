package prompt

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/siderolabs/go-pointer"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
)

// Prompter asks the user to choose among values.
type Prompter interface {
	Select(question string, choices []coreconfig.Choice, def string) (string, error)
	MultiSelect(question string, choices []coreconfig.Choice, defaults []string) ([]string, error)
}

// Wizard fills in options the caller left unset.
type Wizard struct {
	prompter Prompter
	logger   *slog.Logger
}

// NewWizard returns a Wizard asking through p.
func NewWizard(p Prompter, logger *slog.Logger) *Wizard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Wizard{prompter: p, logger: logger}
}

// Fill asks for every unset option except the version and returns the
// completed options. opts is not modified. Each question suggests the
// value recorded in state, falling back to defaults.
func (w *Wizard) Fill(opts coreconfig.Options, state *coreconfig.PersistedState, defaults coreconfig.Defaults) (coreconfig.Options, error) {
	out := opts

	if opts.Language == nil {
		def := suggest(coreconfig.ReadExistingLanguage(state))(coreconfig.DefaultLanguage)
		v, err := w.prompter.Select("Select your language:", withCurrent(coreconfig.Languages, def), def)
		if err != nil {
			return opts, errors.Wrap(err, "language")
		}
		out.Language = pointer.To(v)
	}

	if opts.UserProfile == nil {
		def := suggest(state.ExistingUserProfile())(defaults.UserProfile)
		v, err := w.prompter.Select("Select your user profile:", withCurrent(coreconfig.UserProfiles, def), def)
		if err != nil {
			return opts, errors.Wrap(err, "user profile")
		}
		out.UserProfile = pointer.To(v)
	}

	if opts.ProjectType == nil {
		def := suggest(state.ExistingProjectType())(defaults.ProjectType)
		v, err := w.prompter.Select("Select the project type:", withCurrent(coreconfig.ProjectTypes, def), def)
		if err != nil {
			return opts, errors.Wrap(err, "project type")
		}
		out.ProjectType = pointer.To(v)
	}

	if opts.SelectedIDEs == nil {
		def := defaults.SelectedIDEs
		if existing, ok := state.ExistingIDEs(); ok {
			def = existing
		}
		choices := coreconfig.IDEs
		for _, id := range def {
			choices = withCurrent(choices, id)
		}
		v, err := w.prompter.MultiSelect("Select IDEs to configure:", choices, def)
		if err != nil {
			return opts, errors.Wrap(err, "IDEs")
		}
		out.SelectedIDEs = pointer.To(v)
	}

	w.logger.Debug("wizard complete",
		"language", pointer.SafeDeref(out.Language),
		"user_profile", pointer.SafeDeref(out.UserProfile),
		"project_type", pointer.SafeDeref(out.ProjectType),
	)
	return out, nil
}

// suggest returns a function yielding the persisted value when usable and
// def otherwise.
func suggest(existing string, ok bool) func(def string) string {
	return func(def string) string {
		if ok && strings.TrimSpace(existing) != "" {
			return existing
		}
		return def
	}
}

// withCurrent appends value to choices when it is not already offered, so
// an unrecognized persisted value can be kept.
func withCurrent(choices []coreconfig.Choice, value string) []coreconfig.Choice {
	if strings.TrimSpace(value) == "" || indexOf(choices, value) >= 0 {
		return choices
	}
	return append(slices.Clip(choices), coreconfig.Choice{Value: value, Label: value + " (current)"})
}
