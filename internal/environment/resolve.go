package environment

import (
	"strings"

	"github.com/siderolabs/go-pointer"

	"github.com/thoreinstein/aios/internal/coreconfig"
)

// resolveField picks explicit, then existing (when found), then def.
func resolveField[T any](explicit *T, existing T, found bool, def T) (T, Source) {
	if explicit != nil {
		return *explicit, SourceExplicit
	}
	if found {
		return existing, SourceExisting
	}
	return def, SourceDefault
}

// nonBlank discards persisted scalars that are empty after trimming.
func nonBlank(value string, found bool) (string, bool) {
	if !found || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// noBlankEntries discards a persisted IDE list holding blank names, which
// Generate would reject.
func noBlankEntries(ides []string, found bool) ([]string, bool) {
	if !found {
		return nil, false
	}
	for _, id := range ides {
		if strings.TrimSpace(id) == "" {
			return nil, false
		}
	}
	return ides, true
}

// resolveOptions merges opts with state and defaults into fully explicit
// options for the generator.
func resolveOptions(opts coreconfig.Options, state *coreconfig.PersistedState, defaults coreconfig.Defaults) (coreconfig.Options, map[string]Source) {
	sources := make(map[string]Source, 5)

	existingLang, ok := nonBlank(coreconfig.ReadExistingLanguage(state))
	language, src := resolveField(opts.Language, existingLang, ok, coreconfig.DefaultLanguage)
	sources[FieldLanguage] = src

	existingProfile, ok := nonBlank(state.ExistingUserProfile())
	profile, src := resolveField(opts.UserProfile, existingProfile, ok, defaults.UserProfile)
	sources[FieldUserProfile] = src

	existingType, ok := nonBlank(state.ExistingProjectType())
	projectType, src := resolveField(opts.ProjectType, existingType, ok, defaults.ProjectType)
	sources[FieldProjectType] = src

	existingIDEs, ok := noBlankEntries(state.ExistingIDEs())
	ides, src := resolveField(opts.SelectedIDEs, existingIDEs, ok, defaults.SelectedIDEs)
	sources[FieldIDEs] = src

	existingVersion, ok := nonBlank(state.ExistingAIOSVersion())
	version, src := resolveField(opts.AIOSVersion, existingVersion, ok, defaults.AIOSVersion)
	sources[FieldAIOSVersion] = src

	return coreconfig.Options{
		ProjectType:  pointer.To(projectType),
		SelectedIDEs: pointer.To(ides),
		UserProfile:  pointer.To(profile),
		Language:     pointer.To(language),
		AIOSVersion:  pointer.To(version),
	}, sources
}
