package coreconfig

import (
	"bytes"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/pkg/fileutil"
)

// Persisted document keys read back on re-install.
const (
	KeyLanguage    = "language"
	KeyUserProfile = "user_profile"
	KeyProjectType = "project.type"
	KeyIDESelected = "ide.selected"
	KeyAIOSVersion = "aios_version"
)

// PersistedState is a read-only snapshot of a core-config.yaml written by an
// earlier run. A nil *PersistedState means no document exists; every
// accessor reports absence for it.
type PersistedState struct {
	v *viper.Viper
}

// ParsePersisted parses data as a core-config document.
func ParsePersisted(data []byte) (*PersistedState, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.Wrap(err, "parsing core config")
	}
	return &PersistedState{v: v}, nil
}

// LoadPersisted reads and parses the document at path.
// It returns (nil, nil) when the file does not exist.
func LoadPersisted(fsys afero.Fs, path string) (*PersistedState, error) {
	data, ok, err := fileutil.ReadFileIfExists(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if !ok {
		return nil, nil
	}

	state, err := ParsePersisted(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return state, nil
}

// ReadExistingLanguage returns the persisted language, or false when the
// state is nil or has no usable language key. Documents written before the
// key existed are not an error. The value is returned as-is, without
// checking it against Languages.
func ReadExistingLanguage(state *PersistedState) (string, bool) {
	return state.scalar(KeyLanguage)
}

// ExistingUserProfile returns the persisted user_profile, if any.
func (s *PersistedState) ExistingUserProfile() (string, bool) {
	return s.scalar(KeyUserProfile)
}

// ExistingProjectType returns the persisted project.type, if any.
func (s *PersistedState) ExistingProjectType() (string, bool) {
	return s.scalar(KeyProjectType)
}

// ExistingAIOSVersion returns the persisted aios_version, if any.
func (s *PersistedState) ExistingAIOSVersion() (string, bool) {
	return s.scalar(KeyAIOSVersion)
}

// ExistingIDEs returns the persisted ide.selected sequence, if any.
// An empty sequence is a recorded choice and is reported as present.
// A value that is not a sequence of scalars is reported as absent.
func (s *PersistedState) ExistingIDEs() ([]string, bool) {
	raw, ok := s.get(KeyIDESelected)
	if !ok {
		return nil, false
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	ides := make([]string, 0, len(items))
	for _, item := range items {
		id, err := cast.ToStringE(item)
		if err != nil {
			return nil, false
		}
		ides = append(ides, id)
	}
	return ides, true
}

// Has reports whether key holds a non-null value.
func (s *PersistedState) Has(key string) bool {
	_, ok := s.get(key)
	return ok
}

func (s *PersistedState) get(key string) (any, bool) {
	if s == nil || s.v == nil {
		return nil, false
	}
	raw := s.v.Get(key)
	if raw == nil {
		return nil, false
	}
	return raw, true
}

// scalar returns key's value rendered as a string. Mappings and sequences
// are not scalars and are reported as absent.
func (s *PersistedState) scalar(key string) (string, bool) {
	raw, ok := s.get(key)
	if !ok {
		return "", false
	}
	switch raw.(type) {
	case map[string]any, []any:
		return "", false
	}
	value, err := cast.ToStringE(raw)
	if err != nil {
		return "", false
	}
	return value, true
}
