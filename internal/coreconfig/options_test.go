package coreconfig

import (
	"testing"

	"github.com/siderolabs/go-pointer"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want Resolved
	}{
		{
			name: "all unset",
			opts: Options{},
			want: Resolved{
				ProjectType:  DefaultProjectType,
				SelectedIDEs: []string{},
				UserProfile:  DefaultUserProfile,
				Language:     DefaultLanguage,
				AIOSVersion:  DefaultAIOSVersion,
			},
		},
		{
			name: "explicit empty values are kept",
			opts: Options{
				UserProfile:  pointer.To(""),
				SelectedIDEs: pointer.To([]string{}),
				Language:     pointer.To(""),
			},
			want: Resolved{
				ProjectType:  DefaultProjectType,
				SelectedIDEs: []string{},
				UserProfile:  "",
				Language:     "",
				AIOSVersion:  DefaultAIOSVersion,
			},
		},
		{
			name: "explicit values",
			opts: Options{
				ProjectType:  pointer.To("BROWNFIELD"),
				SelectedIDEs: pointer.To([]string{"cursor", "cursor"}),
				UserProfile:  pointer.To("bob"),
				Language:     pointer.To("pt"),
				AIOSVersion:  pointer.To("3.1.0"),
			},
			want: Resolved{
				ProjectType:  "BROWNFIELD",
				SelectedIDEs: []string{"cursor"},
				UserProfile:  "bob",
				Language:     "pt",
				AIOSVersion:  "3.1.0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.opts))
		})
	}
}

func TestResolveWith_CallerDefaults(t *testing.T) {
	defaults := DefaultValues().Merge(Defaults{
		UserProfile:  "bob",
		SelectedIDEs: []string{"vscode"},
	})

	got := ResolveWith(Options{Language: pointer.To("es")}, defaults)

	assert.Equal(t, "bob", got.UserProfile)
	assert.Equal(t, []string{"vscode"}, got.SelectedIDEs)
	assert.Equal(t, DefaultProjectType, got.ProjectType)
	assert.Equal(t, "es", got.Language)
}

func TestResolveWith_ZeroDefaults(t *testing.T) {
	got := ResolveWith(Options{}, Defaults{})
	assert.NotNil(t, got.SelectedIDEs)
	assert.Equal(t, DefaultLanguage, got.Language, "language default is not caller-owned")
}

func TestDefaults_MergeIgnoresEmpty(t *testing.T) {
	base := DefaultValues()
	assert.Equal(t, base, base.Merge(Defaults{}))

	merged := base.Merge(Defaults{SelectedIDEs: []string{}})
	assert.Equal(t, []string{}, merged.SelectedIDEs)
}

func TestResolved_OptionsRoundTrip(t *testing.T) {
	r := Resolved{
		ProjectType:  "BROWNFIELD",
		SelectedIDEs: []string{"trae"},
		UserProfile:  "advanced",
		Language:     "es",
		AIOSVersion:  "1.2.3",
	}
	opts := r.Options()

	assert.Equal(t, r, Resolve(opts))

	(*opts.SelectedIDEs)[0] = "changed"
	assert.Equal(t, "trae", r.SelectedIDEs[0], "Options() must copy the IDE list")
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(Options{}))
	assert.Empty(t, Validate(Options{SelectedIDEs: pointer.To([]string{"vscode", "my-ide"})}))
	assert.Len(t, Validate(Options{SelectedIDEs: pointer.To([]string{"", "\t"})}), 2)
}

func TestCatalog(t *testing.T) {
	assert.True(t, KnownLanguage("pt"))
	assert.False(t, KnownLanguage("PT"))
	assert.True(t, KnownIDE("cursor"))
	assert.False(t, KnownIDE("notepad"))
}
