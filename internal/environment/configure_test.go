package environment

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/siderolabs/go-pointer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/logging"
	"github.com/thoreinstein/aios/internal/paths"
)

const target = "/work/project"

type written struct {
	Language    string `yaml:"language"`
	UserProfile string `yaml:"user_profile"`
	Project     struct {
		Type string `yaml:"type"`
	} `yaml:"project"`
	IDE struct {
		Selected []string `yaml:"selected"`
	} `yaml:"ide"`
	AIOSVersion string `yaml:"aios_version"`
}

func newTestConfigurator(t *testing.T, fsys afero.Fs, opts ...Option) *Configurator {
	t.Helper()
	return New(append([]Option{WithFs(fsys), WithLogger(logging.ForTest(t))}, opts...)...)
}

func readWritten(t *testing.T, fsys afero.Fs) written {
	t.Helper()
	data, err := afero.ReadFile(fsys, paths.CoreConfigPath(target))
	require.NoError(t, err)

	var doc written
	require.NoError(t, yaml.Unmarshal(data, &doc))
	return doc
}

func seed(t *testing.T, fsys afero.Fs, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(paths.CoreDir(target), 0o755))
	require.NoError(t, afero.WriteFile(fsys, paths.CoreConfigPath(target), []byte(content), 0o644))
}

func TestConfigure_ExplicitLanguage(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := newTestConfigurator(t, fsys)

	res, err := c.Configure(target, coreconfig.Options{
		SelectedIDEs: pointer.To([]string{"vscode"}),
		ProjectType:  pointer.To("GREENFIELD"),
		Language:     pointer.To("pt"),
	})
	require.NoError(t, err)

	assert.True(t, res.CoreConfigCreated)
	assert.False(t, res.Replaced)
	assert.Equal(t, filepath.Join(target, ".aios-core", "core-config.yaml"), res.ConfigPath)
	assert.Equal(t, "pt", res.Language)
	assert.Equal(t, SourceExplicit, res.Sources[FieldLanguage])

	doc := readWritten(t, fsys)
	assert.Equal(t, "pt", doc.Language)
	assert.Equal(t, []string{"vscode"}, doc.IDE.Selected)
	assert.Equal(t, "GREENFIELD", doc.Project.Type)
}

func TestConfigure_DefaultsToEn(t *testing.T) {
	fsys := afero.NewMemMapFs()

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{
		SelectedIDEs: pointer.To([]string{"vscode"}),
		ProjectType:  pointer.To("GREENFIELD"),
	})
	require.NoError(t, err)

	assert.True(t, res.CoreConfigCreated)
	assert.Equal(t, SourceDefault, res.Sources[FieldLanguage])
	assert.Equal(t, "en", readWritten(t, fsys).Language)
}

func TestConfigure_PreservesExistingLanguage(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "user_profile: advanced\nlanguage: es\n")

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{
		SelectedIDEs: pointer.To([]string{"vscode"}),
		ProjectType:  pointer.To("GREENFIELD"),
	})
	require.NoError(t, err)

	assert.True(t, res.Replaced)
	assert.Equal(t, "es", res.Language)
	assert.Equal(t, SourceExisting, res.Sources[FieldLanguage])

	doc := readWritten(t, fsys)
	assert.Equal(t, "es", doc.Language)
	assert.Equal(t, "advanced", doc.UserProfile)
}

func TestConfigure_ExplicitOverridesExisting(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "user_profile: bob\nlanguage: es\nproject:\n  type: BROWNFIELD\n")

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{
		Language:    pointer.To("pt"),
		UserProfile: pointer.To("advanced"),
	})
	require.NoError(t, err)

	doc := readWritten(t, fsys)
	assert.Equal(t, "pt", doc.Language)
	assert.Equal(t, "advanced", doc.UserProfile)
	assert.Equal(t, "BROWNFIELD", doc.Project.Type, "unset project type keeps the persisted value")
	assert.Equal(t, SourceExisting, res.Sources[FieldProjectType])
}

func TestConfigure_Idempotent(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := newTestConfigurator(t, fsys)

	_, err := c.Configure(target, coreconfig.Options{
		Language:     pointer.To("pt"),
		UserProfile:  pointer.To("bob"),
		ProjectType:  pointer.To("BROWNFIELD"),
		SelectedIDEs: pointer.To([]string{"cursor", "vscode"}),
		AIOSVersion:  pointer.To("3.0.0"),
	})
	require.NoError(t, err)
	first, err := afero.ReadFile(fsys, paths.CoreConfigPath(target))
	require.NoError(t, err)

	for range 3 {
		res, err := c.Configure(target, coreconfig.Options{})
		require.NoError(t, err)
		assert.Equal(t, "pt", res.Language)
		for field, src := range res.Sources {
			assert.Equal(t, SourceExisting, src, "field %s", field)
		}
	}

	again, err := afero.ReadFile(fsys, paths.CoreConfigPath(target))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(again))
}

func TestConfigure_LegacyDocumentWithoutLanguage(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "user_profile: bob\nproject:\n  type: BROWNFIELD\nide:\n  selected:\n    - windsurf\n")

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{})
	require.NoError(t, err)

	assert.Equal(t, "en", res.Language)
	assert.Equal(t, SourceDefault, res.Sources[FieldLanguage])

	doc := readWritten(t, fsys)
	assert.Equal(t, "en", doc.Language)
	assert.Equal(t, "bob", doc.UserProfile)
	assert.Equal(t, "BROWNFIELD", doc.Project.Type)
	assert.Equal(t, []string{"windsurf"}, doc.IDE.Selected)
}

func TestConfigure_BlankPersistedValuesFallThrough(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "user_profile: \"  \"\nlanguage: \"\"\nide:\n  selected: [\"\", vscode]\n")

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{})
	require.NoError(t, err)

	assert.Equal(t, SourceDefault, res.Sources[FieldLanguage])
	assert.Equal(t, SourceDefault, res.Sources[FieldUserProfile])
	assert.Equal(t, SourceDefault, res.Sources[FieldIDEs])

	doc := readWritten(t, fsys)
	assert.Equal(t, "en", doc.Language)
	assert.Equal(t, coreconfig.DefaultUserProfile, doc.UserProfile)
	assert.Empty(t, doc.IDE.Selected)
}

func TestConfigure_PersistedEmptyIDEListIsKept(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "ide:\n  selected: []\n")

	c := newTestConfigurator(t, fsys, WithDefaults(coreconfig.Defaults{SelectedIDEs: []string{"vscode"}}))
	res, err := c.Configure(target, coreconfig.Options{})
	require.NoError(t, err)

	assert.Equal(t, SourceExisting, res.Sources[FieldIDEs])
	assert.Empty(t, readWritten(t, fsys).IDE.Selected)
}

func TestConfigure_UnparseableExistingIsReplaced(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "language: [unclosed\n")

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{})
	require.NoError(t, err)

	assert.True(t, res.Replaced)
	assert.Equal(t, "en", readWritten(t, fsys).Language)
}

func TestConfigure_UnknownPersistedLanguageKept(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "language: klingon\n")

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{})
	require.NoError(t, err)
	assert.Equal(t, "klingon", res.Language)
}

func TestConfigure_CallerDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	c := newTestConfigurator(t, fsys, WithDefaults(coreconfig.Defaults{
		UserProfile: "bob",
		AIOSVersion: "9.9.9",
	}))

	_, err := c.Configure(target, coreconfig.Options{})
	require.NoError(t, err)

	doc := readWritten(t, fsys)
	assert.Equal(t, "bob", doc.UserProfile)
	assert.Equal(t, "9.9.9", doc.AIOSVersion)
	assert.Equal(t, coreconfig.DefaultProjectType, doc.Project.Type)
	assert.Equal(t, "en", doc.Language)
}

func TestConfigure_UnwritableTarget(t *testing.T) {
	base := afero.NewMemMapFs()
	fsys := afero.NewReadOnlyFs(base)

	res, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{Language: pointer.To("pt")})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, fs.ErrPermission), "cause should be preserved: %v", err)

	exists, statErr := afero.Exists(base, paths.CoreConfigPath(target))
	require.NoError(t, statErr)
	assert.False(t, exists)
}

func TestConfigure_UnwritableExistingFileUnchanged(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll(paths.CoreDir(target), 0o755))
	require.NoError(t, afero.WriteFile(base, paths.CoreConfigPath(target), []byte("language: es\n"), 0o644))

	_, err := newTestConfigurator(t, afero.NewReadOnlyFs(base)).Configure(target, coreconfig.Options{})
	require.Error(t, err)

	data, readErr := afero.ReadFile(base, paths.CoreConfigPath(target))
	require.NoError(t, readErr)
	assert.Equal(t, "language: es\n", string(data))
}

func TestConfigure_InvalidOptions(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := newTestConfigurator(t, fsys).Configure(target, coreconfig.Options{
		SelectedIDEs: pointer.To([]string{" "}),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidOptions))

	exists, _ := afero.DirExists(fsys, paths.CoreDir(target))
	assert.False(t, exists, "nothing should be created for invalid options")
}

func TestConfigure_EmptyTarget(t *testing.T) {
	_, err := newTestConfigurator(t, afero.NewMemMapFs()).Configure("", coreconfig.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, paths.ErrInvalidPath))
}

func TestConfigure_OSFilesystem(t *testing.T) {
	dir := t.TempDir()

	res, err := Configure(dir, coreconfig.Options{Language: pointer.To("es")})
	require.NoError(t, err)

	info, err := os.Stat(res.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(ConfigFilePerm), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(res.ConfigPath))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should remain")
}
