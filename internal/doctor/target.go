package doctor

import (
	"io/fs"
	"sync"

	"github.com/spf13/afero"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/paths"
	"github.com/thoreinstein/aios/pkg/fileutil"
)

// Target is the project under diagnosis. Its core config is read once and
// shared by every check.
type Target struct {
	Dir  string
	Path string

	fs   afero.Fs
	once sync.Once

	info     fs.FileInfo
	exists   bool
	readErr  error
	state    *coreconfig.PersistedState
	parseErr error
}

// NewTarget returns a Target for the project at dir.
func NewTarget(fsys afero.Fs, dir string) *Target {
	return &Target{
		Dir:  dir,
		Path: paths.CoreConfigPath(dir),
		fs:   fsys,
	}
}

func (t *Target) load() {
	t.once.Do(func() {
		info, err := t.fs.Stat(t.Path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				t.readErr = err
			}
			return
		}
		t.info = info
		t.exists = true

		data, err := fileutil.ReadFileWithLimit(t.fs, t.Path)
		if err != nil {
			t.readErr = err
			return
		}
		t.state, t.parseErr = coreconfig.ParsePersisted(data)
	})
}

// usable loads the document and reports whether it parsed.
func (t *Target) usable() bool {
	t.load()
	return t.exists && t.readErr == nil && t.parseErr == nil
}

// Checks returns the standard core-config checks for t, in run order.
func (t *Target) Checks() []Check {
	return []Check{
		&ExistsCheck{target: t},
		&ParseCheck{target: t},
		&PermissionCheck{target: t},
		&RequiredKeysCheck{target: t},
		&LanguagePresentCheck{target: t},
		&LanguageKnownCheck{target: t},
		&IDEsKnownCheck{target: t},
	}
}
