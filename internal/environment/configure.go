package environment

import (
	"log/slog"

	"github.com/spf13/afero"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/paths"
	"github.com/thoreinstein/aios/pkg/fileutil"
)

// ConfigFilePerm is the permission of the written core-config.yaml.
const ConfigFilePerm = 0o644

// Configurator writes <target>/.aios-core/core-config.yaml.
type Configurator struct {
	fs       afero.Fs
	logger   *slog.Logger
	defaults coreconfig.Defaults
}

// Option configures a Configurator.
type Option func(*Configurator)

// WithFs sets the filesystem. The default is the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(c *Configurator) {
		c.fs = fsys
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Configurator) {
		c.logger = logger
	}
}

// WithDefaults overrides the tier-three fallbacks. Empty fields keep the
// documented defaults. The language default cannot be changed.
func WithDefaults(d coreconfig.Defaults) Option {
	return func(c *Configurator) {
		c.defaults = coreconfig.DefaultValues().Merge(d)
	}
}

// New returns a Configurator.
func New(opts ...Option) *Configurator {
	c := &Configurator{
		defaults: coreconfig.DefaultValues(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Configure resolves opts against any existing document in targetDir and
// writes the result. Explicit options always win; unset options keep the
// previously persisted value, or fall back to the defaults.
//
// Failing to create the directory or write the file is returned with its
// cause preserved, so errors.Is(err, fs.ErrPermission) works for an
// unwritable target. Nothing is written to any other location.
func (c *Configurator) Configure(targetDir string, opts coreconfig.Options) (*Result, error) {
	if targetDir == "" {
		return nil, errors.Wrap(paths.ErrInvalidPath, "target directory is empty")
	}
	if errs := coreconfig.Validate(opts); len(errs) > 0 {
		return nil, &coreconfig.ValidationError{Errs: errs}
	}

	coreDir := paths.CoreDir(targetDir)
	configPath := paths.CoreConfigPath(targetDir)
	logger := c.logger.With("path", configPath)

	state, existed := c.loadExisting(logger, configPath)

	resolved, sources := resolveOptions(opts, state, c.defaults)
	for _, field := range []string{FieldLanguage, FieldUserProfile, FieldProjectType, FieldIDEs, FieldAIOSVersion} {
		logger.Debug("resolved option", "field", field, "source", sources[field])
	}
	if lang := *resolved.Language; !coreconfig.KnownLanguage(lang) {
		logger.Debug("unrecognized language kept as-is", "language", lang)
	}

	content, err := coreconfig.Generate(resolved)
	if err != nil {
		return nil, errors.Wrap(err, "generating core config")
	}

	if err := paths.EnsureDir(c.fs, coreDir, paths.DefaultDirPerm); err != nil {
		return nil, errors.Wrapf(err, "creating %s", coreDir)
	}
	if err := fileutil.AtomicWriteFile(c.fs, configPath, []byte(content), ConfigFilePerm); err != nil {
		return nil, errors.Wrapf(err, "writing %s", configPath)
	}

	logger.Info("wrote core config", "replaced", existed)

	return &Result{
		CoreConfigCreated: true,
		ConfigPath:        configPath,
		Replaced:          existed,
		Language:          *resolved.Language,
		Sources:           sources,
	}, nil
}

// loadExisting returns the persisted state, or nil when there is none or
// it cannot be used. existed reports whether a file was present at all.
func (c *Configurator) loadExisting(logger *slog.Logger, path string) (*coreconfig.PersistedState, bool) {
	existed, err := afero.Exists(c.fs, path)
	if err != nil {
		logger.Warn("cannot stat existing core config", "error", err)
	}
	if !existed {
		return nil, false
	}

	state, err := coreconfig.LoadPersisted(c.fs, path)
	if err != nil {
		logger.Warn("ignoring unreadable core config; it will be rewritten", "error", err)
		return nil, true
	}
	return state, true
}

// Configure writes the core configuration for targetDir on the OS
// filesystem using the default logger and defaults.
func Configure(targetDir string, opts coreconfig.Options) (*Result, error) {
	return New().Configure(targetDir, opts)
}
