package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/thoreinstein/aios/internal/paths"
)

// result holds the captured streams of one command execution.
type result struct {
	stdout string
	stderr string
	err    error
}

// withSettingsDir isolates the installer settings in a temp directory.
func withSettingsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	return dir
}

// withProjectFs swaps the filesystem commands operate on.
func withProjectFs(t *testing.T, fsys afero.Fs) {
	t.Helper()
	orig := projectFs
	projectFs = fsys
	t.Cleanup(func() { projectFs = orig })
}

// resetFlags restores every flag to its default so runs do not leak into
// each other through the package-level command tree.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	reset(rootCmd.Flags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
}

// execute runs the root command with args, feeding stdin to prompts.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	if os.Getenv(paths.ConfigDirEnv) == "" {
		withSettingsDir(t)
	}
	resetFlags()
	t.Cleanup(resetFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}
