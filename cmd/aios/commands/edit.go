package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/editor"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/logging"
	"github.com/thoreinstein/aios/internal/paths"
	"github.com/thoreinstein/aios/pkg/fileutil"
)

var editTarget string

func init() {
	editCmd.Flags().StringVarP(&editTarget, "target", "t", ".",
		"project directory")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open a project's core configuration in $EDITOR",
	Long: `Open .aios-core/core-config.yaml in $EDITOR (then $VISUAL, nano, vi).

The file is parsed again when the editor exits; a document that no longer
parses is reported as an error and left as written.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(c *cobra.Command, _ []string) error {
	logger := logging.FromContext(c.Context())

	target, err := paths.ResolveTarget(editTarget)
	if err != nil {
		return errors.NewUserError(err, "pass an existing directory with --target")
	}
	path := paths.CoreConfigPath(target)

	if _, found, err := fileutil.ReadFileIfExists(projectFs, path); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "reading %s", path), "")
	} else if !found {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "core config %s", path), "run 'aios install --target "+target+"' first")
	}

	ed := &editor.Editor{Stdin: c.InOrStdin(), Stdout: c.OutOrStdout(), Stderr: c.ErrOrStderr()}
	if err := ed.Open(c.Context(), path); err != nil {
		return errors.NewSystemError(err, "set $EDITOR to your editor command")
	}

	state, err := coreconfig.LoadPersisted(projectFs, path)
	if err != nil {
		return errors.NewUserError(err, "run 'aios doctor --target "+target+"' to diagnose the file")
	}
	lang, ok := coreconfig.ReadExistingLanguage(state)
	if !ok {
		lang = coreconfig.DefaultLanguage
	}
	logger.Debug("edited core config", "path", path, "language", lang)

	if !quiet {
		fmt.Fprintf(c.OutOrStdout(), "Saved %s (language: %s)\n", path, lang)
	}
	return nil
}
