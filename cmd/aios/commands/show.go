package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/paths"
	"github.com/thoreinstein/aios/internal/translate"
	"github.com/thoreinstein/aios/pkg/fileutil"
)

var (
	showTarget string
	showOutput string
)

func init() {
	showCmd.Flags().StringVarP(&showTarget, "target", "t", ".",
		"project directory")
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "yaml",
		"output format: yaml, json, toml")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a project's core configuration",
	Example: `  aios show
  aios show --target ./app --output json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(c *cobra.Command, _ []string) error {
	format, err := translate.ParseFormat(showOutput)
	if err != nil {
		return errors.NewUserError(err, "use --output yaml, json or toml")
	}

	target, err := paths.ResolveTarget(showTarget)
	if err != nil {
		return errors.NewUserError(err, "pass an existing directory with --target")
	}
	path := paths.CoreConfigPath(target)

	data, found, err := fileutil.ReadFileIfExists(projectFs, path)
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "reading %s", path), "")
	}
	if !found {
		return errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "core config %s", path), "run 'aios install --target "+target+"' first")
	}

	out, err := translate.Convert(data, format)
	if err != nil {
		return errors.NewUserError(err, "run 'aios doctor' to diagnose the file")
	}

	_, err = c.OutOrStdout().Write(out)
	return errors.Wrap(err, "writing output")
}
