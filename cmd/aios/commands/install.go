package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/fatih/color"
	"github.com/siderolabs/go-pointer"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/aios/cmd"
	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/environment"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/logging"
	"github.com/thoreinstein/aios/internal/paths"
	"github.com/thoreinstein/aios/internal/prompt"
)

var (
	installTarget      string
	installLanguage    string
	installUserProfile string
	installProjectType string
	installIDEs        []string
	installVersion     string
	installYes         bool
)

// projectFs is the filesystem install, show and doctor operate on.
var projectFs = afero.NewOsFs()

func init() {
	installCmd.Flags().StringVarP(&installTarget, "target", "t", ".",
		"project directory to configure")
	installCmd.Flags().StringVar(&installLanguage, "language", "",
		"UI language (en, pt, es); defaults to the recorded language, then en")
	installCmd.Flags().StringVar(&installUserProfile, "user-profile", "",
		"user profile (bob, advanced)")
	installCmd.Flags().StringVar(&installProjectType, "project-type", "",
		"project type (GREENFIELD, BROWNFIELD)")
	installCmd.Flags().StringSliceVar(&installIDEs, "ide", nil,
		"IDE to configure; repeat or comma-separate for several, pass --ide= for none")
	installCmd.Flags().StringVar(&installVersion, "aios-version", cmd.Version,
		"version recorded as aios_version")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false,
		"non-interactive: do not prompt for unset options")
	_ = installCmd.Flags().MarkHidden("aios-version")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Write the core configuration for a project",
	Long: `Write .aios-core/core-config.yaml into the target project.

Each option is taken from, in order:
  1. the command-line flag, when given
  2. the value recorded by a previous install in the same project
  3. the default (language: en, user profile: advanced,
     project type: GREENFIELD, IDEs: none)

Without --yes, options that were not given as flags are asked for
interactively, suggesting the recorded or default value.`,
	Example: `  # Interactive install in the current directory
  aios install

  # Re-run keeping every recorded choice
  aios install --yes

  # Switch an existing project to Portuguese
  aios install --language pt --yes`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(c *cobra.Command, _ []string) error {
	logger := logging.FromContext(c.Context())

	target, err := paths.ResolveTarget(installTarget)
	if err != nil {
		return errors.NewUserError(err, "pass an existing directory with --target")
	}

	opts := installOptions(c)

	if promptsEnabled(c) {
		state, err := coreconfig.LoadPersisted(projectFs, paths.CoreConfigPath(target))
		if err != nil {
			logger.Debug("existing core config not used for suggestions", "error", err)
			state = nil
		}
		wizard := prompt.NewWizard(newPrompter(c), logger)
		opts, err = wizard.Fill(opts, state, settings.InstallDefaults())
		if err != nil {
			if errors.Is(err, prompt.ErrSelectionCancelled) {
				return errors.NewUserError(err, "re-run with --yes to accept recorded or default values")
			}
			return errors.NewUserError(err, "")
		}
	}

	configurator := environment.New(
		environment.WithFs(projectFs),
		environment.WithLogger(logger),
		environment.WithDefaults(settings.InstallDefaults()),
	)

	res, err := configurator.Configure(target, opts)
	if err != nil {
		switch {
		case errors.Is(err, errors.ErrInvalidOptions):
			return errors.NewUserError(err, "IDE names must not be blank")
		case errors.Is(err, fs.ErrPermission):
			return errors.NewSystemError(err, "check that you can write to "+target)
		default:
			return errors.NewSystemError(err, "")
		}
	}

	if !quiet {
		printInstallSummary(c.OutOrStdout(), res)
	}
	return nil
}

// installOptions builds options from the flags the user actually passed.
// The version is always explicit.
func installOptions(c *cobra.Command) coreconfig.Options {
	flags := c.Flags()
	opts := coreconfig.Options{
		AIOSVersion: pointer.To(installVersion),
	}
	if flags.Changed("language") {
		opts.Language = pointer.To(installLanguage)
	}
	if flags.Changed("user-profile") {
		opts.UserProfile = pointer.To(installUserProfile)
	}
	if flags.Changed("project-type") {
		opts.ProjectType = pointer.To(installProjectType)
	}
	if flags.Changed("ide") {
		ides := slices.DeleteFunc(slices.Clone(installIDEs), func(s string) bool { return s == "" })
		opts.SelectedIDEs = pointer.To(ides)
	}
	return opts
}

// promptsEnabled reports whether unset options should be asked for.
func promptsEnabled(c *cobra.Command) bool {
	if installYes {
		return false
	}
	in := c.InOrStdin()
	if in == os.Stdin {
		return logging.IsInteractive(os.Stdin)
	}
	return true
}

func newPrompter(c *cobra.Command) prompt.Prompter {
	if c.InOrStdin() == os.Stdin {
		return prompt.NewTerminal()
	}
	return prompt.NewSelectorWithIO(c.InOrStdin(), c.OutOrStdout())
}

var fieldOrder = []string{
	environment.FieldLanguage,
	environment.FieldUserProfile,
	environment.FieldProjectType,
	environment.FieldIDEs,
	environment.FieldAIOSVersion,
}

func printInstallSummary(w io.Writer, res *environment.Result) {
	green := color.New(color.FgGreen)
	gray := color.New(color.FgHiBlack)

	verb := "Created"
	if res.Replaced {
		verb = "Updated"
	}
	green.Fprint(w, "✓ ")
	fmt.Fprintf(w, "%s %s\n", verb, res.ConfigPath)
	fmt.Fprintf(w, "  language: %s\n", res.Language)

	for _, field := range fieldOrder {
		gray.Fprintf(w, "  %-13s %s\n", field, res.Sources[field])
	}
}
