package prompt

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/logging"
)

// findMulti is replaced in tests.
var findMulti = func(choices []coreconfig.Choice, header string) ([]int, error) {
	return fuzzyfinder.FindMulti(
		choices,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", choices[i].Label, choices[i].Value)
		},
		fuzzyfinder.WithHeader(header),
	)
}

// Terminal asks single choices through a Selector and uses a fuzzy finder
// for multi-selection.
type Terminal struct {
	*Selector
	writer io.Writer
}

// NewTerminal returns a Prompter for stdin and stdout. When stdin is not a
// terminal the plain Selector is returned.
func NewTerminal() Prompter {
	if !logging.IsInteractive(os.Stdin) {
		return NewSelector()
	}
	return &Terminal{Selector: NewSelector(), writer: os.Stdout}
}

// MultiSelect opens the fuzzy finder. Tab toggles an entry and Enter
// confirms. Confirming without toggling anything keeps defaults.
// Aborting with Esc or Ctrl+C returns ErrSelectionCancelled.
func (t *Terminal) MultiSelect(question string, choices []coreconfig.Choice, defaults []string) ([]string, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}

	idxs, err := findMulti(choices, question+" (Tab to toggle, Enter to confirm)")
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "selecting IDEs")
	}
	if len(idxs) == 0 {
		return slices.Clone(defaults), nil
	}

	slices.Sort(idxs)
	selected := make([]string, 0, len(idxs))
	for _, i := range idxs {
		selected = append(selected, choices[i].Value)
	}
	fmt.Fprintf(t.writer, "%s %v\n", question, selected)
	return selected, nil
}
