package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
)

// Sentinel errors for selection prompts.
var (
	ErrNoChoices          = errors.New("no choices to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// noneInput selects nothing in a multi-selection.
const noneInput = "none"

// Selector asks numbered-list questions over plain reader and writer streams.
type Selector struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return NewSelectorWithIO(os.Stdin, os.Stdout)
}

// NewSelectorWithIO creates a Selector with custom reader and writer.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Select asks question and returns the chosen value.
//
// An empty answer picks def, or the first choice when def is not among
// choices. The answer may be the choice's number or its value.
// Returns ErrSelectionCancelled on EOF and ErrInvalidSelection for
// anything else it cannot match.
func (s *Selector) Select(question string, choices []coreconfig.Choice, def string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	defIdx := max(indexOf(choices, def), 0)

	fmt.Fprintf(s.writer, "%s\n", question)
	for i, c := range choices {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, c.Label)
	}
	fmt.Fprintf(s.writer, "Select [%d]: ", defIdx+1)

	input, err := s.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return choices[defIdx].Value, nil
	}

	idx, err := parseChoice(input, choices)
	if err != nil {
		return "", err
	}
	return choices[idx].Value, nil
}

// MultiSelect asks question and returns the chosen values in the order
// given. Answers are comma or space separated numbers or values. An empty
// answer keeps defaults; "none" selects nothing.
func (s *Selector) MultiSelect(question string, choices []coreconfig.Choice, defaults []string) ([]string, error) {
	if len(choices) == 0 {
		return nil, ErrNoChoices
	}

	fmt.Fprintf(s.writer, "%s\n", question)
	for i, c := range choices {
		mark := " "
		if slices.Contains(defaults, c.Value) {
			mark = "*"
		}
		fmt.Fprintf(s.writer, " %s[%d] %s\n", mark, i+1, c.Label)
	}
	fmt.Fprintf(s.writer, "Select (comma separated, %q for none) [%s]: ", noneInput, strings.Join(defaults, ","))

	input, err := s.readLine()
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(input) {
	case "":
		return slices.Clone(defaults), nil
	case noneInput:
		return []string{}, nil
	}

	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' })
	selected := make([]string, 0, len(fields))
	for _, f := range fields {
		idx, err := parseChoice(f, choices)
		if err != nil {
			return nil, err
		}
		if v := choices[idx].Value; !slices.Contains(selected, v) {
			selected = append(selected, v)
		}
	}
	return selected, nil
}

func (s *Selector) readLine() (string, error) {
	input, err := s.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(input) == "" {
			return "", ErrSelectionCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading selection")
		}
	}
	return strings.TrimSpace(input), nil
}

// parseChoice resolves a 1-based number or a choice value to an index.
func parseChoice(input string, choices []coreconfig.Choice) (int, error) {
	if idx := indexOf(choices, input); idx >= 0 {
		return idx, nil
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number or a known value", input)
	}
	if n < 1 || n > len(choices) {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(choices))
	}
	return n - 1, nil
}

func indexOf(choices []coreconfig.Choice, value string) int {
	return slices.IndexFunc(choices, func(c coreconfig.Choice) bool {
		return c.Value == value
	})
}
