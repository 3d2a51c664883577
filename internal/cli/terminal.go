package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ring-tool/internal/flow"
)

// TerminalChooser presents choices as numbered prompts on a terminal.
// Empty input accepts the preselected option when there is one, "q" or
// end of input dismisses the prompt.
type TerminalChooser struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewTerminalChooser(in io.Reader, out io.Writer) *TerminalChooser {
	return &TerminalChooser{in: bufio.NewScanner(in), out: out}
}

var _ flow.Chooser = (*TerminalChooser)(nil)

func (t *TerminalChooser) PresentChoice(title string, options []string, preferred string) (string, bool, error) {
	fmt.Fprintf(t.out, "\n%s:\n", title)
	for i, opt := range options {
		marker := " "
		if opt == preferred {
			marker = "*"
		}
		fmt.Fprintf(t.out, " %s%2d) %s\n", marker, i+1, opt)
	}

	for {
		if preferred != "" {
			fmt.Fprintf(t.out, "Choice [1-%d, Enter = %s, q = cancel]: ", len(options), preferred)
		} else {
			fmt.Fprintf(t.out, "Choice [1-%d, q = cancel]: ", len(options))
		}

		if !t.in.Scan() {
			// End of input counts as dismissal, a broken reader does not.
			return "", false, t.in.Err()
		}
		line := strings.TrimSpace(t.in.Text())

		switch {
		case line == "" && preferred != "":
			return preferred, true, nil
		case line == "" || strings.EqualFold(line, "q"):
			return "", false, nil
		}

		if n, err := strconv.Atoi(line); err == nil {
			if n >= 1 && n <= len(options) {
				return options[n-1], true, nil
			}
			fmt.Fprintf(t.out, "No option %d\n", n)
			continue
		}

		if match, ok := matchOption(options, line); ok {
			return match, true, nil
		}
		fmt.Fprintf(t.out, "Invalid choice %q\n", line)
	}
}

// matchOption resolves typed input against the option list, ignoring
// case.
func matchOption(options []string, input string) (string, bool) {
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}
	return "", false
}
