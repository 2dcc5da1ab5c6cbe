package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// terminal answers confirm and prompt dialogs on the command's stdin.
type terminal struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
	// reply, when set, answers prompts without reading stdin.
	reply *string
}

func terminalFor(cmd *cobra.Command, assumeYes bool) *terminal {
	return &terminal{
		in:        bufio.NewReader(cmd.InOrStdin()),
		out:       cmd.ErrOrStderr(),
		assumeYes: assumeYes,
	}
}

func (t *terminal) confirm(message string) bool {
	if t.assumeYes {
		return true
	}
	fmt.Fprintf(t.out, "%s [y/N] ", message)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// prompt returns ok=false on EOF. An empty line keeps initial.
func (t *terminal) prompt(message, initial string) (string, bool) {
	if t.reply != nil {
		return *t.reply, true
	}
	fmt.Fprintf(t.out, "%s [%s] ", message, initial)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return "", false
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return initial, true
	}
	return line, true
}
