package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/user/songdb/tui/forms"
)

// confirmCreate asks whether to create the missing database at path. A
// terminal gets a huh confirm; anything else is read as a Y/N line.
func confirmCreate(cmd *cobra.Command, path string) (bool, error) {
	if isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
		var create bool
		if err := forms.NewCreateDatabaseForm(path, &create).Run(); err != nil {
			return false, fmt.Errorf("prompt: %w", err)
		}
		return create, nil
	}
	return promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), forms.CreatePrompt)
}

// promptYesNo writes question and reads answers until one starts with y or n.
// End of input counts as no.
func promptYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s [Y/N] ", question)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return false, scanner.Err()
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch {
		case strings.HasPrefix(answer, "y"):
			return true, nil
		case strings.HasPrefix(answer, "n"):
			return false, nil
		}
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
