package flatten

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// outputMarker identifies a file previously written by this tool; such files
// are overwritten without asking.
const outputMarker = "Project:"

// ConfirmFunc asks the user a yes/no question and reports the answer. It is
// injected into Run so the scan logic stays testable without a terminal.
type ConfirmFunc func(message string) (bool, error)

// TerminalConfirm prompts on stdout and reads the reply from stdin. When
// stdin is not a terminal there is nobody to ask, so it answers with the
// prompt's default: no.
func TerminalConfirm(message string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, nil
	}

	fmt.Print(message)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	return isAffirmative(response), nil
}

// isAffirmative reports whether a prompt reply means yes. Only "y" counts,
// case-insensitively; anything else, including "yes", takes the default: no.
func isAffirmative(response string) bool {
	return strings.TrimSpace(strings.ToLower(response)) == "y"
}

// shouldOverwrite decides whether writing to path may proceed. A missing
// file always may. An existing file starting with the output marker is
// overwritten silently; anything else, including files we cannot read,
// requires confirmation.
func shouldOverwrite(path string, confirm ConfirmFunc) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return confirm(fmt.Sprintf("File '%s' already exists.\nOverwrite? [y/N]: ", path))
	}
	defer f.Close()

	header := make([]byte, 20)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return confirm(fmt.Sprintf("File '%s' already exists.\nOverwrite? [y/N]: ", path))
	}
	if strings.HasPrefix(string(header[:n]), outputMarker) {
		return true, nil
	}

	return confirm(fmt.Sprintf(
		"File '%s' already exists and doesn't look like a src2file output.\nOverwrite? [y/N]: ", path))
}
