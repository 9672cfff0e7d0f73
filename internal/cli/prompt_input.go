package cli

import (
	"fmt"
	"io"
	"strings"

	"termai/internal/cli/formatter"

	"github.com/charmbracelet/huh"
)

// readInstruction collects the instruction interactively when none was given
// on the command line.
func readInstruction(app *App) string {
	var instruction string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Describe the task").
				Placeholder("find all go files modified today").
				Value(&instruction),
		),
	).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return ""
	}
	return strings.TrimSpace(instruction)
}

// confirmExecution asks the user whether to run the suggested command. An
// interactive terminal gets a huh confirm form; otherwise the answer is read
// line-wise from stdin with "no" as the default.
func confirmExecution(app *App, shell string) bool {
	title := fmt.Sprintf("Execute this command on %s?", shell)

	if app.interactive() {
		var confirmed bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(title).
					Affirmative("Yes").
					Negative("No").
					Value(&confirmed),
			),
		).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return false
		}
		return confirmed
	}

	return promptYesNoIO(app.stdin(), app.stdout(), formatter.Warn(title)+" [y/N]: ")
}

func promptYesNoIO(in io.Reader, out io.Writer, message string) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
