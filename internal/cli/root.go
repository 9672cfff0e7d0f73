package cli

import (
	"errors"
	"io"
	"os"

	"termai/internal/audit"
	"termai/internal/config"
	"termai/internal/llm"
	"termai/internal/translate"

	"github.com/spf13/cobra"
)

// App holds the collaborators CLI commands run against. The translator is
// built per invocation because flags can override the client configuration.
type App struct {
	Config config.Config
	LLM    llm.Config

	NewTranslator func(cfg llm.Config, template string) translate.Service
	OpenAudit     func(path string) (audit.Log, error)
	IsInteractive func() bool

	// Stdin/Stdout default to the process streams; tests replace them.
	Stdin  io.Reader
	Stdout io.Writer
}

func (a *App) stdin() io.Reader {
	if a.Stdin != nil {
		return a.Stdin
	}
	return os.Stdin
}

func (a *App) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "termai" command. The root command itself
// performs the translation; subcommands cover the audit trail.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "termai [instruction...]",
		Short:         "Translate natural language into a shell command",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(app, cmd, args)
		},
	}

	addTranslateFlags(root)
	root.AddCommand(newAuditCmd(app))

	return root
}

// ExitError carries a process exit code through cobra's error return.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// Exit wraps err with an exit code.
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode extracts the process exit code from a command error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
