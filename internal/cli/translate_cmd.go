package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"termai/internal/audit"
	"termai/internal/cli/formatter"
	"termai/internal/prompt"
	"termai/internal/runner"
	"termai/internal/translate"

	"github.com/spf13/cobra"
)

// Exit codes follow the tool's contract: 1 for usage or missing input,
// 2 for an unparseable model response, 3 for a transport failure, and the
// executed command's own status otherwise.
const (
	exitUsage     = 1
	exitParse     = 2
	exitTransport = 3
)

func addTranslateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("model", "", "Model name for the chat-completions API")
	flags.String("base-url", "", "Override the completion API base URL")
	flags.String("api-key", "", "Override the TERMAI_API_KEY / OPENAI_API_KEY environment variables")
	flags.String("shell", "", "Shell executable used for command execution")
	flags.String("cwd", "", "Working directory for executing commands")
	flags.Float64("temperature", 0, "Sampling temperature for the model")
	flags.String("prompt", prompt.DefaultName, "Prompt template filename inside the prompt directory")
	flags.Bool("dry-run", false, "Print the command but do not execute it")
	flags.Bool("accept", false, "Skip the confirmation prompt and execute immediately")
	flags.Bool("no-exec", false, "Do not execute the generated command")
	flags.Bool("allow-destructive", false, "Allow potentially destructive commands without forcing confirmation")
}

func runTranslate(app *App, cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	out := app.stdout()

	instruction := strings.TrimSpace(strings.Join(args, " "))
	if instruction == "" && app.interactive() {
		instruction = readInstruction(app)
	}
	if instruction == "" {
		return Exit(exitUsage, errors.New("no instruction provided"))
	}

	llmCfg := app.LLM
	if v, _ := flags.GetString("model"); v != "" {
		llmCfg.Model = v
	}
	if v, _ := flags.GetString("base-url"); v != "" {
		llmCfg.BaseURL = v
	}
	if v, _ := flags.GetString("api-key"); v != "" {
		llmCfg.APIKey = v
	}
	if llmCfg.APIKey == "" && !llmCfg.IsLocal() {
		return Exit(exitUsage, errors.New("missing API key: set TERMAI_API_KEY or use a local provider"))
	}

	shell := app.Config.Shell
	if v, _ := flags.GetString("shell"); v != "" {
		shell = v
	}
	temperature := app.Config.Temperature
	if flags.Changed("temperature") {
		temperature, _ = flags.GetFloat64("temperature")
	}
	cwd, _ := flags.GetString("cwd")
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	promptName, _ := flags.GetString("prompt")
	template, err := prompt.Load(app.Config.PromptDir, promptName)
	if err != nil {
		return Exit(exitUsage, err)
	}

	allowDestructive, _ := flags.GetBool("allow-destructive")
	req := translate.CommandRequest{
		Instruction:      instruction,
		Cwd:              cwd,
		Shell:            shell,
		Temperature:      temperature,
		AllowDestructive: allowDestructive,
	}

	svc := app.NewTranslator(llmCfg, template)

	var stopSpinner func()
	if app.interactive() {
		stopSpinner = formatter.StartSpinner("translating instruction")
	}
	suggestion, err := svc.Translate(cmd.Context(), req)
	if stopSpinner != nil {
		stopSpinner()
	}
	if err != nil {
		var parseErr *translate.ParsingError
		switch {
		case errors.As(err, &parseErr):
			return Exit(exitParse, fmt.Errorf("failed to parse model response: %w", err))
		case errors.Is(err, translate.ErrEmptyInstruction):
			return Exit(exitUsage, err)
		default:
			return Exit(exitTransport, fmt.Errorf("model request failed: %w", err))
		}
	}

	// Follow-up-only suggestions are a valid "need more information" outcome.
	if suggestion.Command == "" {
		fmt.Fprintf(out, "%s %s\n", formatter.Warn("Follow-up needed:"), suggestion.FollowUp)
		return nil
	}

	fmt.Fprintf(out, "\n%s %s\n", formatter.Label("Command:"), formatter.Command(suggestion.Command))
	if suggestion.Explanation != "" {
		fmt.Fprintf(out, "%s\n", formatter.Dim("Why: "+suggestion.Explanation))
	}
	if !allowDestructive && suggestion.RequiresConfirmation {
		if tags := translate.MatchDestructive(suggestion.Command); len(tags) > 0 {
			fmt.Fprintf(out, "%s\n", formatter.Dim("flagged: "+strings.Join(tags, ", ")))
		}
	}
	fmt.Fprintln(out)

	if noExec, _ := flags.GetBool("no-exec"); noExec {
		return nil
	}

	accept, _ := flags.GetBool("accept")
	shouldExecute := accept || !suggestion.RequiresConfirmation
	if !shouldExecute {
		shouldExecute = confirmExecution(app, shell)
	}
	if !shouldExecute {
		fmt.Fprintln(out, "Aborted.")
		return nil
	}

	dryRun, _ := flags.GetBool("dry-run")
	run := runner.New(shell)
	run.DryRun = dryRun
	run.Out = out

	result, err := run.Execute(cmd.Context(), suggestion.Command, cwd)
	if err != nil {
		return Exit(exitUsage, err)
	}

	if !dryRun {
		recordAudit(app, out, &audit.Entry{
			Instruction: instruction,
			Command:     suggestion.Command,
			ExitCode:    result.ExitCode,
			Confirmed:   suggestion.RequiresConfirmation,
		})
	}

	if !result.Succeeded() {
		return Exit(result.ExitCode, fmt.Errorf("command exited with status %d", result.ExitCode))
	}
	return nil
}

// recordAudit appends the execution to the audit trail. Failures never block
// the command result; they surface as a dim note.
func recordAudit(app *App, out io.Writer, e *audit.Entry) {
	if app.OpenAudit == nil {
		return
	}
	log, err := app.OpenAudit(app.Config.AuditDB)
	if err != nil {
		fmt.Fprintf(out, "%s\n", formatter.Dim("audit log unavailable: "+err.Error()))
		return
	}
	defer log.Close()
	if err := log.Record(context.Background(), e); err != nil {
		fmt.Fprintf(out, "%s\n", formatter.Dim("audit write failed: "+err.Error()))
	}
}
