package main

import (
	"fmt"
	"os"

	"termai/internal/audit"
	"termai/internal/cli"
	"termai/internal/config"
	"termai/internal/llm"
	"termai/internal/translate"

	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	// File values seed the completion config; environment overrides both,
	// and command-line flags override everything later.
	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg.Model = cfg.Model
	}
	if cfg.BaseURL != "" {
		llmCfg.BaseURL = cfg.BaseURL
	}
	llmCfg = llmCfg.WithEnv()

	app := &cli.App{
		Config: cfg,
		LLM:    llmCfg,
		NewTranslator: func(c llm.Config, template string) translate.Service {
			var observer llm.Observer = llm.NoopObserver{}
			if c.LogCalls {
				observer = llm.NewLogObserver(os.Stderr)
			}
			return translate.NewService(llm.NewChatClient(c, observer), template)
		},
		OpenAudit: audit.Open,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
