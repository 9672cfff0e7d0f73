package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"termai/internal/llm"
	"termai/internal/prompt"
)

// ErrEmptyInstruction is returned when the request instruction is blank.
var ErrEmptyInstruction = errors.New("instruction must not be empty")

// Service turns a natural-language instruction into a shell command
// suggestion.
type Service interface {
	Translate(ctx context.Context, req CommandRequest) (CommandSuggestion, error)
}

type service struct {
	client   llm.CompletionClient
	template string
}

// NewService creates a Service backed by a completion client and a system
// prompt template carrying {shell} and {cwd} placeholders.
func NewService(client llm.CompletionClient, template string) Service {
	return &service{client: client, template: template}
}

// Translate renders the system prompt, obtains raw text from the completion
// client, parses it into a suggestion, and applies the safety classifier
// when the command is non-empty and the destructive override is unset.
// ParsingError values from the parser propagate to the caller as-is;
// transport errors propagate wrapped but untyped.
func (s *service) Translate(ctx context.Context, req CommandRequest) (CommandSuggestion, error) {
	instruction := strings.TrimSpace(req.Instruction)
	if instruction == "" {
		return CommandSuggestion{}, ErrEmptyInstruction
	}

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: prompt.Render(s.template, req.Shell, req.Cwd),
		UserPrompt:   instruction,
		Temperature:  req.Temperature,
	})
	if err != nil {
		return CommandSuggestion{}, fmt.Errorf("completion failed: %w", err)
	}

	suggestion, err := ParseResponse(resp.Text)
	if err != nil {
		return CommandSuggestion{}, err
	}

	if suggestion.Command != "" && !req.AllowDestructive {
		suggestion = Classify(suggestion, req.AllowDestructive)
	}
	return suggestion, nil
}
