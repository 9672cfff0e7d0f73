package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"termai/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newChatTestServer serves a fixed chat-completions reply whose message
// content is the given text.
func newChatTestServer(t *testing.T, text string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "test-model",
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": text}},
			},
		})
	}))
}

// TestService_Translate_WithHTTPTestServer exercises the full HTTP
// serialization path: httptest server → chat client → Translate → safety
// classification. This guards against mock-drift between the provider wire
// format and the parsing pipeline.
func TestService_Translate_WithHTTPTestServer(t *testing.T) {
	response := `{"command": "rm -rf ./build", "explanation": "Remove build dir", "requires_confirmation": false, "follow_up": ""}`

	var sawPath, sawAuth string
	srv := newChatTestServer(t, response, func(r *http.Request) {
		sawPath = r.URL.Path
		sawAuth = r.Header.Get("Authorization")

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "user", body.Messages[1].Role)
		assert.Equal(t, "delete the build directory", body.Messages[1].Content)
	})
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Model = "test-model"
	cfg.MaxRetries = 0

	client := llm.NewChatClient(cfg, llm.NoopObserver{})
	svc := NewService(client, "Shell: {shell} | CWD: {cwd}")

	s, err := svc.Translate(context.Background(), CommandRequest{
		Instruction: "delete the build directory",
		Shell:       "/bin/bash",
		Cwd:         "/srv/app",
	})
	require.NoError(t, err)

	assert.Equal(t, "/chat/completions", sawPath)
	// httptest binds to 127.0.0.1, which counts as a local provider.
	assert.Empty(t, sawAuth)

	assert.Equal(t, "rm -rf ./build", s.Command)
	assert.True(t, s.RequiresConfirmation, "destructive command must be upgraded even over real HTTP")
}

func TestService_Translate_WithHTTPTestServer_FencedResponse(t *testing.T) {
	response := "Sure thing:\n```json\n{\"command\": \"ls\", \"explanation\": \"List\", \"requires_confirmation\": false, \"follow_up\": \"\"}\n```"
	srv := newChatTestServer(t, response, nil)
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 0

	svc := NewService(llm.NewChatClient(cfg, llm.NoopObserver{}), "Shell: {shell} | CWD: {cwd}")
	s, err := svc.Translate(context.Background(), CommandRequest{Instruction: "list files"})
	require.NoError(t, err)
	assert.Equal(t, "ls", s.Command)
	assert.False(t, s.RequiresConfirmation)
}

func TestService_Translate_WithHTTPTestServer_GarbageResponse(t *testing.T) {
	srv := newChatTestServer(t, "I cannot help with that.", nil)
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.MaxRetries = 0

	svc := NewService(llm.NewChatClient(cfg, llm.NoopObserver{}), "Shell: {shell} | CWD: {cwd}")
	_, err := svc.Translate(context.Background(), CommandRequest{Instruction: "noop"})

	var parseErr *ParsingError
	assert.ErrorAs(t, err, &parseErr)
}
