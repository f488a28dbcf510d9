package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Client abstracts generative-model providers.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request captures a single generation call. A non-nil Schema asks the
// provider for JSON conforming to that schema; the schema is a plain JSON
// document so the expected shape is not coupled to any Go type.
type Request struct {
	Prompt string
	Schema json.RawMessage
}

// ErrTimeout marks a provider call that exceeded its deadline. It is distinct
// from other failures so callers can surface it as retryable.
var ErrTimeout = errors.New("llm request timeout")

// StripFences removes a surrounding ```json / ``` code fence from model
// output. Models leak fences even when asked for bare JSON.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
