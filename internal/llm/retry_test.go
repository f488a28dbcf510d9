package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type scriptedClient struct {
	calls int
	errs  []error
}

func (s *scriptedClient) Generate(ctx context.Context, req Request) (string, error) {
	idx := s.calls
	s.calls++
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	return "ok", nil
}

func TestWithRetryRetriesTimeoutOnce(t *testing.T) {
	base := &scriptedClient{errs: []error{fmt.Errorf("%w: dial", ErrTimeout), nil}}
	client := WithRetry(base)

	got, err := client.Generate(context.Background(), Request{Prompt: "hi"})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if got != "ok" {
		t.Fatalf("expected ok, got %q", got)
	}
	if base.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", base.calls)
	}
}

func TestWithRetryGivesUpAfterSecondFailure(t *testing.T) {
	base := &scriptedClient{errs: []error{ErrTimeout, ErrTimeout}}
	client := WithRetry(base)

	if _, err := client.Generate(context.Background(), Request{}); !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if base.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", base.calls)
	}
}

func TestWithRetrySkipsPermanentErrors(t *testing.T) {
	permanent := errors.New("gemini error: API key not valid (INVALID_ARGUMENT)")
	base := &scriptedClient{errs: []error{permanent}}
	client := WithRetry(base)

	if _, err := client.Generate(context.Background(), Request{}); !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if base.calls != 1 {
		t.Fatalf("expected 1 call, got %d", base.calls)
	}
}
