package llm

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const retryBaseDelay = 300 * time.Millisecond

type retrying struct {
	base Client
}

// WithRetry wraps a client with a single bounded retry for transient
// failures. Permanent failures (bad requests, credential errors) pass through
// untouched.
func WithRetry(base Client) Client {
	if base == nil {
		return nil
	}
	return retrying{base: base}
}

func (r retrying) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := r.base.Generate(ctx, req)
	if err == nil || !shouldRetry(err) {
		return resp, err
	}

	log.Printf("llm retry attempt=1 error=%s", err)
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.Generate(ctx, req)
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "unexpected eof") {
		return true
	}

	return false
}
