package textgen

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"healthplan-backend/internal/shared/telemetry"
)

var retryBaseDelay = 300 * time.Millisecond

type retrying struct {
	base Client
}

// NewRetrying wraps base with a single delayed retry on transient failures.
func NewRetrying(base Client) Client {
	if base == nil {
		return nil
	}
	return retrying{base: base}
}

func (r retrying) Complete(ctx context.Context, prompt string) (string, error) {
	out, err := r.base.Complete(ctx, prompt)
	if err == nil || !shouldRetry(err) {
		return out, err
	}

	telemetry.Warn("textgen.retry", map[string]any{"attempt": 1, "error": err.Error()})
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.Complete(ctx, prompt)
}

func shouldRetry(err error) bool {
	if err == nil || errors.Is(err, ErrDisabled) || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
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
	if strings.Contains(msg, "timeout") {
		return true
	}
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof")
}
