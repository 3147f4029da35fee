package textgen

import (
	"context"
	"errors"
)

// Client produces free text for a natural-language prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("text generation disabled")

// Disabled is the client used when LLM_PROVIDER=none.
type Disabled struct{}

// Complete always returns ErrDisabled.
func (Disabled) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrDisabled
}

// IsDisabled reports whether c is nil or the Disabled client.
func IsDisabled(c Client) bool {
	if c == nil {
		return true
	}
	_, ok := c.(Disabled)
	return ok
}
