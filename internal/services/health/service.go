package health

import (
	"context"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Service reports liveness plus the state of optional dependencies.
type Service struct {
	DB             Pinger
	TextGenEnabled bool
	Timeout        time.Duration
}

// NewService constructs a health service. db may be nil when running on memory stores.
func NewService(db Pinger, textGenEnabled bool) *Service {
	return &Service{DB: db, TextGenEnabled: textGenEnabled, Timeout: 2 * time.Second}
}

// Status always reports ok; dependency states are informational.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{
		"ok":       true,
		"database": "memory",
		"textgen":  "disabled",
	}
	if s == nil {
		return out
	}
	if s.TextGenEnabled {
		out["textgen"] = "enabled"
	}
	if s.DB != nil {
		timeout := s.Timeout
		if timeout <= 0 {
			timeout = 2 * time.Second
		}
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := s.DB.PingContext(pingCtx); err != nil {
			out["database"] = "down"
		} else {
			out["database"] = "up"
		}
	}
	return out
}
