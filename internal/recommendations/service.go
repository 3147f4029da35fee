package recommendations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"healthplan-backend/internal/plan"
	"healthplan-backend/internal/shared/metrics"
	"healthplan-backend/internal/shared/telemetry"
	"healthplan-backend/internal/textgen"
)

const defaultTextGenTimeout = 20 * time.Second

// Service generates, persists and reviews recommendation plans.
type Service struct {
	Repo     Repo
	Feedback FeedbackRepo
	TextGen  textgen.Client
	// TextGenTimeout bounds each text generation call; zero uses the default.
	TextGenTimeout time.Duration
	Now            func() time.Time
}

// GenerateOptions controls side effects of Generate.
type GenerateOptions struct {
	UserID  string
	Persist bool
}

// Result is the outcome of Generate. Record.ID is empty when persistence was skipped.
type Result struct {
	Outcome
	Record  StoredRecommendation
	Warning string
}

// Generate always returns a plan. Text generation and persistence failures are
// logged and degrade to the rules engine and a temporary id respectively.
func (s *Service) Generate(ctx context.Context, in plan.Input, opts GenerateOptions) Result {
	start := s.now()

	outcome := s.resolve(ctx, in)
	if msg := s.richMessage(ctx, in); msg != "" {
		outcome.Plan.Message = msg
	}

	res := Result{
		Outcome: outcome,
		Record: StoredRecommendation{
			UserID:      opts.UserID,
			Input:       toInputRecord(in),
			Suggestions: outcome.Plan.Suggestions,
			Message:     outcome.Plan.Message,
			Source:      outcome.Kind,
			CreatedAt:   start.UTC(),
		},
	}

	if opts.Persist {
		res.Record.ID = uuid.NewString()
		if err := s.persist(ctx, res.Record); err != nil {
			metrics.IncPersistFailed()
			telemetry.Warn("recommendation.persist_failed", map[string]any{
				"error":   err.Error(),
				"user_id": opts.UserID,
			})
			res.Record.ID = tempID(start)
			res.Warning = err.Error()
		}
	}

	metrics.IncPlanGenerated(string(outcome.Kind))
	metrics.ObservePlanDurationMs(float64(s.now().Sub(start).Microseconds()) / 1000.0)
	telemetry.Info("recommendation.generated", map[string]any{
		"source":      string(outcome.Kind),
		"suggestions": len(outcome.Plan.Suggestions),
		"persisted":   opts.Persist && res.Warning == "",
		"user_id":     opts.UserID,
	})
	return res
}

// resolve picks the first tier that yields suggestions: llm, lenient, then rules.
func (s *Service) resolve(ctx context.Context, in plan.Input) Outcome {
	rules := Outcome{Kind: SourceRules, Plan: plan.Generate(in)}
	if textgen.IsDisabled(s.TextGen) {
		return rules
	}

	text, err := s.complete(ctx, suggestionsPrompt(in))
	if err != nil {
		s.textGenFailed("suggestions", err)
		return rules
	}
	items, kind, ok := parseModelOutput(text)
	if !ok {
		telemetry.Warn("textgen.unparseable", map[string]any{"stage": "suggestions", "length": len(text)})
		return rules
	}
	return Outcome{Kind: kind, Plan: plan.Assemble(in, toSuggestions(items))}
}

func (s *Service) richMessage(ctx context.Context, in plan.Input) string {
	if textgen.IsDisabled(s.TextGen) {
		return ""
	}
	text, err := s.complete(ctx, messagePrompt(in))
	if err != nil {
		s.textGenFailed("message", err)
		return ""
	}
	return strings.TrimSpace(text)
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	timeout := s.TextGenTimeout
	if timeout <= 0 {
		timeout = defaultTextGenTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.TextGen.Complete(callCtx, prompt)
}

func (s *Service) textGenFailed(stage string, err error) {
	if errors.Is(err, textgen.ErrDisabled) {
		return
	}
	metrics.IncTextGenFailed()
	telemetry.Warn("textgen.failed", map[string]any{"stage": stage, "error": err.Error()})
}

func (s *Service) persist(ctx context.Context, rec StoredRecommendation) error {
	if s.Repo == nil {
		return errors.New("recommendation store not configured")
	}
	return s.Repo.Create(ctx, rec)
}

// Get returns a stored recommendation with its feedback summary.
func (s *Service) Get(ctx context.Context, id string) (StoredRecommendation, FeedbackSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return StoredRecommendation{}, FeedbackSummary{}, ErrInvalidInput
	}
	if s.Repo == nil {
		return StoredRecommendation{}, FeedbackSummary{}, ErrNotFound
	}
	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return StoredRecommendation{}, FeedbackSummary{}, err
	}
	var summary FeedbackSummary
	if s.Feedback != nil {
		summary, err = s.Feedback.Summary(ctx, id)
		if err != nil {
			telemetry.Warn("feedback.summary_failed", map[string]any{"recommendation_id": id, "error": err.Error()})
			summary = FeedbackSummary{}
		}
	}
	return rec, summary, nil
}

// List returns stored recommendations newest first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]StoredRecommendation, error) {
	if s.Repo == nil {
		return []StoredRecommendation{}, nil
	}
	return s.Repo.List(ctx, filter)
}

// RecordFeedback stores a like/dislike for a recommendation.
func (s *Service) RecordFeedback(ctx context.Context, userID, recommendationID string, liked bool) error {
	recommendationID = strings.TrimSpace(recommendationID)
	if recommendationID == "" {
		return ErrInvalidInput
	}
	if s.Feedback == nil {
		return errors.New("feedback sink not configured")
	}
	fb := Feedback{
		ID:               uuid.NewString(),
		RecommendationID: recommendationID,
		UserID:           userID,
		Liked:            liked,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.Feedback.Create(ctx, fb); err != nil {
		return err
	}
	metrics.IncFeedbackRecorded()
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func tempID(t time.Time) string {
	return fmt.Sprintf("temp-%d", t.UnixMilli())
}
