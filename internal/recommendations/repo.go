package recommendations

import "context"

// Repo persists generated recommendations.
type Repo interface {
	Create(ctx context.Context, rec StoredRecommendation) error
	GetByID(ctx context.Context, id string) (StoredRecommendation, error)
	List(ctx context.Context, filter ListFilter) ([]StoredRecommendation, error)
}

// FeedbackRepo records like/dislike feedback.
type FeedbackRepo interface {
	Create(ctx context.Context, fb Feedback) error
	Summary(ctx context.Context, recommendationID string) (FeedbackSummary, error)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func normalizeFilter(f ListFilter) ListFilter {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}
