package recommendations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores recommendations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]StoredRecommendation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]StoredRecommendation)}
}

// Create stores the recommendation.
func (r *MemoryRepo) Create(ctx context.Context, rec StoredRecommendation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.ID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.ID] = rec
	return nil
}

// GetByID returns a recommendation by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (StoredRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return StoredRecommendation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return StoredRecommendation{}, ErrNotFound
	}
	return rec, nil
}

// List returns recommendations newest first.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]StoredRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filter = normalizeFilter(filter)

	r.mu.RLock()
	out := make([]StoredRecommendation, 0, len(r.byID))
	for _, rec := range r.byID {
		if filter.UserID != "" && rec.UserID != filter.UserID {
			continue
		}
		out = append(out, rec)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Offset >= len(out) {
		return []StoredRecommendation{}, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[filter.Offset:end], nil
}

// MemoryFeedbackRepo stores feedback in memory.
type MemoryFeedbackRepo struct {
	mu    sync.RWMutex
	items []Feedback
}

// NewMemoryFeedbackRepo constructs a MemoryFeedbackRepo.
func NewMemoryFeedbackRepo() *MemoryFeedbackRepo {
	return &MemoryFeedbackRepo{}
}

// Create records feedback.
func (r *MemoryFeedbackRepo) Create(ctx context.Context, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, fb)
	return nil
}

// Summary counts likes and dislikes for a recommendation.
func (r *MemoryFeedbackRepo) Summary(ctx context.Context, recommendationID string) (FeedbackSummary, error) {
	if err := ctx.Err(); err != nil {
		return FeedbackSummary{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out FeedbackSummary
	for _, fb := range r.items {
		if fb.RecommendationID != recommendationID {
			continue
		}
		if fb.Liked {
			out.Likes++
		} else {
			out.Dislikes++
		}
	}
	return out, nil
}

var (
	_ Repo         = (*MemoryRepo)(nil)
	_ FeedbackRepo = (*MemoryFeedbackRepo)(nil)
)
