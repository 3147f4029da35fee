package recommendations

import (
	"time"

	"healthplan-backend/internal/plan"
)

// Source names the tier that produced a plan.
type Source string

const (
	// SourceLLM means the model output parsed as a JSON array as-is.
	SourceLLM Source = "llm"
	// SourceLenient means the array was recovered from surrounding prose.
	SourceLenient Source = "lenient"
	// SourceRules means the deterministic rules engine produced the plan.
	SourceRules Source = "rules"
)

// Outcome pairs a plan with the tier that produced it.
type Outcome struct {
	Kind Source
	Plan plan.Plan
}

// InputRecord is the persisted form of the request that produced a recommendation.
type InputRecord struct {
	Age       *int     `json:"age"`
	Lifestyle string   `json:"lifestyle"`
	Symptoms  []string `json:"symptoms"`
	Goals     []string `json:"goals"`
	Count     int      `json:"count,omitempty"`
}

// StoredRecommendation is a persisted plan with identity and creation time.
type StoredRecommendation struct {
	ID          string
	UserID      string
	Input       InputRecord
	Suggestions []plan.Suggestion
	Message     string
	Source      Source
	CreatedAt   time.Time
}

// Feedback is a like/dislike recorded against a stored recommendation.
type Feedback struct {
	ID               string
	RecommendationID string
	UserID           string
	Liked            bool
	CreatedAt        time.Time
}

// FeedbackSummary aggregates feedback for one recommendation.
type FeedbackSummary struct {
	Likes    int
	Dislikes int
}

// ListFilter scopes and pages List calls. An empty UserID lists every record.
type ListFilter struct {
	UserID string
	Limit  int
	Offset int
}

func toInputRecord(in plan.Input) InputRecord {
	symptoms := in.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	goals := in.Goals
	if goals == nil {
		goals = []string{}
	}
	return InputRecord{
		Age:       in.Age,
		Lifestyle: in.Lifestyle,
		Symptoms:  symptoms,
		Goals:     goals,
		Count:     in.Count,
	}
}
