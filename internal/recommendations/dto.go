package recommendations

import (
	"time"

	"healthplan-backend/internal/plan"
)

// GenerateRequest is the loosely typed request body. Age and count may be
// numbers or strings; symptoms and goals may be a string or a list.
type GenerateRequest struct {
	Age       any `json:"age"`
	Lifestyle any `json:"lifestyle"`
	Symptoms  any `json:"symptoms"`
	Goals     any `json:"goals"`
	Count     any `json:"count"`
}

// ToInput coerces the request into a plan input.
func (r GenerateRequest) ToInput() plan.Input {
	lifestyle, _ := r.Lifestyle.(string)
	return plan.Input{
		Age:       plan.ParseAge(r.Age),
		Lifestyle: lifestyle,
		Symptoms:  plan.FlattenList(r.Symptoms),
		Goals:     plan.FlattenList(r.Goals),
		Count:     plan.ParseCount(r.Count),
	}
}

// FeedbackRequest uses pointers so missing fields can be told apart from zero values.
type FeedbackRequest struct {
	RecommendationID *string `json:"recommendation_id"`
	Liked            *bool   `json:"liked"`
}

// GenerateResponse is returned by the generate route.
type GenerateResponse struct {
	OK              bool                  `json:"ok"`
	ID              string                `json:"id,omitempty"`
	Source          Source                `json:"source"`
	Message         string                `json:"message"`
	Tips            []string              `json:"tips"`
	Suggestions     []plan.Suggestion     `json:"suggestions"`
	Recommendations []plan.Recommendation `json:"recommendations"`
	Caution         string                `json:"caution"`
	Warning         string                `json:"warning,omitempty"`
}

// RecommendationDTO is the wire form of a stored recommendation.
type RecommendationDTO struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id,omitempty"`
	Input       InputRecord       `json:"input"`
	Suggestions []plan.Suggestion `json:"suggestions"`
	Message     string            `json:"message"`
	Source      Source            `json:"source"`
	CreatedAt   time.Time         `json:"created_at"`
	Feedback    *FeedbackDTO      `json:"feedback,omitempty"`
}

// FeedbackDTO summarizes likes and dislikes.
type FeedbackDTO struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

func toGenerateResponse(res Result) GenerateResponse {
	p := res.Plan
	return GenerateResponse{
		OK:              true,
		ID:              res.Record.ID,
		Source:          res.Kind,
		Message:         p.Message,
		Tips:            nonNilStrings(p.Tips),
		Suggestions:     nonNilSuggestions(p.Suggestions),
		Recommendations: p.Recommendations(),
		Caution:         p.Caution,
		Warning:         res.Warning,
	}
}

func toRecommendationDTO(rec StoredRecommendation) RecommendationDTO {
	return RecommendationDTO{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Input:       rec.Input,
		Suggestions: nonNilSuggestions(rec.Suggestions),
		Message:     rec.Message,
		Source:      rec.Source,
		CreatedAt:   rec.CreatedAt,
	}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func nonNilSuggestions(in []plan.Suggestion) []plan.Suggestion {
	if in == nil {
		return []plan.Suggestion{}
	}
	return in
}
