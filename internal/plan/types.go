package plan

// Input is the normalized request for a recommendation plan. Every field is optional.
type Input struct {
	Age       *int
	Lifestyle string
	Symptoms  []string
	Goals     []string
	// Count caps suggestions and tips when positive.
	Count int
}

// Suggestion is a single actionable item. Title is the case-insensitive dedup key.
type Suggestion struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Plan is the generator output.
type Plan struct {
	Message     string       `json:"message"`
	Tips        []string     `json:"tips"`
	Suggestions []Suggestion `json:"suggestions"`
	Caution     string       `json:"caution"`
}

// Recommendation is the legacy projection of a suggestion exposed to older clients.
type Recommendation struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Action string `json:"action"`
}

// Recommendations projects suggestions into the legacy title/reason/action shape.
func (p Plan) Recommendations() []Recommendation {
	out := make([]Recommendation, 0, len(p.Suggestions))
	for _, s := range p.Suggestions {
		out = append(out, Recommendation{Title: s.Title, Reason: s.Detail, Action: s.Detail})
	}
	return out
}
