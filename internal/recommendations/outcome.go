package recommendations

import (
	"encoding/json"
	"strings"

	"healthplan-backend/internal/plan"
)

// modelItem is one entry of the JSON array the model is asked to return.
type modelItem struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
	Action string `json:"action"`
}

// parseModelOutput tries strict decoding first, then the substring between the
// first '[' and the last ']'. ok is false when neither yields a titled item.
func parseModelOutput(text string) (items []modelItem, kind Source, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, SourceRules, false
	}

	if parsed, err := decodeItems(trimmed); err == nil && hasTitle(parsed) {
		return parsed, SourceLLM, true
	}

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start >= 0 && end > start {
		if parsed, err := decodeItems(trimmed[start : end+1]); err == nil && hasTitle(parsed) {
			return parsed, SourceLenient, true
		}
	}
	return nil, SourceRules, false
}

func decodeItems(raw string) ([]modelItem, error) {
	var items []modelItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func hasTitle(items []modelItem) bool {
	for _, item := range items {
		if strings.TrimSpace(item.Title) != "" {
			return true
		}
	}
	return false
}

func toSuggestions(items []modelItem) []plan.Suggestion {
	out := make([]plan.Suggestion, 0, len(items))
	for _, item := range items {
		action := strings.TrimSpace(item.Action)
		reason := strings.TrimSpace(item.Reason)
		detail := action
		switch {
		case detail == "":
			detail = reason
		case reason != "":
			detail = action + " Why it matters: " + reason
		}
		out = append(out, plan.Suggestion{Title: item.Title, Detail: detail})
	}
	return out
}
