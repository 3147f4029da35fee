package plan

import (
	"strings"
)

const (
	maxSuggestions = 8
	maxTips        = 3
)

// Generate builds a deterministic plan from the input. It never returns an empty
// suggestion list and is safe for concurrent use.
func Generate(input Input) Plan {
	n := normalize(input)
	matched := match(n)
	return assemble(n, withBaseline(matched), input.Count)
}

// Assemble finalizes externally sourced suggestions (for example, parsed model
// output) with the same dedup, caps, tips, message and caution as Generate.
// An empty list falls back to the baseline suggestions.
func Assemble(input Input, suggestions []Suggestion) Plan {
	cleaned := cleanSuggestions(suggestions)
	if len(cleaned) == 0 {
		cleaned = BaselineSuggestions()
	}
	return assemble(normalize(input), cleaned, input.Count)
}

// Message returns the narrative sentence Generate would attach to the input.
func Message(input Input) string {
	return buildMessage(normalize(input))
}

func assemble(n normalized, candidates []Suggestion, count int) Plan {
	final := dedupe(candidates)
	if len(final) > maxSuggestions {
		final = final[:maxSuggestions]
	}
	final = applyCount(final, count)

	tips := make([]string, 0, maxTips)
	for i := 0; i < len(final) && i < maxTips; i++ {
		tips = append(tips, final[i].Title)
	}

	return Plan{
		Message:     buildMessage(n),
		Tips:        tips,
		Suggestions: final,
		Caution:     Caution,
	}
}

func match(n normalized) []Suggestion {
	out := make([]Suggestion, 0, 16)
	for _, r := range rules {
		field := n.field(r.axis)
		if field == "" {
			continue
		}
		if containsAny(field, r.keywords) {
			out = append(out, r.suggestions...)
		}
	}
	if n.age != nil && *n.age >= seniorAge {
		out = append(out, seniorSuggestion)
	}
	return out
}

func containsAny(field string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(field, k) {
			return true
		}
	}
	return false
}

// withBaseline appends baseline entries whose exact title is not already present.
func withBaseline(items []Suggestion) []Suggestion {
	merged := append([]Suggestion(nil), items...)
	for _, b := range baseline {
		found := false
		for _, m := range merged {
			if m.Title == b.Title {
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, b)
		}
	}
	return merged
}

// dedupe keeps the first occurrence per case-insensitive title.
func dedupe(items []Suggestion) []Suggestion {
	seen := make(map[string]bool, len(items))
	out := make([]Suggestion, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(item.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

func applyCount(items []Suggestion, count int) []Suggestion {
	if count <= 0 || len(items) == 0 {
		return items
	}
	n := count
	if n > len(items) {
		n = len(items)
	}
	if n < 1 {
		n = 1
	}
	return items[:n]
}

func cleanSuggestions(items []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		out = append(out, Suggestion{Title: title, Detail: strings.TrimSpace(item.Detail)})
	}
	return out
}

func buildMessage(n normalized) string {
	parts := make([]string, 0, 3)
	if n.symptoms != "" {
		parts = append(parts, "the symptoms you shared ("+n.symptoms+")")
	}
	if n.goals != "" {
		if len(parts) == 0 {
			parts = append(parts, "your goals ("+n.goals+")")
		} else {
			parts = append(parts, "and your goals ("+n.goals+")")
		}
	}
	if n.lifestyle != "" {
		if len(parts) == 0 {
			parts = append(parts, "your lifestyle ("+n.lifestyle+")")
		} else {
			parts = append(parts, "with your lifestyle ("+n.lifestyle+")")
		}
	}

	opening := genericOpening
	if len(parts) > 0 {
		opening = "Based on " + strings.Join(parts, " ") + "."
	}
	return opening + " " + disclaimer
}
