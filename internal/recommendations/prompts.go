package recommendations

import (
	"fmt"
	"strconv"
	"strings"

	"healthplan-backend/internal/plan"
)

const defaultPromptCount = 3

func suggestionsPrompt(in plan.Input) string {
	count := in.Count
	if count <= 0 {
		count = defaultPromptCount
	}
	return fmt.Sprintf(`You are a healthcare coach for rural communities. Generate %d concise, actionable, healthcare-focused recommendations that explain WHY each habit matters in daily life (exercise, diet, sleep, hygiene, etc).
Context:
- Age: %s
- Lifestyle: %s
- Symptoms: %s
- Goals: %s

Return only a JSON array: [{"title": string, "reason": string, "action": string}]. Keep titles short and clear.`,
		count, ageText(in.Age), orDefault(in.Lifestyle, "unspecified"), listText(in.Symptoms), listText(in.Goals))
}

func messagePrompt(in plan.Input) string {
	summary := fmt.Sprintf("Age: %s, Lifestyle: %s, Symptoms: %s, Goals: %s",
		ageText(in.Age), orDefault(in.Lifestyle, "unspecified"), listText(in.Symptoms), listText(in.Goals))
	return "Write a 3-5 sentence personalized recommendation for this person.\n" +
		summary + "\n" +
		"Focus on specific, low-cost steps and why they matter in daily rural life. Respond as plain text only."
}

func ageText(age *int) string {
	if age == nil {
		return "unspecified"
	}
	return strconv.Itoa(*age)
}

func listText(items []string) string {
	joined := strings.TrimSpace(strings.Join(items, ", "))
	return orDefault(joined, "none")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return strings.TrimSpace(s)
}
