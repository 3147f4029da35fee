package plan

type axis int

const (
	axisLifestyle axis = iota
	axisSymptoms
	axisGoals
)

type rule struct {
	axis        axis
	keywords    []string
	suggestions []Suggestion
}

// rules are evaluated in order; every match appends its suggestions.
var rules = []rule{
	{
		axis:     axisLifestyle,
		keywords: []string{"smok"},
		suggestions: []Suggestion{
			{Title: "Smoking reduction", Detail: "Set a quit date, consider nicotine replacement, avoid triggers, and seek support if available."},
		},
	},
	{
		axis:     axisLifestyle,
		keywords: []string{"sedent", "desk", "inactive"},
		suggestions: []Suggestion{
			{Title: "Gentle daily movement", Detail: "Start with 20–30 minutes of brisk walking most days; add light strength 2–3×/week."},
		},
	},
	{
		axis:     axisLifestyle,
		keywords: []string{"active", "sport"},
		suggestions: []Suggestion{
			{Title: "Recovery and hydration", Detail: "Prioritize 7–9h sleep, 2–3L fluids/day, and 20–30g protein post‑workout."},
		},
	},
	{
		axis:     axisLifestyle,
		keywords: []string{"stress", "anxiety"},
		suggestions: []Suggestion{
			{Title: "Stress hygiene", Detail: "Practice 5 minutes of diaphragmatic breathing 2–3×/day and a 10‑minute wind‑down routine."},
		},
	},
	{
		axis:     axisSymptoms,
		keywords: []string{"fatigue", "tired", "low energy"},
		suggestions: []Suggestion{
			{Title: "Hydration and protein", Detail: "Target 2–3L water/day; include protein each meal to stabilize energy."},
			{Title: "Sleep routine", Detail: "Fixed sleep/wake times; no screens 60 minutes before bed; cool, dark room."},
		},
	},
	{
		axis:     axisSymptoms,
		keywords: []string{"headache", "migraine"},
		suggestions: []Suggestion{
			{Title: "Trigger audit", Detail: "Track caffeine, dehydration, missed meals, and screen time as triggers."},
			{Title: "Hydration & breaks", Detail: "Sip water hourly; use 20‑20‑20 screen breaks for eye strain relief."},
		},
	},
	{
		axis:     axisSymptoms,
		keywords: []string{"cough", "sore throat"},
		suggestions: []Suggestion{
			{Title: "Humidification & fluids", Detail: "Humidifier, warm fluids, honey/lemon if not contraindicated."},
			{Title: "Irritant avoidance", Detail: "Avoid smoke, strong fragrances; rest voice as needed."},
		},
	},
	{
		axis:     axisSymptoms,
		keywords: []string{"fever", "chills"},
		suggestions: []Suggestion{
			{Title: "Rest & fluids", Detail: "Rest, hydrate; consider acetaminophen/ibuprofen per label if appropriate."},
			{Title: "Monitor progression", Detail: "Seek care if >3 days, >39°C/102.2°F, severe headache, stiff neck, confusion, or dehydration."},
		},
	},
	{
		axis:     axisSymptoms,
		keywords: []string{"nausea", "vomit", "diarrhea", "stomach"},
		suggestions: []Suggestion{
			{Title: "Electrolyte support", Detail: "Use oral rehydration; small frequent sips."},
			{Title: "Gentle foods", Detail: "BRAT‑style (bananas, rice, applesauce, toast) until symptoms ease."},
		},
	},
	{
		axis:     axisSymptoms,
		keywords: []string{"shortness of breath", "breathless"},
		suggestions: []Suggestion{
			{Title: "Breathing pacing", Detail: "Pursed‑lip breathing and slow activities; avoid overexertion."},
			{Title: "Urgent care flags", Detail: "If chest pain, bluish lips, confusion, or worsening breathlessness, seek urgent care immediately."},
		},
	},
	{
		axis:     axisSymptoms,
		keywords: []string{"chest pain"},
		suggestions: []Suggestion{
			{Title: "Immediate attention", Detail: "If new/worsening chest pain with sweating, nausea, or radiating pain—seek emergency care now."},
		},
	},
	{
		axis:     axisGoals,
		keywords: []string{"sleep", "insomnia"},
		suggestions: []Suggestion{
			{Title: "Bedtime routine", Detail: "Consistent schedule; dim lights; no screens 60 minutes before bed."},
			{Title: "Caffeine timing", Detail: "Avoid caffeine after early afternoon; finish dinner 2–3 hours before bed."},
		},
	},
	{
		axis:     axisGoals,
		keywords: []string{"weight", "lose", "fat"},
		suggestions: []Suggestion{
			{Title: "Plate method", Detail: "Half vegetables, quarter protein, quarter whole grains; limit sugary drinks."},
			{Title: "Activity target", Detail: "150 min/week moderate cardio and 2 strength sessions as tolerated."},
		},
	},
	{
		axis:     axisGoals,
		keywords: []string{"energy"},
		suggestions: []Suggestion{
			{Title: "Meal rhythm", Detail: "3 meals + optional snack; pair complex carbs with protein to avoid crashes."},
			{Title: "Light exposure", Detail: "10–20 minutes morning daylight to anchor circadian rhythm."},
		},
	},
	{
		axis:     axisGoals,
		keywords: []string{"stress", "calm", "anxiety"},
		suggestions: []Suggestion{
			{Title: "Breathing micro‑breaks", Detail: "4‑7‑8 or box breathing 2–3×/day for 3–5 minutes."},
			{Title: "Boundaries", Detail: "Daily 10‑minute buffer to offload tasks and reduce overwhelm."},
		},
	},
	{
		axis:     axisGoals,
		keywords: []string{"heart", "blood pressure"},
		suggestions: []Suggestion{
			{Title: "Sodium audit", Detail: "Limit highly processed foods; target <2,300mg sodium/day unless advised."},
			{Title: "Cardio habit", Detail: "Regular walking, cycling, or swimming most days."},
		},
	},
	{
		axis:     axisGoals,
		keywords: []string{"sugar", "glucose", "diabetes"},
		suggestions: []Suggestion{
			{Title: "Fiber first", Detail: "Prioritize fiber (vegetables, legumes) and pair carbs with protein."},
			{Title: "Walk after meals", Detail: "10–15 minute post‑meal walks improve glucose handling."},
		},
	},
}

const seniorAge = 65

var seniorSuggestion = Suggestion{
	Title:  "Balance & strength",
	Detail: "Light resistance training and balance exercises 2–3×/week as tolerated.",
}

var baseline = []Suggestion{
	{Title: "Hydration baseline", Detail: "Aim for pale-yellow urine; ~2–3L/day unless restricted."},
	{Title: "Regular meals", Detail: "Protein, fiber, and healthy fats in each meal to sustain energy."},
	{Title: "Daily movement", Detail: "Accumulate 7000–10000 steps/day or 150 min/week moderate activity."},
}

// Caution is the red-flag notice attached to every plan.
const Caution = "Seek urgent care for red‑flag symptoms: severe or worsening pain, chest pain, trouble breathing, fainting, confusion, high fever >3 days, or signs of dehydration."

const (
	disclaimer     = "Use these as starting points and adjust with your clinician if needed."
	genericOpening = "Here is a practical health plan tailored to your inputs."
)

// BaselineSuggestions returns a copy of the suggestions every plan falls back to.
func BaselineSuggestions() []Suggestion {
	return append([]Suggestion(nil), baseline...)
}
