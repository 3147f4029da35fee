package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAge coerces a JSON-ish age value into an integer. Strings keep only their
// digits ("70 years" -> 70). Anything unparseable yields nil.
func ParseAge(v any) *int {
	switch val := v.(type) {
	case nil:
		return nil
	case int:
		return &val
	case int64:
		n := int(val)
		return &n
	case float64:
		if math.IsNaN(val) {
			return nil
		}
		n := clampInt32(val)
		return &n
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil
		}
		return ParseAge(f)
	case string:
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, val)
		if digits == "" {
			return nil
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			if !errors.Is(err, strconv.ErrRange) {
				return nil
			}
			n = math.MaxInt32
		}
		n = clampInt32(float64(n))
		return &n
	default:
		return nil
	}
}

func clampInt32(f float64) int {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

// ParseCount coerces a caller-supplied count. Non-numeric or non-positive values yield 0 (no cap).
func ParseCount(v any) int {
	var f float64
	switch val := v.(type) {
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case float64:
		f = val
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// FlattenList accepts a string or a list of strings and returns the list form.
func FlattenList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		return []string{val}
	case []string:
		return append([]string(nil), val...)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			switch s := item.(type) {
			case nil:
				continue
			case string:
				out = append(out, s)
			default:
				out = append(out, fmt.Sprint(s))
			}
		}
		return out
	default:
		return nil
	}
}

type normalized struct {
	age       *int
	lifestyle string
	symptoms  string
	goals     string
}

func normalize(in Input) normalized {
	return normalized{
		age:       in.Age,
		lifestyle: norm(in.Lifestyle),
		symptoms:  norm(strings.Join(in.Symptoms, ", ")),
		goals:     norm(strings.Join(in.Goals, ", ")),
	}
}

func norm(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

func (n normalized) field(a axis) string {
	switch a {
	case axisLifestyle:
		return n.lifestyle
	case axisSymptoms:
		return n.symptoms
	default:
		return n.goals
	}
}
