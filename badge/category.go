package badge

import (
	"regexp"
	"strings"
)

// Category is the scoring bucket of a badge.
type Category string

const (
	Arcade Category = "arcade"
	Trivia Category = "trivia"
	Skill  Category = "skill"
	Course Category = "course"
	Other  Category = "other"
)

// Points is the per-badge value of a category. Skill badges are worth nothing
// individually; the scoring engine awards them in pairs.
func (c Category) Points() int {
	switch c {
	case Arcade, Trivia:
		return 1
	default:
		return 0
	}
}

// LabFree reports whether the category counts toward lab-free milestone thresholds.
func (c Category) LabFree() bool {
	return c == Course
}

type rule struct {
	category Category
	match    func(lower string) bool
}

// gameCodePattern matches quarter game codes like "1q-valentine" only at a
// word start, so "x1q-foo" is not a game code.
var gameCodePattern = regexp.MustCompile(`\b[1-4]q-`)

func containsAny(keywords ...string) func(string) bool {
	return func(s string) bool {
		for _, kw := range keywords {
			if strings.Contains(s, kw) {
				return true
			}
		}
		return false
	}
}

// rules are tried in order against the lowercased name; first match wins.
var rules = []rule{
	{Trivia, containsAny("trivia", "sprint")},
	{Arcade, func(s string) bool {
		return containsAny(
			"arcade",
			"voyage",
			"trail:",
			"base camp",
			"foundations to",
			"skills at the",
			"work meets play",
			"adventure:",
		)(s) || gameCodePattern.MatchString(s)
	}},
	{Course, func(s string) bool {
		return containsAny("lab-free", "lab free")(s) ||
			(strings.Contains(s, "course") && !strings.Contains(s, "skill"))
	}},
}

// Classify maps a badge name to its category. The profile page carries no type
// field, so the category is inferred from naming conventions.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, r := range rules {
		if r.match(lower) {
			return r.category
		}
	}
	return Skill
}
