// Package scoring turns classified badges into season points, milestone state
// and prize-tier progress. All season tables are injected through Rules.
package scoring

import (
	"time"

	"arcadetracker/badge"
)

// Milestone is a cumulative checkpoint that grants a one-time bonus.
type Milestone struct {
	Name            string `json:"name"`
	GamesRequired   int    `json:"gamesRequired"`
	TriviaRequired  int    `json:"triviaRequired"`
	SkillRequired   int    `json:"skillRequired"`
	LabFreeRequired int    `json:"labFreeRequired"`
	BonusPoints     int    `json:"bonusPoints"`
}

// PrizeTier is a points threshold unlocking a reward level.
type PrizeTier struct {
	Name        string `json:"name"`
	MinPoints   int    `json:"minPoints"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ActiveBadge is a campaign badge that can be earned this month.
type ActiveBadge struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Type     string `json:"type"`
	Deadline string `json:"deadline"`
	Points   int    `json:"points"`
	Link     string `json:"link"`
}

// Labels are the display markers used when no milestone/tier applies.
type Labels struct {
	NoMilestone    string `json:"noMilestone"`
	AllMilestones  string `json:"allMilestones"`
	NotEligible    string `json:"notEligible"`
	MaxTierReached string `json:"maxTierReached"`
}

// Rules is the complete, read-only configuration of one scoring season.
// Milestones must have non-decreasing thresholds and PrizeTiers ascending
// MinPoints; the engine relies on both orderings.
type Rules struct {
	Label        string        `json:"season"`
	Window       badge.Window  `json:"window"`
	Milestones   []Milestone   `json:"milestones"`
	PrizeTiers   []PrizeTier   `json:"prizeTiers"`
	ActiveBadges []ActiveBadge `json:"activeBadges"`
	Labels       Labels        `json:"labels"`
}

// Clone returns a deep copy, so callers can hand the tables out without
// sharing backing arrays.
func (r Rules) Clone() Rules {
	out := r
	out.Milestones = append([]Milestone(nil), r.Milestones...)
	out.PrizeTiers = append([]PrizeTier(nil), r.PrizeTiers...)
	out.ActiveBadges = append([]ActiveBadge(nil), r.ActiveBadges...)
	return out
}

var defaultLabels = Labels{
	NoMilestone:    "No Milestone Yet",
	AllMilestones:  "Ultimate Achieved!",
	NotEligible:    "Not Eligible Yet",
	MaxTierReached: "Max Tier!",
}

func gameLink(id string) string {
	return "https://www.cloudskillsboost.google/games/" + id
}

// Season1 returns the tables for The Arcade 2026 Season 1 (January to June 2026).
func Season1() Rules {
	return Rules{
		Label:  "The Arcade Season 1 · January, 2026 - June, 2026",
		Window: badge.NewWindow(2026, time.January, 1, 2026, time.June, 30),
		Milestones: []Milestone{
			{Name: "Milestone 1", GamesRequired: 2, TriviaRequired: 2, SkillRequired: 8, LabFreeRequired: 1, BonusPoints: 2},
			{Name: "Milestone 2", GamesRequired: 4, TriviaRequired: 4, SkillRequired: 20, LabFreeRequired: 2, BonusPoints: 8},
			{Name: "Milestone 3", GamesRequired: 6, TriviaRequired: 5, SkillRequired: 30, LabFreeRequired: 3, BonusPoints: 15},
			{Name: "Ultimate", GamesRequired: 8, TriviaRequired: 6, SkillRequired: 42, LabFreeRequired: 4, BonusPoints: 25},
		},
		PrizeTiers: []PrizeTier{
			{Name: "Novice", MinPoints: 25, Description: "Novice tier prize for 25 points", Color: "#60a5fa"},
			{Name: "Trooper", MinPoints: 45, Description: "Trooper tier prize for 45 points", Color: "#a78bfa"},
			{Name: "Ranger", MinPoints: 65, Description: "Ranger tier prize for 65 points", Color: "#34d399"},
			{Name: "Champion", MinPoints: 75, Description: "Champion tier prize for 75 points", Color: "#f59e0b"},
			{Name: "Legend", MinPoints: 95, Description: "Legend tier prize for 95 points", Color: "#f43f5e"},
		},
		ActiveBadges: []ActiveBadge{
			{ID: "1q-valentine-14301", Name: "From Foundations To Wonders", Type: "Game", Deadline: "28/02/26, 11:59 AM", Points: 3, Link: gameLink("1q-valentine-14301")},
			{ID: "1q-valentine-14300", Name: "Skills At The Pitch", Type: "Game", Deadline: "28/02/26, 08:59 PM", Points: 3, Link: gameLink("1q-valentine-14300")},
			{ID: "1q-analytics-25017", Name: "Arcade Adventure: Analytics and Automation", Type: "Game", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-analytics-25017")},
			{ID: "1q-data-06203", Name: "Arcade Voyage: Data Tools", Type: "Game", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-data-06203")},
			{ID: "1q-appdev-39130", Name: "Arcade Trail: Application Development", Type: "Game", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-appdev-39130")},
			{ID: "1q-basecamp-28025", Name: "Arcade Base Camp February 2026", Type: "Game", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-basecamp-28025")},
			{ID: "1q-worknplay-01319", Name: "Work Meets Play: Journeys Made Easy", Type: "Game", Deadline: "01/03/26, 11:59 PM", Points: 1, Link: gameLink("1q-worknplay-01319")},
			{ID: "1q-sprint-02293", Name: "Arcade February 2026 Sprint 1", Type: "Sprint", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-sprint-02293")},
			{ID: "1q-sprint-02285", Name: "Arcade February 2026 Sprint 2", Type: "Sprint", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-sprint-02285")},
			{ID: "1q-sprint-02273", Name: "Arcade February 2026 Sprint 3", Type: "Sprint", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-sprint-02273")},
			{ID: "1q-sprint-02261", Name: "Arcade February 2026 Sprint 4", Type: "Sprint", Deadline: "28/02/26, 11:59 PM", Points: 1, Link: gameLink("1q-sprint-02261")},
		},
		Labels: defaultLabels,
	}
}
