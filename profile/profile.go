// Package profile assembles the response returned for one scored profile.
package profile

import (
	"math"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"arcadetracker/badge"
	"arcadetracker/parser"
	"arcadetracker/scoring"
)

// ActiveBadge is a catalog badge marked with whether the user already has it.
type ActiveBadge struct {
	scoring.ActiveBadge
	EarnedByUser bool `json:"earnedByUser"`
}

// Result is the full summary for one profile. It owns every slice it holds.
type Result struct {
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	ProfileURL  string `json:"profileUrl"`
	League      string `json:"league"`
	Rank        *int   `json:"rank"`
	MemberSince string `json:"memberSince"`

	Badges       []badge.Badge `json:"badges"`
	SeasonBadges []badge.Badge `json:"seasonBadges"`

	ArcadeCount  int `json:"arcadeCount"`
	TriviaCount  int `json:"triviaCount"`
	SkillCount   int `json:"skillCount"`
	LabFreeCount int `json:"labFreeCount"`

	ArcadePoints int `json:"arcadePoints"`
	TriviaPoints int `json:"triviaPoints"`
	SkillPoints  int `json:"skillPoints"`
	TotalPoints  int `json:"totalPoints"`

	Milestones       []scoring.MilestoneState `json:"milestones"`
	CurrentMilestone string                   `json:"currentMilestone"`
	NextMilestone    string                   `json:"nextMilestone"`
	MilestoneBonus   int                      `json:"milestoneBonus"`

	PrizeTiers        []scoring.TierState `json:"prizeTiers"`
	CurrentPrizeTier  string              `json:"currentPrizeTier"`
	NextPrizeTier     string              `json:"nextPrizeTier"`
	PointsToNextPrize int                 `json:"pointsToNextPrize"`
	PrizeProgress     int                 `json:"prizeProgress"`

	// Older clients read the prize fields under these names.
	CurrentSwagLevel string `json:"currentSwagLevel"`
	NextSwagLevel    string `json:"nextSwagLevel"`
	PointsToNext     int    `json:"pointsToNext"`
	SwagProgress     int    `json:"swagProgress"`

	BadgesEarned          int `json:"badgesEarned"`
	CompletedBadgesCount  int `json:"completedBadgesCount"`
	IncompleteBadgesCount int `json:"incompleteBadgesCount"`

	ActiveBadges []ActiveBadge `json:"activeBadges"`

	ResponseTime float64 `json:"responseTime"`
	Season       string  `json:"season"`
}

// Input is everything the assembler merges.
type Input struct {
	ProfileURL string
	Page       *parser.Page
	Badges     []badge.Badge
	Score      scoring.Result
	Rules      scoring.Rules
	Elapsed    time.Duration
}

// Assemble builds the Result. Nothing in the Result shares memory with in.
func Assemble(in Input) *Result {
	page := in.Page
	if page == nil {
		page = &parser.Page{Name: parser.UnknownName}
	}

	all := cloneOrEmpty(in.Badges)
	season := badge.SeasonOnly(all)
	sc := in.Score

	res := &Result{
		Name:        page.Name,
		AvatarURL:   page.AvatarURL,
		ProfileURL:  in.ProfileURL,
		League:      page.League,
		MemberSince: page.MemberSince,

		Badges:       all,
		SeasonBadges: season,

		ArcadeCount:  sc.Counts.Arcade,
		TriviaCount:  sc.Counts.Trivia,
		SkillCount:   sc.Counts.Skill,
		LabFreeCount: sc.Counts.LabFree,

		ArcadePoints: sc.Points.Arcade,
		TriviaPoints: sc.Points.Trivia,
		SkillPoints:  sc.Points.Skill,
		TotalPoints:  sc.Points.Total,

		Milestones:       cloneOrEmpty(sc.Milestones),
		CurrentMilestone: sc.CurrentMilestone,
		NextMilestone:    sc.NextMilestone,
		MilestoneBonus:   sc.Points.MilestoneBonus,

		PrizeTiers:        cloneOrEmpty(sc.PrizeTiers),
		CurrentPrizeTier:  sc.CurrentPrizeTier,
		NextPrizeTier:     sc.NextPrizeTier,
		PointsToNextPrize: sc.PointsToNextPrize,
		PrizeProgress:     sc.PrizeProgress,

		CurrentSwagLevel: sc.CurrentPrizeTier,
		NextSwagLevel:    sc.NextPrizeTier,
		PointsToNext:     sc.PointsToNextPrize,
		SwagProgress:     sc.PrizeProgress,

		BadgesEarned:          len(season),
		CompletedBadgesCount:  len(season),
		IncompleteBadgesCount: len(all) - len(season),

		ActiveBadges: MarkEarned(in.Rules.ActiveBadges, all),
		ResponseTime: Seconds(in.Elapsed),
		Season:       in.Rules.Label,
	}
	if page.Rank != nil {
		rank := *page.Rank
		res.Rank = &rank
	}
	return res
}

// MarkEarned flags each catalog badge whose name matches an earned badge,
// ignoring case and surrounding spaces.
func MarkEarned(catalog []scoring.ActiveBadge, earned []badge.Badge) []ActiveBadge {
	names := make(map[string]bool, len(earned))
	for _, b := range earned {
		names[normalizeName(b.Name)] = true
	}
	out := make([]ActiveBadge, 0, len(catalog))
	for _, ab := range catalog {
		out = append(out, ActiveBadge{ActiveBadge: ab, EarnedByUser: names[normalizeName(ab.Name)]})
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Seconds converts d to seconds rounded to two decimals.
func Seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

func cloneOrEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return slices.Clone(s)
}
