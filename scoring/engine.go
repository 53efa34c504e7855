package scoring

import (
	"math"

	"golang.org/x/exp/slices"

	"arcadetracker/badge"
)

// Counts are per-category tallies of in-season badges.
type Counts struct {
	Arcade  int
	Trivia  int
	Skill   int
	LabFree int
}

// Points is the season point breakdown.
type Points struct {
	Arcade         int
	Trivia         int
	Skill          int
	Base           int
	MilestoneBonus int
	Total          int
}

// MilestoneState is a milestone evaluated against a set of counts.
type MilestoneState struct {
	Milestone
	Achieved bool `json:"achieved"`
}

// TierState is a prize tier evaluated against a point total.
type TierState struct {
	PrizeTier
	Achieved bool `json:"achieved"`
	Current  bool `json:"current"`
}

// Result is the outcome of scoring one profile.
type Result struct {
	Counts Counts
	Points Points

	Milestones       []MilestoneState
	CurrentMilestone string
	NextMilestone    string

	PrizeTiers        []TierState
	CurrentPrizeTier  string
	NextPrizeTier     string
	PointsToNextPrize int
	PrizeProgress     int
}

// Engine scores badges under a fixed set of Rules. It is safe for concurrent
// use; Score allocates everything it returns.
type Engine struct {
	rules Rules
}

// NewEngine creates an engine over a private copy of rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules.Clone()}
}

// Rules returns a copy of the engine's tables.
func (e *Engine) Rules() Rules {
	return e.rules.Clone()
}

// Score computes counts, points, milestone and prize-tier state. Only badges
// flagged InSeason are counted.
func (e *Engine) Score(badges []badge.Badge) Result {
	counts := Count(badges)

	points := Points{
		Arcade: counts.Arcade,
		Trivia: counts.Trivia,
		Skill:  SkillPoints(counts.Skill),
	}
	points.Base = points.Arcade + points.Trivia + points.Skill

	res := Result{Counts: counts}
	res.Milestones, res.CurrentMilestone, res.NextMilestone, points.MilestoneBonus = e.milestones(counts)
	points.Total = points.Base + points.MilestoneBonus
	res.Points = points

	e.prizeTiers(&res, points.Total)
	return res
}

// Count tallies in-season badges per category. Course badges count as lab-free.
func Count(badges []badge.Badge) Counts {
	var c Counts
	for _, b := range badges {
		if !b.InSeason {
			continue
		}
		switch {
		case b.Type == badge.Arcade:
			c.Arcade++
		case b.Type == badge.Trivia:
			c.Trivia++
		case b.Type == badge.Skill:
			c.Skill++
		case b.Type.LabFree():
			c.LabFree++
		}
	}
	return c
}

// SkillPoints awards one point per two skill badges.
func SkillPoints(skillCount int) int {
	if skillCount <= 0 {
		return 0
	}
	return skillCount / 2
}

func (m Milestone) satisfiedBy(c Counts) bool {
	return c.Arcade >= m.GamesRequired &&
		c.Trivia >= m.TriviaRequired &&
		c.Skill >= m.SkillRequired &&
		c.LabFree >= m.LabFreeRequired
}

func (e *Engine) milestones(c Counts) (states []MilestoneState, current, next string, bonus int) {
	states = make([]MilestoneState, len(e.rules.Milestones))
	current = e.rules.Labels.NoMilestone
	for i, m := range e.rules.Milestones {
		states[i] = MilestoneState{Milestone: m, Achieved: m.satisfiedBy(c)}
		if states[i].Achieved {
			current = m.Name
			bonus = m.BonusPoints
		}
	}

	next = e.rules.Labels.AllMilestones
	if i := slices.IndexFunc(states, func(s MilestoneState) bool { return !s.Achieved }); i >= 0 {
		next = states[i].Name
	}
	return states, current, next, bonus
}

func (e *Engine) prizeTiers(res *Result, total int) {
	tiers := e.rules.PrizeTiers
	res.PrizeTiers = make([]TierState, len(tiers))

	currentIdx := -1
	for i, t := range tiers {
		res.PrizeTiers[i] = TierState{PrizeTier: t, Achieved: total >= t.MinPoints}
		if res.PrizeTiers[i].Achieved {
			currentIdx = i
		}
	}
	if currentIdx >= 0 {
		res.PrizeTiers[currentIdx].Current = true
	}

	nextIdx := slices.IndexFunc(res.PrizeTiers, func(t TierState) bool { return !t.Achieved })

	res.CurrentPrizeTier = e.rules.Labels.NotEligible
	if currentIdx >= 0 {
		res.CurrentPrizeTier = tiers[currentIdx].Name
	}
	res.NextPrizeTier = e.rules.Labels.MaxTierReached
	if nextIdx >= 0 {
		res.NextPrizeTier = tiers[nextIdx].Name
		res.PointsToNextPrize = tiers[nextIdx].MinPoints - total
	}

	res.PrizeProgress = progress(tiers, currentIdx, nextIdx, total)
}

func progress(tiers []PrizeTier, currentIdx, nextIdx, total int) int {
	switch {
	case len(tiers) == 0:
		return 100
	case currentIdx < 0:
		lowest := tiers[0].MinPoints
		if lowest <= 0 {
			return 100
		}
		return percent(total, lowest)
	case nextIdx < 0:
		return 100
	default:
		cur, next := tiers[currentIdx].MinPoints, tiers[nextIdx].MinPoints
		if next <= cur {
			return 100
		}
		return percent(total-cur, next-cur)
	}
}

func percent(part, whole int) int {
	p := int(math.Round(float64(part) / float64(whole) * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
