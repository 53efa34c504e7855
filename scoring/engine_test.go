package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"arcadetracker/badge"
)

func seasonBadges(arcade, trivia, skill, labFree int) []badge.Badge {
	var out []badge.Badge
	add := func(n int, c badge.Category) {
		for i := 0; i < n; i++ {
			out = append(out, badge.Badge{
				Name:     fmt.Sprintf("%s %d", c, i),
				Type:     c,
				Points:   c.Points(),
				InSeason: true,
			})
		}
	}
	add(arcade, badge.Arcade)
	add(trivia, badge.Trivia)
	add(skill, badge.Skill)
	add(labFree, badge.Course)
	return out
}

func TestScoreMilestoneOneBelowNovice(t *testing.T) {
	e := NewEngine(Season1())

	res := e.Score(seasonBadges(3, 2, 9, 1))

	require.Equal(t, Counts{Arcade: 3, Trivia: 2, Skill: 9, LabFree: 1}, res.Counts)
	require.Equal(t, 3, res.Points.Arcade)
	require.Equal(t, 2, res.Points.Trivia)
	require.Equal(t, 4, res.Points.Skill)
	require.Equal(t, 9, res.Points.Base)
	require.Equal(t, 2, res.Points.MilestoneBonus)
	require.Equal(t, 11, res.Points.Total)

	require.Equal(t, "Milestone 1", res.CurrentMilestone)
	require.Equal(t, "Milestone 2", res.NextMilestone)
	require.True(t, res.Milestones[0].Achieved)
	require.False(t, res.Milestones[1].Achieved)

	require.Equal(t, "Not Eligible Yet", res.CurrentPrizeTier)
	require.Equal(t, "Novice", res.NextPrizeTier)
	require.Equal(t, 14, res.PointsToNextPrize)
	require.Equal(t, 44, res.PrizeProgress)
	for _, tier := range res.PrizeTiers {
		require.False(t, tier.Achieved)
		require.False(t, tier.Current)
	}
}

func TestScoreExactlyTrooper(t *testing.T) {
	e := NewEngine(Season1())

	// 45 arcade badges, no milestone (trivia missing) -> 45 points
	res := e.Score(seasonBadges(45, 0, 0, 0))
	require.Equal(t, 45, res.Points.Total)

	require.Equal(t, "Trooper", res.CurrentPrizeTier)
	require.Equal(t, "Ranger", res.NextPrizeTier)
	require.Equal(t, 20, res.PointsToNextPrize)
	require.Equal(t, 0, res.PrizeProgress)

	trooper := res.PrizeTiers[1]
	require.Equal(t, "Trooper", trooper.Name)
	require.True(t, trooper.Achieved)
	require.True(t, trooper.Current)
	require.True(t, res.PrizeTiers[0].Achieved)
	require.False(t, res.PrizeTiers[0].Current)
}

func TestScoreTopTier(t *testing.T) {
	e := NewEngine(Season1())

	res := e.Score(seasonBadges(10, 10, 50, 5))
	// 10 + 10 + 25 + Ultimate bonus 25
	require.Equal(t, 70, res.Points.Total)
	require.Equal(t, "Ultimate", res.CurrentMilestone)
	require.Equal(t, "Ultimate Achieved!", res.NextMilestone)
	require.Equal(t, "Ranger", res.CurrentPrizeTier)
	require.Equal(t, 50, res.PrizeProgress)

	res = e.Score(seasonBadges(60, 10, 50, 5))
	require.Equal(t, 120, res.Points.Total)
	require.Equal(t, "Legend", res.CurrentPrizeTier)
	require.Equal(t, "Max Tier!", res.NextPrizeTier)
	require.Equal(t, 0, res.PointsToNextPrize)
	require.Equal(t, 100, res.PrizeProgress)
}

func TestScoreIgnoresOutOfSeason(t *testing.T) {
	e := NewEngine(Season1())
	badges := seasonBadges(2, 2, 0, 0)
	badges[0].InSeason = false

	res := e.Score(badges)
	require.Equal(t, 1, res.Counts.Arcade)
	require.Equal(t, 3, res.Points.Total)
}

func TestLabFreeEarnsNoPoints(t *testing.T) {
	e := NewEngine(Season1())
	res := e.Score(seasonBadges(0, 0, 0, 7))
	require.Equal(t, 7, res.Counts.LabFree)
	require.Equal(t, 0, res.Points.Total)
}

func TestSkillPoints(t *testing.T) {
	for n := 0; n <= 50; n++ {
		require.Equal(t, n/2, SkillPoints(n))
	}
	require.Equal(t, 3, SkillPoints(7))
	require.Equal(t, 0, SkillPoints(0))
	require.Equal(t, 0, SkillPoints(-3))
}

func TestCurrentTierIsUnique(t *testing.T) {
	e := NewEngine(Season1())
	for total := 0; total <= 130; total++ {
		res := e.Score(seasonBadges(total, 0, 0, 0))
		current := 0
		for _, tier := range res.PrizeTiers {
			if tier.Current {
				current++
				require.True(t, tier.Achieved)
				require.Equal(t, res.CurrentPrizeTier, tier.Name)
			}
		}
		require.LessOrEqual(t, current, 1, "total %d", total)
	}
}

func TestMilestonesAreMonotonic(t *testing.T) {
	e := NewEngine(Season1())
	for _, counts := range [][4]int{{2, 2, 8, 1}, {4, 4, 20, 2}, {6, 5, 30, 3}, {8, 6, 42, 4}, {5, 5, 25, 2}} {
		res := e.Score(seasonBadges(counts[0], counts[1], counts[2], counts[3]))
		seenUnachieved := false
		for _, m := range res.Milestones {
			if !m.Achieved {
				seenUnachieved = true
				continue
			}
			require.False(t, seenUnachieved, "milestone %s achieved after an unachieved one", m.Name)
		}
	}

	res := e.Score(seasonBadges(4, 4, 20, 2))
	require.Equal(t, "Milestone 2", res.CurrentMilestone)
	require.Equal(t, 8, res.Points.MilestoneBonus)
	require.True(t, res.Milestones[0].Milestone.satisfiedBy(res.Counts))
}

func TestEngineUsesInjectedRules(t *testing.T) {
	rules := Rules{
		Milestones: []Milestone{{Name: "First", GamesRequired: 1, BonusPoints: 10}},
		PrizeTiers: []PrizeTier{{Name: "Bronze", MinPoints: 5}, {Name: "Silver", MinPoints: 20}},
		Labels:     defaultLabels,
	}
	e := NewEngine(rules)

	res := e.Score(seasonBadges(1, 0, 0, 0))
	require.Equal(t, 11, res.Points.Total)
	require.Equal(t, "First", res.CurrentMilestone)
	require.Equal(t, "Bronze", res.CurrentPrizeTier)
	require.Equal(t, "Silver", res.NextPrizeTier)
	require.Equal(t, 9, res.PointsToNextPrize)
	require.Equal(t, 40, res.PrizeProgress)

	// engine keeps its own copy
	rules.PrizeTiers[0].Name = "mutated"
	require.Equal(t, "Bronze", e.Score(nil).PrizeTiers[0].Name)
}

func TestNoMilestone(t *testing.T) {
	res := NewEngine(Season1()).Score(nil)
	require.Equal(t, "No Milestone Yet", res.CurrentMilestone)
	require.Equal(t, "Milestone 1", res.NextMilestone)
	require.Equal(t, 0, res.Points.Total)
	require.Equal(t, 0, res.PrizeProgress)
}
