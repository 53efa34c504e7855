package badge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"Arcade February 2026 Sprint 1", Trivia},
		{"Arcade Trivia January 2026 Week 2", Trivia},
		{"Arcade Voyage: Data Tools", Arcade},
		{"Arcade Trail: Application Development", Arcade},
		{"Arcade Base Camp February 2026", Arcade},
		{"From Foundations To Wonders", Arcade},
		{"Skills At The Pitch", Arcade},
		{"Work Meets Play: Journeys Made Easy", Arcade},
		{"Level 3: Adventure: Analytics", Arcade},
		{"1q-valentine-14301", Arcade},
		{"3q-spring-2026", Arcade},
		{"x1q-foo", Skill},
		{"Digital Transformation with Google Cloud - Lab-free Course", Course},
		{"Gemini for Data Scientists lab free", Course},
		{"Google Cloud Fundamentals: Core Infrastructure Course", Course},
		{"Course on Skill Badge Prep", Skill},
		{"Build a Secure Google Cloud Network", Skill},
		{"Implement Load Balancing on Compute Engine", Skill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.name))
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	require.Equal(t, Classify("arcade base camp"), Classify("ARCADE BASE CAMP"))
	require.Equal(t, Trivia, Classify("SPRINT 4"))
}

func TestClassifyIsTotalAndDeterministic(t *testing.T) {
	names := []string{"", "x", "???", "trivia arcade course", "Prepare Data for ML APIs on Google Cloud"}
	for _, n := range names {
		first := Classify(n)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, Classify(n))
		}
		require.Contains(t, []Category{Arcade, Trivia, Skill, Course, Other}, first)
	}
}

func TestCategoryPoints(t *testing.T) {
	require.Equal(t, 1, Arcade.Points())
	require.Equal(t, 1, Trivia.Points())
	require.Equal(t, 0, Skill.Points())
	require.Equal(t, 0, Course.Points())
	require.Equal(t, 0, Other.Points())
}

func TestNewBadge(t *testing.T) {
	season := NewWindow(2026, 1, 1, 2026, 6, 30)

	b := New(Raw{Name: "Arcade Voyage: Data Tools", ImageURL: "https://cdn.qwiklabs.com/x.png", EarnedDate: "Feb 3, 2026"}, 4, season)
	require.Equal(t, "earned-4", b.ID)
	require.Equal(t, Arcade, b.Type)
	require.Equal(t, 1, b.Points)
	require.True(t, b.IsCampaign)
	require.True(t, b.IsActive)
	require.True(t, b.InSeason)

	old := New(Raw{Name: "Build a Secure Google Cloud Network", EarnedDate: "Nov 3, 2025"}, 0, season)
	require.Equal(t, Skill, old.Type)
	require.False(t, old.IsCampaign)
	require.False(t, old.InSeason)
}

func TestSeasonOnlyCopies(t *testing.T) {
	season := NewWindow(2026, 1, 1, 2026, 6, 30)
	all := ClassifyAll([]Raw{
		{Name: "Arcade Trail: Networking", EarnedDate: "2026-03-01"},
		{Name: "Old Skill Badge", EarnedDate: "2024-03-01"},
		{Name: "Undated Skill Badge"},
	}, season)

	in := SeasonOnly(all)
	require.Len(t, in, 1)
	require.Equal(t, "Arcade Trail: Networking", in[0].Name)

	in[0].Name = "changed"
	require.Equal(t, "Arcade Trail: Networking", all[0].Name)
}
