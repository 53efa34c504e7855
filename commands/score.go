package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"arcadetracker/profile"
)

func init() {
	scoreCmd.Flags().Bool("json", false, "print the raw JSON result")
	scoreCmd.Flags().Bool("render", false, "load the profile in headless Chrome")
	rootCmd.AddCommand(scoreCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score <profile-url>",
	Short: "Scrapes and scores a single public profile.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		render, _ := cmd.Flags().GetBool("render")

		res, err := newService(render).ScrapeURL(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	return t
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}

func printResult(w io.Writer, res *profile.Result) {
	rank := "-"
	if res.Rank != nil {
		rank = fmt.Sprint(*res.Rank)
	}

	t := newTable(w, res.Name)
	t.AppendRows([]table.Row{
		{"Profile", res.ProfileURL},
		{"League", res.League},
		{"Rank", rank},
		{"Member since", res.MemberSince},
		{"Season", res.Season},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Arcade", fmt.Sprintf("%d badges, %d pts", res.ArcadeCount, res.ArcadePoints)},
		{"Trivia", fmt.Sprintf("%d badges, %d pts", res.TriviaCount, res.TriviaPoints)},
		{"Skill", fmt.Sprintf("%d badges, %d pts", res.SkillCount, res.SkillPoints)},
		{"Lab-free", fmt.Sprintf("%d badges", res.LabFreeCount)},
		{"Milestone bonus", res.MilestoneBonus},
		{"Total", res.TotalPoints},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"Milestone", res.CurrentMilestone},
		{"Next milestone", res.NextMilestone},
		{"Prize tier", res.CurrentPrizeTier},
		{"Next tier", fmt.Sprintf("%s (%d pts to go, %d%%)", res.NextPrizeTier, res.PointsToNextPrize, res.PrizeProgress)},
		{"Response time", fmt.Sprintf("%.2fs", res.ResponseTime)},
	})
	t.Render()

	t = newTable(w, "Milestones")
	t.AppendHeader(table.Row{"Name", "Games", "Trivia", "Skill", "Lab-free", "Bonus", "Achieved"})
	for _, m := range res.Milestones {
		t.AppendRow(table.Row{m.Name, m.GamesRequired, m.TriviaRequired, m.SkillRequired, m.LabFreeRequired, m.BonusPoints, yesNo(m.Achieved)})
	}
	t.Render()

	t = newTable(w, "Prize tiers")
	t.AppendHeader(table.Row{"Name", "Min points", "Achieved", "Current"})
	for _, p := range res.PrizeTiers {
		t.AppendRow(table.Row{p.Name, p.MinPoints, yesNo(p.Achieved), yesNo(p.Current)})
	}
	t.Render()

	t = newTable(w, fmt.Sprintf("Season badges (%d of %d)", len(res.SeasonBadges), len(res.Badges)))
	t.AppendHeader(table.Row{"Name", "Type", "Earned", "Points"})
	for _, b := range res.SeasonBadges {
		t.AppendRow(table.Row{b.Name, b.Type, b.EarnedDate, b.Points})
	}
	t.Render()

	t = newTable(w, "Active badges")
	t.AppendHeader(table.Row{"Name", "Type", "Deadline", "Points", "Earned"})
	for _, a := range res.ActiveBadges {
		t.AppendRow(table.Row{a.Name, a.Type, a.Deadline, a.Points, yesNo(a.EarnedByUser)})
	}
	t.Render()
}
