package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"arcadetracker/profile"
)

func init() {
	probeCmd.Flags().String("server", "http://localhost:8000", "base URL of a running arcadetracker server")
	rootCmd.AddCommand(probeCmd)
}

var probeCmd = &cobra.Command{
	Use:   "probe <profile-url>...",
	Short: "Sends profiles to a running server and prints one summary line each.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		server, _ := cmd.Flags().GetString("server")
		client := resty.New().
			SetBaseURL(strings.TrimRight(server, "/")).
			SetTimeout(cfg.Fetch.Timeout + 10*time.Second)

		failed := 0
		for _, u := range args {
			if !probe(cmd, client, u) {
				failed++
			}
		}
		if failed > 0 {
			return errors.Errorf("%d of %d profiles failed", failed, len(args))
		}
		return nil
	},
}

type probeError struct {
	Error string `json:"error"`
}

func probe(cmd *cobra.Command, client *resty.Client, profileURL string) bool {
	w := cmd.OutOrStdout()
	var res profile.Result
	var apiErr probeError
	resp, err := client.R().
		SetContext(cmd.Context()).
		SetBody(map[string]string{"url": profileURL}).
		SetResult(&res).
		SetError(&apiErr).
		Post("/api/scrape")
	if err != nil {
		fmt.Fprintf(w, "%s\n  request failed: %v\n", profileURL, err)
		return false
	}
	if resp.IsError() {
		fmt.Fprintf(w, "%s\n  HTTP %d: %s\n", profileURL, resp.StatusCode(), apiErr.Error)
		return false
	}
	printSummary(w, profileURL, &res)
	return true
}

func printSummary(w io.Writer, profileURL string, res *profile.Result) {
	fmt.Fprintf(w, "%s\n", profileURL)
	fmt.Fprintf(w, "  Name: %s\n", res.Name)
	fmt.Fprintf(w, "  Badges: %d total, %d this season\n", len(res.Badges), len(res.SeasonBadges))
	fmt.Fprintf(w, "  Arcade: %d  Trivia: %d  Skill: %d\n", res.ArcadeCount, res.TriviaCount, res.SkillCount)
	fmt.Fprintf(w, "  Points: %d\n", res.TotalPoints)
	fmt.Fprintf(w, "  Milestone: %s\n", res.CurrentMilestone)
	fmt.Fprintf(w, "  Prize: %s\n", res.CurrentPrizeTier)
}
