package commands

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"arcadetracker/api"
	"arcadetracker/config"
	"arcadetracker/scoring"
	"arcadetracker/scraper"
)

const (
	testProfileURL = "https://www.cloudskillsboost.google/public_profiles/abc"
	testProfile    = `<html><body><h1 class="ql-display-small">Jane Doe</h1><p>Silver League</p>` +
		`<div class="profile-badge"><img src="https://cdn.qwiklabs.com/1.png"><span class="ql-title-medium">Arcade Base Camp February 2026</span><span class="ql-body-medium">Earned Feb 3, 2026</span></div>` +
		`<div class="profile-badge"><img src="https://cdn.qwiklabs.com/2.png"><span class="ql-title-medium">Skills Boost Arcade Trivia February 2026 Week 1</span><span class="ql-body-medium">Earned Feb 4, 2026</span></div>` +
		`</body></html>`
)

type staticFetcher string

func (f staticFetcher) Fetch(context.Context, string) (string, error) { return string(f), nil }

func newTestService() *scraper.Service {
	return scraper.NewService(staticFetcher(testProfile), scoring.Season1(), config.Platforms[config.DefaultPlatform], nil)
}

func newTestCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestPrintResult(t *testing.T) {
	res, err := newTestService().ScrapeURL(context.Background(), testProfileURL)
	require.NoError(t, err)

	var out bytes.Buffer
	printResult(&out, res)

	for _, want := range []string{"Jane Doe", "Silver League", "Milestones", "Prize tiers", "Season badges (2 of 2)", "Active badges"} {
		require.Contains(t, out.String(), want)
	}
}

func TestPrintMarkers(t *testing.T) {
	var out bytes.Buffer
	printMarkers(&out, "profile.html", testProfile)

	require.Contains(t, out.String(), "profile.html")
	require.Contains(t, out.String(), "ql-title-medium")
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(newTestService(), nil), nil, []string{"*"}))
	defer srv.Close()
	client := resty.New().SetBaseURL(srv.URL)

	var out bytes.Buffer
	require.True(t, probe(newTestCommand(&out), client, testProfileURL))
	require.Contains(t, out.String(), "Name: Jane Doe")
	require.Contains(t, out.String(), "Arcade: 1  Trivia: 1  Skill: 0")
	require.Contains(t, out.String(), "Points: 2")

	out.Reset()
	require.False(t, probe(newTestCommand(&out), client, "https://example.com/nope"))
	require.Contains(t, out.String(), "HTTP 400")
	require.Contains(t, out.String(), "valid Google Cloud Skills Boost")
}

func TestProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	require.False(t, probe(newTestCommand(&out), resty.New().SetBaseURL(url), testProfileURL))
	require.Contains(t, out.String(), "request failed")
}

func TestBadgeTotalsIncludeOutOfSeason(t *testing.T) {
	mixed := `<html><body><h1 class="ql-display-small">Jane Doe</h1>` +
		`<div class="profile-badge"><img src="https://cdn.qwiklabs.com/1.png"><span class="ql-title-medium">Arcade Base Camp February 2026</span><span class="ql-body-medium">Earned Feb 3, 2026</span></div>` +
		`<div class="profile-badge"><img src="https://cdn.qwiklabs.com/2.png"><span class="ql-title-medium">Arcade Base Camp November 2025</span><span class="ql-body-medium">Earned Nov 3, 2025</span></div>` +
		`<div class="profile-badge"><img src="https://cdn.qwiklabs.com/3.png"><span class="ql-title-medium">Build a Secure Google Cloud Network</span><span class="ql-body-medium">Earned Oct 9, 2025</span></div>` +
		`</body></html>`
	svc := scraper.NewService(staticFetcher(mixed), scoring.Season1(), config.Platforms[config.DefaultPlatform], nil)
	res, err := svc.ScrapeURL(context.Background(), testProfileURL)
	require.NoError(t, err)
	require.Len(t, res.Badges, 3)
	require.Len(t, res.SeasonBadges, 1)

	var out bytes.Buffer
	printResult(&out, res)
	require.Contains(t, out.String(), "Season badges (1 of 3)")

	out.Reset()
	printSummary(&out, testProfileURL, res)
	require.Contains(t, out.String(), "Badges: 3 total, 1 this season")
}
