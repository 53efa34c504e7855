// Package scraper runs the profile pipeline: validate the URL, fetch the
// page, parse it, classify and score the badges and assemble the result.
package scraper

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"arcadetracker/apperr"
	"arcadetracker/badge"
	"arcadetracker/config"
	"arcadetracker/parser"
	"arcadetracker/profile"
	"arcadetracker/scoring"
)

var tracer = otel.Tracer("arcadetracker/scraper")

// Fetcher returns the HTML at a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Service handles profile scoring requests. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	fetcher  Fetcher
	engine   *scoring.Engine
	platform config.Platform
	log      *zap.Logger
	now      func() time.Time
}

// NewService creates a new scraper service.
func NewService(f Fetcher, rules scoring.Rules, platform config.Platform, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		fetcher:  f,
		engine:   scoring.NewEngine(rules),
		platform: platform,
		log:      log,
		now:      time.Now,
	}
}

// Rules returns the season tables the service scores with.
func (s *Service) Rules() scoring.Rules {
	return s.engine.Rules()
}

// Platform returns the URL conventions the service validates against.
func (s *Service) Platform() config.Platform {
	return s.platform
}

// ScrapeURL fetches and scores the profile at rawURL. Errors are either an
// *apperr.Error of an expected kind or an internal failure; a panic in any
// stage is reported as an internal failure.
func (s *Service) ScrapeURL(ctx context.Context, rawURL string) (res *profile.Result, err error) {
	start := s.now()
	ctx, span := tracer.Start(ctx, "scrape")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			res, err = nil, errors.Errorf("panic while scoring profile: %v", r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, apperr.KindOf(err).String())
		}
	}()

	fetchURL, cleanURL, err := NormalizeURL(rawURL, s.platform)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("profile.url", fetchURL))

	html, err := s.fetcher.Fetch(ctx, fetchURL)
	if err != nil {
		return nil, err
	}

	page, err := s.parse(ctx, html)
	if err != nil {
		return nil, err
	}

	rules := s.engine.Rules()
	badges := badge.ClassifyAll(page.Badges, rules.Window)
	score := s.score(ctx, badges)

	res = profile.Assemble(profile.Input{
		ProfileURL: cleanURL,
		Page:       page,
		Badges:     badges,
		Score:      score,
		Rules:      rules,
		Elapsed:    s.now().Sub(start),
	})

	s.log.Info("profile scored",
		zap.String("url", fetchURL),
		zap.String("name", res.Name),
		zap.Int("badges", len(res.Badges)),
		zap.Int("season_badges", len(res.SeasonBadges)),
		zap.Int("total_points", res.TotalPoints),
		zap.String("prize_tier", res.CurrentPrizeTier),
		zap.Float64("response_time", res.ResponseTime))
	return res, nil
}

func (s *Service) parse(ctx context.Context, html string) (*parser.Page, error) {
	_, span := tracer.Start(ctx, "parse")
	defer span.End()

	page, err := parser.Parse(html)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("profile.name", page.Name),
		attribute.Int("badges.raw", len(page.Badges)),
	)
	return page, nil
}

func (s *Service) score(ctx context.Context, badges []badge.Badge) scoring.Result {
	_, span := tracer.Start(ctx, "score")
	defer span.End()

	result := s.engine.Score(badges)
	span.SetAttributes(
		attribute.Int("points.total", result.Points.Total),
		attribute.String("milestone.current", result.CurrentMilestone),
		attribute.String("tier.current", result.CurrentPrizeTier),
	)
	return result
}
