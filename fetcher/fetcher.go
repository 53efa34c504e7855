// Package fetcher downloads public profile pages, following redirects by hand
// so every hop can be checked against the profile path.
package fetcher

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"arcadetracker/apperr"
)

var tracer = otel.Tracer("arcadetracker/fetcher")

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultReferer   = "https://www.cloudskillsboost.google/"
)

// Options tune a Fetcher. Zero values fall back to DefaultOptions.
type Options struct {
	Timeout       time.Duration
	MaxRedirects  int
	MaxBodyBytes  int64
	UserAgent     string
	Referer       string
	ProfileMarker string // every redirect target must contain it
}

// DefaultOptions returns the settings used in production.
func DefaultOptions() Options {
	return Options{
		Timeout:       20 * time.Second,
		MaxRedirects:  8,
		MaxBodyBytes:  8 << 20,
		UserAgent:     DefaultUserAgent,
		Referer:       DefaultReferer,
		ProfileMarker: "public_profiles",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Timeout <= 0 {
		o.Timeout = d.Timeout
	}
	if o.MaxRedirects <= 0 {
		o.MaxRedirects = d.MaxRedirects
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = d.MaxBodyBytes
	}
	if o.UserAgent == "" {
		o.UserAgent = d.UserAgent
	}
	if o.Referer == "" {
		o.Referer = d.Referer
	}
	if o.ProfileMarker == "" {
		o.ProfileMarker = d.ProfileMarker
	}
	return o
}

// StepKind tags the outcome of a single request.
type StepKind int

const (
	StepHTML StepKind = iota
	StepRedirect
)

// Step is the result of one request in the redirect loop: either the final
// page body or the next URL to request.
type Step struct {
	Kind StepKind
	Body string
	Next *url.URL
}

// Fetcher issues browser-like GET requests. It is safe for concurrent use and
// keeps no per-request state.
type Fetcher struct {
	client *resty.Client
	opts   Options
	log    *zap.Logger
}

// New creates a Fetcher. A nil logger disables logging.
func New(opts Options, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	opts = opts.withDefaults()

	client := resty.New().
		SetLogger(log.Sugar()).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetHeaders(map[string]string{
			"User-Agent":      opts.UserAgent,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.9",
			"Accept-Encoding": "gzip, deflate, br, zstd",
			"Cache-Control":   "no-cache",
			"Referer":         opts.Referer,
		})

	return &Fetcher{client: client, opts: opts, log: log}
}

// Options returns the effective settings.
func (f *Fetcher) Options() Options {
	return f.opts
}

// Fetch returns the HTML of rawURL after following at most MaxRedirects
// redirects. Every failure is an *apperr.Error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	ctx, span := tracer.Start(ctx, "fetch", trace.WithAttributes(attribute.String("url", rawURL)))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	body, err := f.follow(ctx, rawURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperr.KindOf(err).String())
		return "", err
	}
	span.SetAttributes(attribute.Int("body.bytes", len(body)))
	return body, nil
}

func (f *Fetcher) follow(ctx context.Context, rawURL string) (string, error) {
	current, err := url.Parse(rawURL)
	if err != nil {
		return "", apperr.ErrInvalidURL
	}

	for hop := 0; hop < f.opts.MaxRedirects; hop++ {
		step, err := f.step(ctx, current)
		if err != nil {
			return "", err
		}
		if step.Kind == StepHTML {
			return step.Body, nil
		}

		f.log.Debug("following redirect",
			zap.Int("hop", hop+1),
			zap.String("from", current.String()),
			zap.String("to", step.Next.String()))
		trace.SpanFromContext(ctx).AddEvent("redirect", trace.WithAttributes(
			attribute.Int("hop", hop+1),
			attribute.String("location", step.Next.String()),
		))
		current = step.Next
	}
	return "", apperr.ErrTooManyRedirects
}

// step issues one GET and classifies the response.
func (f *Fetcher) step(ctx context.Context, current *url.URL) (Step, error) {
	res, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(current.String())
	if err != nil {
		return Step{}, apperr.FetchFailed(errors.Wrapf(err, "GET %s", current.Redacted()))
	}
	raw := res.RawBody()
	if raw != nil {
		defer raw.Close()
	}

	status := res.StatusCode()
	f.log.Debug("profile response", zap.String("url", current.String()), zap.Int("status", status))

	switch {
	case status >= 300 && status < 400:
		next, err := f.resolve(current, res.Header().Get("Location"))
		if err != nil {
			return Step{}, err
		}
		return Step{Kind: StepRedirect, Next: next}, nil
	case status < 200 || status >= 300:
		return Step{}, apperr.Upstream(status)
	}

	if raw == nil {
		return Step{Kind: StepHTML}, nil
	}
	body, err := decodeBody(raw, res.Header().Get("Content-Encoding"), f.opts.MaxBodyBytes)
	if err != nil {
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return Step{}, apperr.FetchFailed(errors.Wrapf(err, "reading %s", current.Redacted()))
	}
	return Step{Kind: StepHTML, Body: string(body)}, nil
}

// resolve turns a Location header into the next URL, rejecting targets that
// leave the profile path.
func (f *Fetcher) resolve(current *url.URL, location string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimSpace(location))
	if err != nil {
		return nil, apperr.ErrInvalidOrPrivateProfile
	}
	next := current.ResolveReference(ref)
	if !strings.Contains(next.String(), f.opts.ProfileMarker) {
		return nil, apperr.ErrInvalidOrPrivateProfile
	}
	return next, nil
}
