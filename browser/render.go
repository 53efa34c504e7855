// Package browser renders profile pages in headless Chrome. It is used for
// diagnostics when the static markup looks different from what a browser
// shows.
package browser

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"arcadetracker/apperr"
)

// Options configure a Renderer.
type Options struct {
	Timeout       time.Duration
	UserAgent     string
	ProfileMarker string        // the final location must still contain it
	Settle        time.Duration // wait after load for client-side rendering
}

// Renderer loads a page in a fresh headless browser per call.
type Renderer struct {
	opts Options
	log  *zap.Logger
}

// New creates a Renderer. A nil logger disables logging.
func New(opts Options, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Settle <= 0 {
		opts.Settle = time.Second
	}
	return &Renderer{opts: opts, log: log}
}

func (r *Renderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.WindowSize(1920, 1080),
	)
	if r.opts.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.opts.UserAgent))
	}
	return opts
}

// Fetch renders url and returns the resulting document HTML. It satisfies
// the same contract as the HTTP fetcher so the pipeline can run on rendered
// markup.
func (r *Renderer) Fetch(ctx context.Context, url string) (string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer allocCancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(r.log.Sugar().Debugf))
	defer cancel()

	timeoutCtx, timeoutCancel := context.WithTimeout(browserCtx, r.opts.Timeout)
	defer timeoutCancel()

	var html, location string
	err := chromedp.Run(timeoutCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(r.opts.Settle),
		chromedp.Location(&location),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", apperr.FetchFailed(errors.Wrapf(err, "render %s", url))
	}
	r.log.Debug("rendered page", zap.String("url", url), zap.String("location", location), zap.Int("bytes", len(html)))

	if err := r.checkLocation(location); err != nil {
		return "", err
	}
	return html, nil
}

// checkLocation rejects a final location that left the profile path.
func (r *Renderer) checkLocation(location string) error {
	if r.opts.ProfileMarker != "" && !strings.Contains(location, r.opts.ProfileMarker) {
		return apperr.ErrInvalidOrPrivateProfile
	}
	return nil
}
