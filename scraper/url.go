package scraper

import (
	"net/url"
	"strings"

	"arcadetracker/apperr"
	"arcadetracker/config"
)

// NormalizeURL validates a user-supplied profile URL and returns the URL to
// fetch together with the trimmed input. Alternate hosts are rewritten to the
// canonical one and a locale parameter is added when missing.
func NormalizeURL(raw string, p config.Platform) (fetchURL, clean string, err error) {
	clean = strings.TrimSpace(raw)
	if clean == "" {
		return "", "", apperr.ErrURLRequired
	}
	if !containsAny(clean, p.AcceptedHosts) || !strings.Contains(clean, p.ProfileMarker) {
		return "", "", apperr.ErrInvalidURL
	}

	fetchURL = clean
	if p.AlternateHost != "" && strings.Contains(clean, p.AlternateHost) && !strings.Contains(clean, p.CanonicalHost) {
		fetchURL = strings.Replace(clean, p.AlternateHost, p.CanonicalHost, 1)
	}
	if !strings.HasPrefix(fetchURL, "http://") && !strings.HasPrefix(fetchURL, "https://") {
		fetchURL = "https://" + fetchURL
	}
	if p.Locale != "" && !strings.Contains(fetchURL, "locale=") {
		sep := "?"
		if strings.Contains(fetchURL, "?") {
			sep = "&"
		}
		fetchURL += sep + "locale=" + p.Locale
	}

	u, perr := url.Parse(fetchURL)
	if perr != nil || u.Host == "" {
		return "", "", apperr.ErrInvalidURL
	}
	return fetchURL, clean, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
