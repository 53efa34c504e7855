// Package parser extracts identity fields and earned badges from a public
// profile page. Extraction is heuristic: each field is read by an ordered
// list of strategies and the first non-empty result wins.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"arcadetracker/apperr"
	"arcadetracker/badge"
)

// UnknownName is used when no name strategy matches.
const UnknownName = "Unknown User"

// Page is everything read from one profile page.
type Page struct {
	Name        string
	AvatarURL   string
	League      string
	Rank        *int
	MemberSince string
	Badges      []badge.Raw
}

var privateNotices = []string{"private profile", "this profile is private"}

var (
	leaguePattern = regexp.MustCompile(`(?i)(Diamond|Platinum|Gold|Silver|Bronze)\s+League`)
	rankPattern   = regexp.MustCompile(`(?i)Rank\s*#?\s*(\d[\d,]*)`)
	memberPattern = regexp.MustCompile(`(?i)Member\s+since\s+(\d{4})`)

	earnedWord   = regexp.MustCompile(`(?i)earned`)
	earnedPrefix = regexp.MustCompile(`(?i)^earned\s*`)
	fourDigits   = regexp.MustCompile(`\d{4}`)
)

// badgeHosts are src fragments identifying badge artwork in the fallback scan.
var badgeHosts = []string{"cdn.qwiklabs.com", "storage.googleapis.com", "badges"}

// Parse reads a profile page. It fails with apperr.ErrProfilePrivate when the
// page carries a private-profile notice.
func Parse(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse HTML")
	}

	bodyText := doc.Find("body").Text()
	lower := strings.ToLower(bodyText)
	for _, notice := range privateNotices {
		if strings.Contains(lower, notice) {
			return nil, apperr.ErrProfilePrivate
		}
	}

	page := &Page{
		Name:        firstOf(doc, nameStrategies),
		AvatarURL:   firstOf(doc, avatarStrategies),
		League:      leaguePattern.FindString(bodyText),
		Rank:        parseRank(bodyText),
		MemberSince: submatch(memberPattern, bodyText),
	}
	if page.Name == "" {
		page.Name = UnknownName
	}

	seen := make(map[string]bool)
	page.Badges = badgeCards(doc, seen)
	if len(page.Badges) == 0 {
		page.Badges = badgeImages(doc, seen)
	}
	return page, nil
}

func submatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func parseRank(text string) *int {
	digits := strings.ReplaceAll(submatch(rankPattern, text), ",", "")
	if digits == "" {
		return nil
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil
	}
	return &n
}

// earnedDate reads the date line of a badge card. "Earned Jan 10, 2026"
// yields "Jan 10, 2026"; a line without "earned" is kept only if it has a
// four-digit number in it.
func earnedDate(card *goquery.Selection) string {
	line := textOf(card.Find(".ql-body-medium"))
	switch {
	case earnedWord.MatchString(line):
		return strings.TrimSpace(earnedPrefix.ReplaceAllString(line, ""))
	case fourDigits.MatchString(line):
		return line
	default:
		return ""
	}
}

// claim records name as seen and reports whether it was new and long enough.
func claim(seen map[string]bool, name string, minLen int) bool {
	if runeLen(name) <= minLen {
		return false
	}
	key := strings.ToLower(name)
	if seen[key] {
		return false
	}
	seen[key] = true
	return true
}

// badgeCards is the primary path: one badge per .profile-badge container.
func badgeCards(doc *goquery.Document, seen map[string]bool) []badge.Raw {
	var out []badge.Raw
	doc.Find(".profile-badge").Each(func(_ int, card *goquery.Selection) {
		name := firstOfCard(card, badgeNameStrategies)
		if !claim(seen, name, 2) {
			return
		}
		out = append(out, badge.Raw{
			Name:       name,
			ImageURL:   firstOfCard(card, badgeImageStrategies),
			EarnedDate: earnedDate(card),
		})
	})
	return out
}

// badgeImages is the fallback path: badge artwork identified by its host,
// named by its alt text. No dates are available this way.
func badgeImages(doc *goquery.Document, seen map[string]bool) []badge.Raw {
	var out []badge.Raw
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := attrOf(img, "src")
		if !containsAny(src, badgeHosts) {
			return
		}
		alt := CleanText(attrOf(img, "alt"))
		if !claim(seen, alt, 3) {
			return
		}
		out = append(out, badge.Raw{Name: alt, ImageURL: src})
	})
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
