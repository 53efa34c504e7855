package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// A strategy extracts one field from a page; "" means it found nothing and
// the next strategy in the list is tried.
type strategy func(doc *goquery.Document) string

// firstOf runs strategies in order and returns the first non-empty result.
func firstOf(doc *goquery.Document, strategies []strategy) string {
	for _, s := range strategies {
		if v := s(doc); v != "" {
			return v
		}
	}
	return ""
}

func selectorText(selector string) strategy {
	return func(doc *goquery.Document) string {
		return textOf(doc.Find(selector))
	}
}

func selectorAttr(selector, attr string) strategy {
	return func(doc *goquery.Document) string {
		return attrOf(doc.Find(selector), attr)
	}
}

// brandWords mark headings that belong to the site chrome rather than the user.
var brandWords = regexp.MustCompile(`(?i)cloud|skills|arcade|google`)

// plainHeading picks the first h1 that looks like a person's name.
func plainHeading(doc *goquery.Document) string {
	var name string
	doc.Find("h1").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := CleanText(s.Text())
		if n := runeLen(t); n > 1 && n < 80 && !brandWords.MatchString(t) {
			name = t
			return false
		}
		return true
	})
	return name
}

// avatarByAlt returns the src of the first image whose alt mentions "avatar".
func avatarByAlt(doc *goquery.Document) string {
	var src string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		alt, _ := s.Attr("alt")
		if !strings.Contains(strings.ToLower(alt), "avatar") {
			return true
		}
		src = attrOf(s, "src")
		return false
	})
	return src
}

var nameStrategies = []strategy{
	selectorText("h1.ql-display-small"),
	selectorText(".public-profile__hero h1"),
	selectorText("[data-profile-name]"),
	plainHeading,
}

var avatarStrategies = []strategy{
	selectorAttr("img.profile-avatar", "src"),
	selectorAttr(".public-profile__hero img", "src"),
	selectorAttr(`[class*="avatar"] img`, "src"),
	avatarByAlt,
}

// A badgeStrategy extracts one field from a single .profile-badge container.
type badgeStrategy func(card *goquery.Selection) string

func firstOfCard(card *goquery.Selection, strategies []badgeStrategy) string {
	for _, s := range strategies {
		if v := s(card); v != "" {
			return v
		}
	}
	return ""
}

var badgeNameStrategies = []badgeStrategy{
	func(card *goquery.Selection) string { return textOf(card.Find(".ql-title-medium")) },
	func(card *goquery.Selection) string {
		return textOf(card.Find(`h3, h4, [class*="title"], [class*="name"]`))
	},
	func(card *goquery.Selection) string { return CleanText(attrOf(card.Find("img"), "alt")) },
	func(card *goquery.Selection) string { return CleanText(attrOf(card, "aria-label")) },
}

var badgeImageStrategies = []badgeStrategy{
	func(card *goquery.Selection) string { return attrOf(card.Find("img"), "src") },
	func(card *goquery.Selection) string { return attrOf(card.Find("img"), "data-src") },
}
