// Package badge holds the badge records scraped from a profile and the pure
// rules applied to them: category classification, earned-date parsing and the
// season window.
package badge

import "fmt"

// Raw is a badge as extracted from profile markup, before any interpretation.
type Raw struct {
	Name       string
	ImageURL   string
	EarnedDate string // empty when the page shows no date
}

// Badge is a classified badge.
type Badge struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ImageURL   string   `json:"imageUrl"`
	EarnedDate string   `json:"earnedDate,omitempty"`
	Type       Category `json:"type"`
	Points     int      `json:"points"`
	IsActive   bool     `json:"isActive"`
	IsCampaign bool     `json:"isCampaign"`
	InSeason   bool     `json:"inSeason"`
	Link       string   `json:"link,omitempty"`
}

// New classifies raw and evaluates it against the season window. index is the
// badge's position on the profile and only feeds the ID.
func New(raw Raw, index int, season Window) Badge {
	category := Classify(raw.Name)
	return Badge{
		ID:         fmt.Sprintf("earned-%d", index),
		Name:       raw.Name,
		ImageURL:   raw.ImageURL,
		EarnedDate: raw.EarnedDate,
		Type:       category,
		Points:     category.Points(),
		IsActive:   true,
		IsCampaign: category == Arcade || category == Trivia,
		InSeason:   season.InSeason(raw.EarnedDate),
	}
}

// ClassifyAll turns raw badges into classified ones, preserving order.
func ClassifyAll(raws []Raw, season Window) []Badge {
	out := make([]Badge, 0, len(raws))
	for i, raw := range raws {
		out = append(out, New(raw, i, season))
	}
	return out
}

// SeasonOnly returns a new slice with the badges that count for the season.
func SeasonOnly(badges []Badge) []Badge {
	out := make([]Badge, 0, len(badges))
	for _, b := range badges {
		if b.InSeason {
			out = append(out, b)
		}
	}
	return out
}
