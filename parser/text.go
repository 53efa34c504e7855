package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// CleanText collapses runs of whitespace to single spaces and trims the ends.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// textOf returns the cleaned text of the first element in sel.
func textOf(sel *goquery.Selection) string {
	return CleanText(sel.First().Text())
}

// attrOf returns the trimmed value of attr on the first element in sel.
func attrOf(sel *goquery.Selection, attr string) string {
	v, _ := sel.First().Attr(attr)
	return strings.TrimSpace(v)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
