// internal/web/view.go
package web

import (
	"fmt"
	"html/template"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// descriptionLimit is the rune budget for card descriptions.
const descriptionLimit = 120

// funcMap exposes the view helpers to templates.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"truncate": Truncate,
		"initial":  Initial,
		"rating":   RatingLabel,
		"chf":      FormatCHF,
	}
}

// Truncate shortens s to at most limit runes, appending an ellipsis when it
// was cut. Counts runes, not bytes, so accented text truncates cleanly.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:limit]), " ") + "…"
}

// Initial returns the uppercased first rune of a title, used as the image
// placeholder for items without photos. Blank titles fall back to "?".
func Initial(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r))
}

// RatingLabel renders an average rating for a card. A zero average means
// the item is unrated and must never display as "0.0".
func RatingLabel(average float64) string {
	if average == 0 {
		return "Non noté"
	}
	return fmt.Sprintf("%.1f ★", average)
}

// FormatCHF renders a decimal amount as Swiss francs.
func FormatCHF(amount decimal.Decimal) string {
	return "CHF " + amount.StringFixed(2)
}
