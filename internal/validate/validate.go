// Package validate holds the pure input sanitization and classification
// helpers shared by all API handlers. Everything here is structural: no
// network lookups, no persistence.
package validate

import (
	"net/url"
	"regexp"
	"strings"
)

const maxInputLength = 1000

var (
	jsSchemeRe   = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRe  = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	emailRe      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	uuidRe       = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	currencyRe   = regexp.MustCompile(`^[A-Z]{3}$`)
	amazonHosts  = []string{"amazon.", "amzn.to", "a.co"}
)

// Sanitize strips angle brackets, javascript: schemes and inline event
// handler patterns from free-text input, trims whitespace and caps the
// result at 1000 characters. Running it twice yields the same output.
func Sanitize(text string) string {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = jsSchemeRe.ReplaceAllString(s, "")
	s = eventAttrRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if runes := []rune(s); len(runes) > maxInputLength {
		s = strings.TrimSpace(string(runes[:maxInputLength]))
	}
	return s
}

// IsURL reports whether text parses as an absolute http or https URL.
func IsURL(text string) bool {
	u, err := url.Parse(text)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Store classifications for product URLs.
const (
	StoreAmazon = "amazon"
	StoreOther  = "other"
)

// ClassifyStore matches the URL against known Amazon domains and short-links,
// case-insensitively. Anything unrecognized is "other".
func ClassifyStore(rawURL string) string {
	lower := strings.ToLower(rawURL)
	for _, marker := range amazonHosts {
		if strings.Contains(lower, marker) {
			return StoreAmazon
		}
	}
	return StoreOther
}

// IsValidEmail is a structural check only; it does not verify the address exists.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidUUID reports whether s is shaped like a UUID.
func IsValidUUID(s string) bool {
	return uuidRe.MatchString(s)
}

// IsValidCurrency reports whether s is a 3-letter uppercase currency code.
func IsValidCurrency(s string) bool {
	return currencyRe.MatchString(s)
}

// Field pairs a request field name with its raw value for presence checks.
type Field struct {
	Name  string
	Value string
}

// FirstMissing returns the name of the first empty field, or "" when all are
// present. Order is the caller's, so error messages are deterministic.
func FirstMissing(fields []Field) string {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return f.Name
		}
	}
	return ""
}
