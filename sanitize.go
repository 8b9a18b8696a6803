package roofcms

import (
	"net/url"
	"regexp"
	"strings"
)

// Input sanitization for values arriving from the public site, chiefly
// the contact form. Stored content is later rendered by the frontend, so
// markup and script-ish fragments are stripped at the door.

var (
	htmlTagRe      = regexp.MustCompile(`<[^>]*>`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	dataProtocolRe = regexp.MustCompile(`(?i)data:`)
	eventAttrRe    = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)
	emailRe        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneCharsRe   = regexp.MustCompile(`[^\d\s+\-()]`)
)

// SanitizeInput strips HTML tags, javascript:/data: protocols, and inline
// event handlers from a plain-text value.
func SanitizeInput(input string) string {
	if input == "" {
		return ""
	}
	s := htmlTagRe.ReplaceAllString(input, "")
	s = jsProtocolRe.ReplaceAllString(s, "")
	s = dataProtocolRe.ReplaceAllString(s, "")
	s = eventAttrRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// SanitizeEmail lowercases and trims an email address and returns "" if
// it does not look like one.
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}
	s := strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(s) {
		return ""
	}
	return s
}

// SanitizePhone keeps only digits, spaces, +, -, and parentheses.
func SanitizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	return strings.TrimSpace(phoneCharsRe.ReplaceAllString(phone, ""))
}

// SanitizeURL returns the URL if it parses and uses http or https, "" otherwise.
func SanitizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}
