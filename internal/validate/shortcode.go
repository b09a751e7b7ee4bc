package validate

import (
	"regexp"
	"strings"
)

const (
	minShortcodeLength = 3
	maxShortcodeLength = 20
)

// ShortcodeResult is the outcome of validating a user-supplied shortcode.
type ShortcodeResult struct {
	Valid bool
	Err   string
}

var (
	shortcodeCharset = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	shortcodeEdges   = regexp.MustCompile(`^[-_]|[-_]$`)
	confusableGlyphs = regexp.MustCompile(`[0O1lI]`)
)

// Route names and common site paths a custom shortcode may not shadow.
var reservedShortcodes = map[string]struct{}{
	"admin": {}, "api": {}, "www": {}, "mail": {}, "ftp": {},
	"localhost": {}, "root": {}, "test": {}, "demo": {}, "sample": {},
	"example": {}, "null": {}, "undefined": {}, "statistics": {},
	"stats": {}, "analytics": {}, "dashboard": {}, "login": {},
	"register": {}, "signup": {}, "signin": {}, "logout": {},
	"profile": {}, "settings": {}, "help": {}, "support": {},
	"contact": {}, "about": {}, "terms": {}, "privacy": {},
	"legal": {}, "copyright": {}, "trademark": {}, "patent": {},
	"license": {},
}

// Matched as substrings, not whole words.
var profanityList = []string{
	"damn", "hell", "crap", "shit", "fuck", "bitch", "ass",
}

// ValidateShortcode checks a user-supplied shortcode against the naming
// policy. Confusable glyphs (0, O, 1, l, I) are rejected outright rather
// than substituted; the generator independently never produces them.
func ValidateShortcode(shortcode string) ShortcodeResult {
	shortcode = strings.TrimSpace(shortcode)

	if shortcode == "" {
		return ShortcodeResult{Err: "Shortcode is required"}
	}

	if len(shortcode) < minShortcodeLength {
		return ShortcodeResult{Err: "Shortcode must be at least 3 characters long"}
	}

	if len(shortcode) > maxShortcodeLength {
		return ShortcodeResult{Err: "Shortcode must be 20 characters or less"}
	}

	if !shortcodeCharset.MatchString(shortcode) {
		return ShortcodeResult{Err: "Shortcode can only contain letters, numbers, hyphens, and underscores"}
	}

	if shortcodeEdges.MatchString(shortcode) {
		return ShortcodeResult{Err: "Shortcode cannot start or end with hyphen or underscore"}
	}

	lower := strings.ToLower(shortcode)

	if _, reserved := reservedShortcodes[lower]; reserved {
		return ShortcodeResult{Err: "This shortcode is reserved and cannot be used"}
	}

	for _, word := range profanityList {
		if strings.Contains(lower, word) {
			return ShortcodeResult{Err: "Shortcode contains inappropriate content"}
		}
	}

	if confusableGlyphs.MatchString(shortcode) {
		return ShortcodeResult{Err: "Shortcode contains confusing characters (0, O, 1, l, I)"}
	}

	return ShortcodeResult{Valid: true}
}
