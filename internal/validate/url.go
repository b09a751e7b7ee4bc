package validate

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	maxURLLength = 2048
	minURLLength = 4
)

// URLResult is the outcome of validating a single long URL.
// A rejected URL carries a human-readable Err; an accepted one carries the
// normalized form that all later stages (storage, redirect) operate on.
type URLResult struct {
	Valid         bool
	NormalizedURL string
	Err           string
}

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// Hostnames that resolve to private or local networks. Shortening these
// would turn the service into an open proxy into internal infrastructure.
var privateHostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^localhost$`),
	regexp.MustCompile(`^127\.`),
	regexp.MustCompile(`^192\.168\.`),
	regexp.MustCompile(`^10\.`),
	regexp.MustCompile(`^172\.(1[6-9]|2[0-9]|3[0-1])\.`),
	regexp.MustCompile(`^::1$`),
	regexp.MustCompile(`(?i)^fe80:`),
	regexp.MustCompile(`(?i)\.local$`),
}

// Static heuristics applied to the full (normalized) URL string.
// These are pattern checks, not live reputation lookups.
var suspiciousPatterns = []*regexp.Regexp{
	// Chained redirect parameters
	regexp.MustCompile(`(?i)redirect.*redirect`),
	// Script-injection style query keys
	regexp.MustCompile(`(?i)[?&](exec|eval|script|javascript|vbscript)`),
	// Runs of dots or dashes
	regexp.MustCompile(`\.{4,}|--{4,}`),
	// Base64 data URIs smuggling script content
	regexp.MustCompile(`(?i)data:.*base64.*script`),
	// Heavy percent-encoding, a crude over-encoding heuristic
	regexp.MustCompile(`(?i)%[0-9a-f]{2}.*%[0-9a-f]{2}.*%[0-9a-f]{2}.*%[0-9a-f]{2}`),
}

var maliciousDomains = map[string]struct{}{
	"malware.com":  {},
	"phishing.net": {},
	"spam.org":     {},
	"virus.info":   {},
}

// Free TLDs with a long history of abuse.
var disposableTLDs = []string{".tk", ".ml", ".ga", ".cf"}

var commonTLDs = []string{
	".com", ".org", ".net", ".edu", ".gov", ".mil", ".int",
	".co", ".io", ".ai", ".app", ".dev", ".tech", ".info", ".biz",
	".name", ".pro", ".museum", ".aero", ".coop", ".travel", ".jobs",
	".mobi", ".tel", ".asia", ".cat", ".xxx", ".post", ".geo",
	".local", ".localhost",
	".us", ".uk", ".ca", ".au", ".de", ".fr", ".jp", ".cn", ".in",
	".br", ".mx", ".es", ".it", ".nl", ".se", ".no", ".dk", ".fi",
	".pl", ".ru", ".za", ".kr", ".sg", ".hk",
}

// Dangerous file extensions, matched against the path only. Matching the
// whole URL would swallow hosts ending in .com.
var dangerousExtensionPattern = regexp.MustCompile(`(?i)\.(exe|bat|cmd|scr|pif|com|jar)$`)

// Generic fallback: any suffix of two or more letters is acceptable,
// which makes the explicit list advisory for alphabetic TLDs.
var genericTLDPattern = regexp.MustCompile(`(?i)\.[a-z]{2,}$`)

// ValidateURL normalizes and validates a raw URL string.
//
// The pipeline short-circuits at the first failing check so that exactly one
// error message surfaces. A missing scheme is not an error: https:// is
// prepended before parsing, and every later check (and the returned
// NormalizedURL) operates on the normalized string. The function is a pure
// function of its input.
func ValidateURL(raw string) URLResult {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return URLResult{Err: "URL cannot be empty"}
	}

	if len(raw) > maxURLLength {
		return URLResult{Err: "URL is too long (maximum 2048 characters)"}
	}

	if len(raw) < minURLLength {
		return URLResult{Err: "URL is too short"}
	}

	normalized := raw
	if !schemePattern.MatchString(normalized) {
		normalized = "https://" + normalized
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return URLResult{Err: "Invalid URL format"}
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return URLResult{Err: "Only HTTP and HTTPS protocols are allowed"}
	}

	hostname := u.Hostname()
	if hostname == "" {
		return URLResult{Err: "Invalid hostname"}
	}

	if isPrivateOrLocalhost(hostname) {
		return URLResult{Err: "Private/localhost URLs are not allowed"}
	}

	if hasSuspiciousPattern(normalized) || dangerousExtensionPattern.MatchString(u.Path) {
		return URLResult{Err: "URL contains suspicious patterns"}
	}

	if isMaliciousDomain(hostname) {
		return URLResult{Err: "This domain is flagged as potentially malicious"}
	}

	if !hasValidTLD(hostname) {
		return URLResult{Err: "Invalid top-level domain"}
	}

	if hasExcessiveSubdomains(hostname) {
		return URLResult{Err: "Too many subdomains detected"}
	}

	return URLResult{Valid: true, NormalizedURL: normalized}
}

func isPrivateOrLocalhost(hostname string) bool {
	for _, p := range privateHostPatterns {
		if p.MatchString(hostname) {
			return true
		}
	}

	return false
}

func hasSuspiciousPattern(fullURL string) bool {
	for _, p := range suspiciousPatterns {
		if p.MatchString(fullURL) {
			return true
		}
	}

	return false
}

func isMaliciousDomain(hostname string) bool {
	lower := strings.ToLower(hostname)

	if _, ok := maliciousDomains[lower]; ok {
		return true
	}

	for _, tld := range disposableTLDs {
		if strings.HasSuffix(lower, tld) {
			return true
		}
	}

	return false
}

func hasValidTLD(hostname string) bool {
	lower := strings.ToLower(hostname)

	for _, tld := range commonTLDs {
		if strings.HasSuffix(lower, tld) {
			return true
		}
	}

	return genericTLDPattern.MatchString(hostname)
}

// More than five dot-separated labels is treated as a sign of an
// algorithmically generated domain.
func hasExcessiveSubdomains(hostname string) bool {
	return len(strings.Split(hostname, ".")) > 5
}
