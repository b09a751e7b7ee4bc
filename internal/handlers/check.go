package handlers

import (
	"context"
	"regexp"
	"strings"

	"github.com/serroba/shortspan/internal/validate"
)

// CheckHandler runs the URL validator without shortening, reporting the
// outcome and a heuristic security score.
type CheckHandler struct{}

// NewCheckHandler creates the security check handler.
func NewCheckHandler() *CheckHandler {
	return &CheckHandler{}
}

const (
	scoreBase      = 70
	scoreHTTPS     = 20
	scoreCommonTLD = 10
)

var trustedTLDPattern = regexp.MustCompile(`\.(com|org|edu|gov)$`)

// Check validates a URL and scores it. An invalid URL scores zero; a valid
// one starts at 70, gains 20 for https and 10 for a well-known TLD, capped
// at 100. Levels: High at 90+, Medium at 70+, Low at 50+, Very Low below.
func (h *CheckHandler) Check(_ context.Context, req *CheckRequest) (*CheckResponse, error) {
	result := validate.ValidateURL(req.Body.URL)

	resp := &CheckResponse{}
	resp.Body.Valid = result.Valid

	if !result.Valid {
		resp.Body.Error = result.Err
		resp.Body.Level = levelFor(0)

		return resp, nil
	}

	score := scoreBase

	if strings.HasPrefix(result.NormalizedURL, "https://") {
		score += scoreHTTPS
	}

	if trustedTLDPattern.MatchString(result.NormalizedURL) {
		score += scoreCommonTLD
	}

	if score > 100 {
		score = 100
	}

	resp.Body.NormalizedURL = result.NormalizedURL
	resp.Body.Score = score
	resp.Body.Level = levelFor(score)

	return resp, nil
}

func levelFor(score int) string {
	switch {
	case score >= 90:
		return "High"
	case score >= 70:
		return "Medium"
	case score >= 50:
		return "Low"
	default:
		return "Very Low"
	}
}
