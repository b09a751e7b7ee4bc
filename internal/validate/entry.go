package validate

import "strings"

// Entry is one URL submission: the long URL, an optional custom shortcode,
// and an optional validity period in minutes (raw user input).
type Entry struct {
	LongURL         string
	Shortcode       string
	ValidityMinutes string
}

// Field names used as keys in EntryResult.Errors and Warnings.
const (
	FieldLongURL         = "longUrl"
	FieldShortcode       = "shortcode"
	FieldValidityMinutes = "validityMinutes"
)

// EntryResult aggregates per-field errors and warnings for one submission.
// Valid is true iff no field produced an error; warnings never affect it.
type EntryResult struct {
	Valid         bool
	Errors        map[string]string
	Warnings      map[string]string
	NormalizedURL string
	Minutes       int
}

// ValidateEntry validates a complete submission. The three field checks run
// independently rather than short-circuiting, so a single pass surfaces
// every field error at once.
//
// A custom shortcode that passes the naming policy is additionally checked
// against the existing shortcode set; a collision is reported as its own
// error. Expired records keep their shortcodes, so the set covers every
// retained record. The membership check here is advisory only: the store's
// atomic insert is the real uniqueness guard.
func ValidateEntry(entry Entry, existing map[string]struct{}) EntryResult {
	errors := make(map[string]string)
	warnings := make(map[string]string)

	urlResult := ValidateURL(entry.LongURL)
	if !urlResult.Valid {
		errors[FieldLongURL] = urlResult.Err
	}

	if code := strings.TrimSpace(entry.Shortcode); code != "" {
		codeResult := ValidateShortcode(code)

		switch {
		case !codeResult.Valid:
			errors[FieldShortcode] = codeResult.Err
		default:
			if _, taken := existing[code]; taken {
				errors[FieldShortcode] = "This shortcode is already in use"
			}
		}
	}

	periodResult := ValidatePeriod(entry.ValidityMinutes)
	if !periodResult.Valid {
		errors[FieldValidityMinutes] = periodResult.Err
	} else if periodResult.Warning != "" {
		warnings[FieldValidityMinutes] = periodResult.Warning
	}

	return EntryResult{
		Valid:         len(errors) == 0,
		Errors:        errors,
		Warnings:      warnings,
		NormalizedURL: urlResult.NormalizedURL,
		Minutes:       periodResult.Minutes,
	}
}
