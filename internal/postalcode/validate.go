// Package postalcode validates postal codes and caches provider lookups.
package postalcode

import (
	"regexp"
	"strings"
)

// ValidationResult is the outcome of checking a postal code against its country's format
type ValidationResult string

const (
	Valid         ValidationResult = "VALID"
	Invalid       ValidationResult = "INVALID"
	UnknownFormat ValidationResult = "UNKNOWN_FORMAT"
)

// patterns holds the registered format for each ISO country code
var patterns = map[string]*regexp.Regexp{
	"AR": regexp.MustCompile(`^([A-Za-z]\d{4}[A-Za-z]{3}|\d{4})$`),
	"AT": regexp.MustCompile(`^\d{4}$`),
	"AU": regexp.MustCompile(`^\d{4}$`),
	"BE": regexp.MustCompile(`^\d{4}$`),
	"BR": regexp.MustCompile(`^\d{5}-?\d{3}$`),
	"CA": regexp.MustCompile(`^[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d$`),
	"CH": regexp.MustCompile(`^\d{4}$`),
	"CN": regexp.MustCompile(`^\d{6}$`),
	"DE": regexp.MustCompile(`^\d{5}$`),
	"DK": regexp.MustCompile(`^\d{4}$`),
	"ES": regexp.MustCompile(`^\d{5}$`),
	"FI": regexp.MustCompile(`^\d{5}$`),
	"FR": regexp.MustCompile(`^\d{5}$`),
	"GB": regexp.MustCompile(`^[A-Za-z]{1,2}\d[A-Za-z\d]? ?\d[A-Za-z]{2}$`),
	"IE": regexp.MustCompile(`^[A-Za-z]\d[\dWw] ?[A-Za-z\d]{4}$`),
	"IN": regexp.MustCompile(`^\d{6}$`),
	"IT": regexp.MustCompile(`^\d{5}$`),
	"JP": regexp.MustCompile(`^\d{3}-?\d{4}$`),
	"MX": regexp.MustCompile(`^\d{5}$`),
	"NL": regexp.MustCompile(`^\d{4} ?[A-Za-z]{2}$`),
	"NO": regexp.MustCompile(`^\d{4}$`),
	"NZ": regexp.MustCompile(`^\d{4}$`),
	"PL": regexp.MustCompile(`^\d{2}-\d{3}$`),
	"PT": regexp.MustCompile(`^\d{4}-\d{3}$`),
	"SE": regexp.MustCompile(`^\d{3} ?\d{2}$`),
	"SG": regexp.MustCompile(`^\d{6}$`),
	"US": regexp.MustCompile(`^\d{5}(-\d{4})?$`),
	"ZA": regexp.MustCompile(`^\d{4}$`),
}

// genericPattern is a loose shape check for countries without a registered format
var genericPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\- ]{1,9}$`)

// Validate checks a postal code against the registered format of its country.
// Countries without a registered format yield UnknownFormat, even when the code
// would pass MatchesGenericFormat.
func Validate(countryCode, postalCode string) ValidationResult {
	code := strings.TrimSpace(postalCode)
	if code == "" {
		return Invalid
	}

	pattern, ok := PatternFor(countryCode)
	if !ok {
		return UnknownFormat
	}
	if pattern.MatchString(code) {
		return Valid
	}
	return Invalid
}

// PatternFor returns the registered format of a country
func PatternFor(countryCode string) (*regexp.Regexp, bool) {
	p, ok := patterns[strings.ToUpper(strings.TrimSpace(countryCode))]
	return p, ok
}

// HasPattern reports whether a country has a registered format
func HasPattern(countryCode string) bool {
	_, ok := PatternFor(countryCode)
	return ok
}

// MatchesGenericFormat applies the loose fallback shape check
func MatchesGenericFormat(postalCode string) bool {
	return genericPattern.MatchString(strings.TrimSpace(postalCode))
}

// Format normalises a postal code to its canonical display form.
// Codes that do not validate are returned trimmed and upper-cased.
func Format(countryCode, postalCode string) string {
	code := strings.ToUpper(strings.TrimSpace(postalCode))
	if Validate(countryCode, code) != Valid {
		return code
	}

	compact := strings.NewReplacer(" ", "", "-", "").Replace(code)
	switch strings.ToUpper(countryCode) {
	case "GB", "CA":
		return compact[:len(compact)-3] + " " + compact[len(compact)-3:]
	case "NL":
		return compact[:4] + " " + compact[4:]
	case "SE":
		return compact[:3] + " " + compact[3:]
	case "IE":
		return compact[:3] + " " + compact[3:]
	case "JP":
		return compact[:3] + "-" + compact[3:]
	case "BR":
		return compact[:5] + "-" + compact[5:]
	}
	return code
}
