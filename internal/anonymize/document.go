// Package anonymize masks identity documents before they leave the request scope.
package anonymize

import (
	"strings"
	"unicode"
)

const (
	maskChar       = '*'
	visibleSuffix  = 3
	personalDigits = 11
	companyDigits  = 14

	personalPrefix = "***.***.***-"
	companyPrefix  = "**.***.***/****-"
)

// Document returns the display form of a personal (11 digits) or company
// (14 digits) tax document with only its last three digits visible.
// Any other digit count is masked without grouping. Non-digit characters
// in raw are ignored. The result never contains more than three digits.
func Document(raw string) string {
	digits := onlyDigits(raw)
	if digits == "" {
		return ""
	}

	switch len(digits) {
	case personalDigits:
		return personalPrefix + suffix(digits)
	case companyDigits:
		return companyPrefix + suffix(digits)
	}

	if len(digits) < visibleSuffix {
		return strings.Repeat(string(maskChar), len(digits))
	}
	return strings.Repeat(string(maskChar), len(digits)-visibleSuffix) + suffix(digits)
}

func suffix(digits string) string {
	return digits[len(digits)-visibleSuffix:]
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
