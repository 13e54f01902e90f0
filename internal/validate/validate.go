// Package validate holds the field validators for the contact questions.
// Validators are pure: they block advancement but never error out.
package validate

import (
	"regexp"
	"strings"

	"github.com/skadvisory/findna/internal/catalog"
)

// Result is the outcome of validating a field value.
type Result struct {
	Valid   bool
	Message string
}

var ok = Result{Valid: true}

func fail(msg string) Result {
	return Result{Message: msg}
}

// Func validates a raw input string.
type Func func(value string) Result

var (
	// Letters in any script, plus spaces, hyphens, apostrophes, periods.
	namePattern = regexp.MustCompile(`^[\p{L}\s'\-.]+$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	// A leading country-code shape: optional +, up to two digits, then 65.
	countryCodePattern = regexp.MustCompile(`^\+?\d{0,2}65`)

	nonDigit = regexp.MustCompile(`\D`)
)

// Name checks a person-name field.
func Name(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fail("Please enter a name.")
	}
	if len([]rune(trimmed)) < 2 {
		return fail("Name must be at least 2 characters.")
	}
	if !namePattern.MatchString(trimmed) {
		return fail("Name can only contain letters, spaces, hyphens, and apostrophes.")
	}
	return ok
}

// Email checks an email address.
func Email(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fail("Please enter an email address.")
	}
	if !emailPattern.MatchString(trimmed) {
		return fail("Please enter a valid email address.")
	}
	return ok
}

// Phone checks a Singapore mobile number: exactly 8 digits starting with 8
// or 9, entered without a country code. The +65 heuristic runs against the
// raw trimmed input before digits are stripped; it only fires when stripping
// leaves more than 8 digits, so a hypothetical 8-digit number starting with
// 65 would still pass through to the prefix check. Legacy behavior, kept
// as-is.
func Phone(value string) Result {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fail("Please enter your mobile number.")
	}

	digits := nonDigit.ReplaceAllString(trimmed, "")

	if countryCodePattern.MatchString(trimmed) && len(digits) > 8 {
		return fail("Please enter 8 digits only, without +65.")
	}
	if len(digits) != 8 {
		return fail("Mobile number must be exactly 8 digits.")
	}
	if digits[0] != '8' && digits[0] != '9' {
		return fail("Singapore mobile numbers start with 8 or 9.")
	}
	return ok
}

// For returns the validator for a question, selected by answer key and type.
// Questions without special validation return nil.
func For(q catalog.Question) Func {
	switch {
	case q.Key == "clientName" || q.Key == "friendName":
		return Name
	case q.Type == catalog.TypeEmail || q.Key == "clientEmail":
		return Email
	case q.Type == catalog.TypePhone || q.Key == "clientMobile":
		return Phone
	default:
		return nil
	}
}
