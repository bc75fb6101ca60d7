package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"homeshow/models"
)

var validPropertyTypes = map[string]bool{
	"Multi-Family":  true,
	"Condo":         true,
	"Single Family": true,
	"Townhouse":     true,
}

var (
	digitsRe  = regexp.MustCompile(`\d`)
	numberRe  = regexp.MustCompile(`[\d.]+`)
	nonDigits = regexp.MustCompile(`[^\d]`)
)

// ValidateProfile returns the list of problems preventing a recommendation.
// An empty result means the profile is complete enough to match against.
func ValidateProfile(profile models.CallerProfile) []string {
	var errs []string

	if strings.TrimSpace(profile.Name) == "" {
		errs = append(errs, "Name is required and cannot be empty.")
	}
	if !validPhoneNumber(profile.Phone) {
		errs = append(errs, "Phone number is required and must have 10 to 15 digits.")
	}
	if strings.TrimSpace(profile.Location) == "" {
		errs = append(errs, "Location is required and cannot be empty.")
	}
	if budget := strings.TrimSpace(profile.Budget); budget == "" || !isDigits(budget) {
		errs = append(errs, "Budget is required and must be a numeric value.")
	}
	if !validPropertyTypes[strings.TrimSpace(profile.PropertyType)] {
		errs = append(errs, "Property type must be one of: Multi-Family, Condo, Single Family, Townhouse.")
	}
	intent := strings.ToLower(strings.TrimSpace(profile.BuyOrRent))
	if intent != "buy" && intent != "rent" {
		errs = append(errs, "buyOrRent must be either 'buy' or 'rent'.")
	}

	return errs
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func validPhoneNumber(phone string) bool {
	if phone == "" {
		return false
	}
	n := len(digitsRe.FindAllString(phone, -1))
	return n >= 10 && n <= 15
}

// ApplyDefaults fills unanswered preferences with sensible defaults,
// returning a new profile. The input is never mutated.
func ApplyDefaults(profile models.CallerProfile) models.CallerProfile {
	out := profile

	if out.Sqft == "" {
		out.Sqft = "2000"
	}
	if out.PropertyType == "" {
		out.PropertyType = "Single Family"
	}
	if out.BuyOrRent == "" {
		out.BuyOrRent = "buy"
	}
	if out.Bedrooms == 0 {
		out.Bedrooms = 3
	}
	if out.Bathrooms == 0 {
		out.Bathrooms = 2
	}
	if out.Budget == "" {
		if strings.EqualFold(out.BuyOrRent, "rent") {
			out.Budget = "2000"
		} else {
			out.Budget = "300000"
		}
	}

	return out
}

// NormalizeProfile produces a canonical copy of the profile: E.164 phone,
// numeric strings for budget and square footage, titled location. It is a
// pure transform; the caller's submitted record is left untouched.
func NormalizeProfile(profile models.CallerProfile) models.CallerProfile {
	out := models.CallerProfile{
		Name:         profile.Name,
		Phone:        formatPhone(profile.Phone, "+1"),
		BuyOrRent:    strings.ToLower(strings.TrimSpace(profile.BuyOrRent)),
		PropertyType: strings.TrimSpace(profile.PropertyType),
		Sqft:         strconv.Itoa(normalizeSqft(profile.Sqft)),
		Bedrooms:     profile.Bedrooms,
		Bathrooms:    profile.Bathrooms,
		Budget:       strconv.Itoa(normalizePrice(profile.Budget)),
		Location:     titleCase(strings.TrimSpace(profile.Location)),
	}
	if profile.MustHaves != nil {
		out.MustHaves = append([]string(nil), profile.MustHaves...)
	}
	if profile.GoodToHaves != nil {
		out.GoodToHaves = append([]string(nil), profile.GoodToHaves...)
	}
	return out
}

// normalizePrice understands caller phrasings like "450k", "1.2 million"
// or "300,000" and returns a plain dollar amount. Ranges resolve to the
// larger figure.
func normalizePrice(input string) int {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input), ",", ""))
	matches := numberRe.FindAllString(cleaned, -1)
	if len(matches) == 0 {
		return 0
	}

	multiplier := 1.0
	if strings.Contains(cleaned, "k") {
		multiplier = 1_000
	} else if strings.Contains(cleaned, "m") || strings.Contains(cleaned, "million") {
		multiplier = 1_000_000
	}

	max := 0.0
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if v*multiplier > max {
			max = v * multiplier
		}
	}
	return int(max)
}

func normalizeNumber(input string) float64 {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input), ",", ""))
	m := numberRe.FindString(cleaned)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func normalizeSqft(input string) int {
	return int(normalizeNumber(input))
}

// formatPhone converts a caller-stated phone number to E.164, assuming a
// 10-digit number belongs to the default country.
func formatPhone(phone, defaultCountryCode string) string {
	if phone == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return defaultCountryCode + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	case digits == "":
		return ""
	default:
		return "+" + digits
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ProfileQueryText flattens the normalized profile into the text the
// listings index is queried with.
func ProfileQueryText(p models.CallerProfile) string {
	return fmt.Sprintf("%s, %d bedroom(s), %g bathroom(s), %s budget, in %s, Must haves: %s, Good to haves: %s",
		p.PropertyType,
		p.Bedrooms,
		p.Bathrooms,
		p.Budget,
		p.Location,
		strings.Join(p.MustHaves, ", "),
		strings.Join(p.GoodToHaves, ", "))
}
