// Package normalizer cleans transaction descriptions as they appear on
// card statements and attaches a recognizable merchant name where one of
// the known patterns applies.
package normalizer

import (
	"regexp"
	"strings"
)

// MerchantInfo contains the normalized form of a raw statement description.
type MerchantInfo struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	Category   string `json:"category,omitempty"`
}

type merchantPattern struct {
	pattern  *regexp.Regexp
	name     string
	category string
}

// DescriptionSanitizer normalizes statement descriptions and recognizes
// common US merchants.
type DescriptionSanitizer struct {
	patterns []merchantPattern
}

// NewDescriptionSanitizer creates a sanitizer with the built-in patterns.
func NewDescriptionSanitizer() *DescriptionSanitizer {
	return &DescriptionSanitizer{patterns: defaultMerchantPatterns()}
}

// Sanitize cleans a raw description and resolves it to a known merchant
// when possible. Unrecognized descriptions fall back to title case.
func (s *DescriptionSanitizer) Sanitize(raw string) MerchantInfo {
	result := MerchantInfo{Original: raw}

	cleaned := cleanDescription(raw)
	for _, p := range s.patterns {
		if p.pattern.MatchString(cleaned) {
			result.Normalized = p.name
			result.Category = p.category
			return result
		}
	}

	result.Normalized = titleCase(cleaned)
	return result
}

// AddPattern registers a custom merchant pattern, tried after the built-ins.
func (s *DescriptionSanitizer) AddPattern(pattern, name, category string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	s.patterns = append(s.patterns, merchantPattern{pattern: re, name: name, category: category})
	return nil
}

// processorPrefixes are card-network and payment-processor artifacts that
// precede the merchant name on activity lines.
var processorPrefixes = []string{
	"SQ *", "SQ*", "TST* ", "TST *", "PAYPAL *", "PP*",
	"POS ", "PURCHASE ", "DEBIT ", "CHECKCARD ", "RECURRING ",
}

var (
	trailingRefRe  = regexp.MustCompile(`\s+#?\d{4,}$`)
	trailingDateRe = regexp.MustCompile(`\s+\d{1,2}/\d{1,2}/?$`)
	multiSpaceRe   = regexp.MustCompile(`\s+`)
)

// cleanDescription removes processor noise from a statement description.
func cleanDescription(raw string) string {
	result := strings.TrimSpace(raw)

	upper := strings.ToUpper(result)
	for _, prefix := range processorPrefixes {
		if strings.HasPrefix(upper, prefix) {
			result = strings.TrimSpace(result[len(prefix):])
			break
		}
	}

	result = trailingRefRe.ReplaceAllString(result, "")
	result = trailingDateRe.ReplaceAllString(result, "")
	result = multiSpaceRe.ReplaceAllString(result, " ")

	return strings.TrimSpace(result)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(string(word[0])) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

// defaultMerchantPatterns covers merchants common on US card statements.
func defaultMerchantPatterns() []merchantPattern {
	return []merchantPattern{
		{regexp.MustCompile(`(?i)AMAZON|AMZN`), "Amazon", "Shopping"},
		{regexp.MustCompile(`(?i)WAL-?MART|WM\s*SUPERCENTER`), "Walmart", "Groceries"},
		{regexp.MustCompile(`(?i)TARGET`), "Target", "Shopping"},
		{regexp.MustCompile(`(?i)COSTCO`), "Costco", "Groceries"},
		{regexp.MustCompile(`(?i)WHOLE\s*FOODS|WHOLEFDS`), "Whole Foods", "Groceries"},
		{regexp.MustCompile(`(?i)TRADER\s*JOE`), "Trader Joe's", "Groceries"},
		{regexp.MustCompile(`(?i)STARBUCKS`), "Starbucks", "Food & Drink"},
		{regexp.MustCompile(`(?i)MC\s*DONALD|MCDONALD`), "McDonald's", "Food & Drink"},
		{regexp.MustCompile(`(?i)CHIPOTLE`), "Chipotle", "Food & Drink"},
		{regexp.MustCompile(`(?i)UBER\s*EATS`), "Uber Eats", "Food & Drink"},
		{regexp.MustCompile(`(?i)DOORDASH|DD\s*\*DOORDASH`), "DoorDash", "Food & Drink"},
		{regexp.MustCompile(`(?i)\bUBER\b`), "Uber", "Transport"},
		{regexp.MustCompile(`(?i)\bLYFT\b`), "Lyft", "Transport"},
		{regexp.MustCompile(`(?i)SHELL\s*OIL|\bSHELL\b`), "Shell", "Gas"},
		{regexp.MustCompile(`(?i)CHEVRON`), "Chevron", "Gas"},
		{regexp.MustCompile(`(?i)EXXON|MOBIL`), "ExxonMobil", "Gas"},
		{regexp.MustCompile(`(?i)NETFLIX`), "Netflix", "Entertainment"},
		{regexp.MustCompile(`(?i)SPOTIFY`), "Spotify", "Entertainment"},
		{regexp.MustCompile(`(?i)HULU`), "Hulu", "Entertainment"},
		{regexp.MustCompile(`(?i)APPLE\.COM|APPLE\s*BILL`), "Apple", "Entertainment"},
		{regexp.MustCompile(`(?i)DELTA\s*AIR`), "Delta Air Lines", "Travel"},
		{regexp.MustCompile(`(?i)UNITED\s*AIR`), "United Airlines", "Travel"},
		{regexp.MustCompile(`(?i)SOUTHWES?T\s*AIR|SOUTHWESTAIR`), "Southwest Airlines", "Travel"},
		{regexp.MustCompile(`(?i)MARRIOTT`), "Marriott", "Travel"},
		{regexp.MustCompile(`(?i)WALGREENS`), "Walgreens", "Health"},
		{regexp.MustCompile(`(?i)CVS/?PHARM|CVS\b`), "CVS", "Health"},
		{regexp.MustCompile(`(?i)HOME\s*DEPOT`), "Home Depot", "Home"},
		{regexp.MustCompile(`(?i)LOWE'?S`), "Lowe's", "Home"},
	}
}
