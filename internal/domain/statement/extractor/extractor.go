// Package extractor recovers the fixed data points of a credit-card
// statement from its plain text. Each field has an ordered chain of
// regular-expression patterns; the first pattern that matches anywhere in
// the text wins, and a capture that fails post-match validation makes the
// field absent rather than erroring. Statements from different issuers
// label these fields differently, so the chains are fallback heuristics,
// not a grammar; pattern order is part of the contract.
package extractor

import (
	"regexp"
	"time"

	"github.com/cardledger/statement-parser/pkg/money"
)

var lastFourPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:card|account)\s*(?:number|ending|#)?\s*(?:in\s+)?[:\s]*(?:x+|\*+)?\s*(\d{4})`),
	regexp.MustCompile(`(?m)(\d{4})\s*$`),
	regexp.MustCompile(`(?i)x{4,}\s*(\d{4})`),
	regexp.MustCompile(`(?i)\*{4,}\s*(\d{4})`),
}

var lastFourValid = regexp.MustCompile(`^\d{4}$`)

// LastFour extracts the last four digits of the card number.
func LastFour(text string) (string, bool) {
	for _, re := range lastFourPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if !lastFourValid.MatchString(m[1]) {
			return "", false
		}
		return m[1], true
	}
	return "", false
}

var periodPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:statement|billing)\s+(?:period|cycle|date)s?[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\s*(?:to|through|-)\s*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)(?:from|period)[:\s]+(\w+\s+\d{1,2},?\s+\d{4})\s+(?:to|through)\s+(\w+\s+\d{1,2},?\s+\d{4})`),
}

// Period extracts the statement billing period. Both endpoint dates must
// parse and be ordered; a range with only one recognizable date, or with
// start after end, is reported absent.
func Period(text string) (start, end time.Time, ok bool) {
	for _, re := range periodPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		s, okS := parseDate(m[1])
		e, okE := parseDate(m[2])
		if !okS || !okE || s.After(e) {
			return time.Time{}, time.Time{}, false
		}
		return s, e, true
	}
	return time.Time{}, time.Time{}, false
}

var totalDuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:total|new)\s+(?:amount\s+)?(?:due|balance)(?:\s+total)?[:\s]+\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)payment\s+due[:\s]+\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)balance[:\s]+\$?\s*([\d,]+\.\d{2})`),
}

// TotalAmountDue extracts the total amount due (or new balance).
func TotalAmountDue(text string) (money.Amount, bool) {
	for _, re := range totalDuePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		a, err := money.Parse(m[1])
		if err != nil {
			return money.Amount{}, false
		}
		return a, true
	}
	return money.Amount{}, false
}

var dueDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:payment\s+)?due\s+(?:date|by)[:\s]+(\w+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(?i)(?:payment\s+)?due\s+(?:date|by)[:\s]+(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?i)pay\s+by[:\s]+(\w+\s+\d{1,2},?\s+\d{4})`),
}

// PaymentDueDate extracts the payment due date.
func PaymentDueDate(text string) (time.Time, bool) {
	for _, re := range dueDatePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, ok := parseDate(m[1]); ok {
			return t, true
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}
