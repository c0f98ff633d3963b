// Package issuer detects the card-issuing institution from statement text.
// Detection is keyword-based: each supported issuer has a set of
// case-insensitive phrases as they appear in statement headers.
package issuer

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Issuer is one of the supported card-issuing institutions.
type Issuer string

const (
	AmericanExpress Issuer = "American Express"
	Chase           Issuer = "Chase"
	Citibank        Issuer = "Citibank"
	CapitalOne      Issuer = "Capital One"
	BankOfAmerica   Issuer = "Bank of America"
	Unknown         Issuer = "Unknown"
)

type keywordEntry struct {
	keyword string
	issuer  Issuer
}

// keywordTable maps statement-header phrases to issuers. All keywords are
// lowercase; matching is case-insensitive substring. Slice order only breaks
// ties between keywords found at the same text position.
var keywordTable = []keywordEntry{
	{"american express", AmericanExpress},
	{"amex", AmericanExpress},
	{"jpmorgan chase", Chase},
	{"chase", Chase},
	{"citibank", Citibank},
	{"citi card", Citibank},
	{"capital one", CapitalOne},
	{"bank of america", BankOfAmerica},
	{"bankamericard", BankOfAmerica},
}

// Classifier scans statement text for issuer keywords. A single Aho-Corasick
// pass screens which keywords occur at all; the winner is the keyword whose
// first occurrence is earliest in the text, regardless of table order.
type Classifier struct {
	matcher *ahocorasick.Matcher
	entries []keywordEntry
}

// NewClassifier builds a classifier over the built-in keyword table.
func NewClassifier() *Classifier {
	entries := keywordTable
	patterns := make([][]byte, len(entries))
	for i, e := range entries {
		patterns[i] = []byte(e.keyword)
	}
	return &Classifier{
		matcher: ahocorasick.NewMatcher(patterns),
		entries: entries,
	}
}

// Classify returns the issuer whose keyword occurs earliest in the text,
// or Unknown when no keyword occurs. It never fails.
func (c *Classifier) Classify(text string) Issuer {
	if text == "" {
		return Unknown
	}
	lower := strings.ToLower(text)

	hits := c.matcher.Match([]byte(lower))
	if len(hits) == 0 {
		return Unknown
	}

	best := Unknown
	bestPos := -1
	for _, idx := range hits {
		if idx < 0 || idx >= len(c.entries) {
			continue
		}
		e := c.entries[idx]
		pos := strings.Index(lower, e.keyword)
		if pos < 0 {
			continue
		}
		if bestPos == -1 || pos < bestPos {
			bestPos = pos
			best = e.issuer
		}
	}
	return best
}

// Known reports whether the issuer is one of the supported institutions.
func (i Issuer) Known() bool {
	return i != Unknown && i != ""
}

// Issuers returns the closed set of supported issuer labels.
func Issuers() []Issuer {
	return []Issuer{AmericanExpress, Chase, Citibank, CapitalOne, BankOfAmerica}
}
