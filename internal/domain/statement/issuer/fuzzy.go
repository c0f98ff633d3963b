package issuer

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Keywords shorter than this are excluded from fuzzy matching; short tokens
// like "amex" or "chase" sit within edit distance of too many English words.
const minFuzzyKeywordLen = 8

// ClassifyFuzzy behaves like Classify but, when no keyword occurs verbatim,
// retries with bounded Levenshtein matching over word windows of the text.
// This catches extraction artifacts such as "Captial One" or "Citiibank".
// maxDistance bounds the edit distance per keyword; values above 2 are
// clamped to 2 to keep false positives out.
func (c *Classifier) ClassifyFuzzy(text string, maxDistance int) Issuer {
	if iss := c.Classify(text); iss != Unknown {
		return iss
	}
	if maxDistance <= 0 {
		return Unknown
	}
	if maxDistance > 2 {
		maxDistance = 2
	}

	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return Unknown
	}

	best := Unknown
	bestWindow := -1
	bestDistance := maxDistance + 1

	for _, e := range c.entries {
		if len(e.keyword) < minFuzzyKeywordLen {
			continue
		}
		span := len(strings.Fields(e.keyword))
		for i := 0; i+span <= len(words); i++ {
			candidate := strings.Join(words[i:i+span], " ")
			d := fuzzy.LevenshteinDistance(candidate, e.keyword)
			if d > maxDistance {
				continue
			}
			// Earliest window wins; distance breaks ties within a window.
			if bestWindow == -1 || i < bestWindow || (i == bestWindow && d < bestDistance) {
				bestWindow = i
				bestDistance = d
				best = e.issuer
			}
		}
	}
	return best
}
