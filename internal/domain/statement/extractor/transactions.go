package extractor

import (
	"regexp"
	"strings"
	"time"

	"github.com/cardledger/statement-parser/pkg/money"
)

// TransactionMatch is one (date, description, amount) triple recovered from
// a statement activity line. Credit is set only when the source text marks
// the line as a credit (leading minus, parentheses, or a CR suffix);
// everything else is assumed to be a charge.
type TransactionMatch struct {
	Date        time.Time
	Description string
	Amount      money.Amount
	Credit      bool
}

// transactionLine matches one activity line: a date, a free-text
// description, and a trailing amount with optional credit markers. The
// pattern is anchored to whole lines so labelled fields elsewhere in the
// statement ("Payment Due Date: 02/25/2024 ... $1,234.56") are not
// misread as transactions.
var transactionLine = regexp.MustCompile(
	`(?m)^[ \t]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})[ \t]+(\S(?:.*?\S)?)[ \t]+(\(?-?\$?[\d,]+\.\d{2}\)?)[ \t]*(CR)?[ \t]*$`,
)

// Transactions extracts every activity line in order of appearance.
// Lines whose date or amount fail to parse are skipped silently; a limit
// of 0 means no cap on the number of returned rows.
func Transactions(text string, limit int) []TransactionMatch {
	matches := transactionLine.FindAllStringSubmatch(text, -1)
	out := make([]TransactionMatch, 0, len(matches))

	for _, m := range matches {
		if limit > 0 && len(out) >= limit {
			break
		}

		date, ok := parseDate(m[1])
		if !ok {
			continue
		}

		amount, err := money.Parse(m[3])
		if err != nil {
			continue
		}

		credit := amount.IsNegative() || m[4] == "CR"

		out = append(out, TransactionMatch{
			Date:        date,
			Description: strings.TrimSpace(m[2]),
			Amount:      amount.Abs(),
			Credit:      credit,
		})
	}
	return out
}
