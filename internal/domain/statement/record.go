// Package statement assembles the extracted data points of a credit-card
// statement into a single immutable record.
package statement

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cardledger/statement-parser/internal/domain/statement/issuer"
	"github.com/cardledger/statement-parser/pkg/money"
)

// Date is a calendar date serialized as ISO-8601 (YYYY-MM-DD).
type Date struct {
	time.Time
}

// NewDate builds a Date from any time, normalized to UTC midnight.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON serializes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON reads a "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = Date{t}
	return nil
}

// Period is the billing cycle covered by a statement. Start never follows
// End; the extractor rejects reversed ranges before a Period is built.
type Period struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Transaction is one activity line from the statement, in order of
// appearance. Amount is non-negative; Credit marks payments and returns
// when the source text disambiguates them, otherwise the line is a charge.
type Transaction struct {
	Date        Date         `json:"date"`
	Description string       `json:"description"`
	Merchant    string       `json:"merchant,omitempty"`
	Amount      money.Amount `json:"amount"`
	Credit      bool         `json:"credit,omitempty"`
}

// Metadata describes one extraction run.
type Metadata struct {
	ExtractionID uuid.UUID `json:"extraction_id"`
	ExtractedAt  time.Time `json:"extracted_at"`
	Source       string    `json:"source,omitempty"`
	Pages        int       `json:"pages,omitempty"`
	Words        int       `json:"words,omitempty"`
}

// StatementRecord is the sole output entity of an extraction. Every field
// except the issuer is optional: a nil pointer means the field was not
// found, which is distinct from a zero value. Records are built fresh per
// document and not mutated after assembly.
type StatementRecord struct {
	Issuer          issuer.Issuer `json:"issuer"`
	LastFourDigits  *string       `json:"last_four_digits"`
	StatementPeriod *Period       `json:"statement_period"`
	TotalAmountDue  *money.Amount `json:"total_amount_due"`
	PaymentDueDate  *Date         `json:"payment_due_date"`
	Transactions    []Transaction `json:"transactions"`
	Metadata        Metadata      `json:"metadata"`
}

// FieldsFound counts how many of the five key data points were extracted.
func (r *StatementRecord) FieldsFound() int {
	n := 0
	if r.Issuer.Known() {
		n++
	}
	if r.LastFourDigits != nil {
		n++
	}
	if r.StatementPeriod != nil {
		n++
	}
	if r.TotalAmountDue != nil {
		n++
	}
	if r.PaymentDueDate != nil {
		n++
	}
	return n
}
