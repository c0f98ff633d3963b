package statement

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cardledger/statement-parser/internal/domain/document"
	"github.com/cardledger/statement-parser/internal/domain/statement/extractor"
	"github.com/cardledger/statement-parser/internal/domain/statement/issuer"
	"github.com/cardledger/statement-parser/internal/domain/statement/normalizer"
)

// ErrInputUnavailable indicates the extraction received no usable text.
var ErrInputUnavailable = errors.New("no statement text to extract from")

// Options tunes one extraction service.
type Options struct {
	// MaxTransactions caps the transaction list; 0 means no cap.
	MaxTransactions int
	// NormalizeMerchants attaches a cleaned merchant name to each transaction.
	NormalizeMerchants bool
	// FuzzyIssuerMatch retries issuer detection with bounded edit distance
	// when no keyword occurs verbatim.
	FuzzyIssuerMatch bool
	// FuzzyMaxDistance bounds the per-keyword edit distance for fuzzy
	// issuer matching.
	FuzzyMaxDistance int
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{
		MaxTransactions:    0,
		NormalizeMerchants: true,
		FuzzyIssuerMatch:   false,
		FuzzyMaxDistance:   2,
	}
}

// Service runs the field extractors over statement text and assembles the
// results into a StatementRecord. Fields extract independently: one field
// failing never blocks the others.
type Service struct {
	classifier *issuer.Classifier
	sanitizer  *normalizer.DescriptionSanitizer
	opts       Options
	logger     *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default.
func NewService(opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		classifier: issuer.NewClassifier(),
		sanitizer:  normalizer.NewDescriptionSanitizer(),
		opts:       opts,
		logger:     logger,
	}
}

// Assemble extracts a StatementRecord from a loaded document.
func (s *Service) Assemble(doc *document.Document) (*StatementRecord, error) {
	if doc == nil {
		return nil, ErrInputUnavailable
	}
	rec, err := s.AssembleText(doc.Text)
	if err != nil {
		return nil, err
	}
	rec.Metadata.Source = doc.Source
	rec.Metadata.Pages = doc.Pages
	rec.Metadata.Words = doc.Words
	return rec, nil
}

// AssembleText extracts a StatementRecord from raw statement text. Absent
// fields are nil in the result; only unusable input is an error.
func (s *Service) AssembleText(text string) (*StatementRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInputUnavailable
	}

	rec := &StatementRecord{
		Issuer:       s.classifyIssuer(text),
		Transactions: []Transaction{},
		Metadata: Metadata{
			ExtractionID: uuid.New(),
			ExtractedAt:  time.Now().UTC().Truncate(time.Second),
		},
	}

	if v, ok := extractor.LastFour(text); ok {
		rec.LastFourDigits = &v
	}
	if start, end, ok := extractor.Period(text); ok {
		rec.StatementPeriod = &Period{Start: NewDate(start), End: NewDate(end)}
	}
	if a, ok := extractor.TotalAmountDue(text); ok {
		rec.TotalAmountDue = &a
	}
	if t, ok := extractor.PaymentDueDate(text); ok {
		d := NewDate(t)
		rec.PaymentDueDate = &d
	}

	for _, m := range extractor.Transactions(text, s.opts.MaxTransactions) {
		tx := Transaction{
			Date:        NewDate(m.Date),
			Description: m.Description,
			Amount:      m.Amount,
			Credit:      m.Credit,
		}
		if s.opts.NormalizeMerchants {
			tx.Merchant = s.sanitizer.Sanitize(m.Description).Normalized
		}
		rec.Transactions = append(rec.Transactions, tx)
	}

	s.logger.Debug("statement assembled",
		slog.String("extraction_id", rec.Metadata.ExtractionID.String()),
		slog.String("issuer", string(rec.Issuer)),
		slog.Int("fields_found", rec.FieldsFound()),
		slog.Int("transactions", len(rec.Transactions)),
	)
	return rec, nil
}

func (s *Service) classifyIssuer(text string) issuer.Issuer {
	if s.opts.FuzzyIssuerMatch {
		return s.classifier.ClassifyFuzzy(text, s.opts.FuzzyMaxDistance)
	}
	return s.classifier.Classify(text)
}
