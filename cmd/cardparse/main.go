// cardparse extracts the key data points of a credit-card statement from a
// PDF or plain-text file and writes the result as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cardledger/statement-parser/internal/domain/document"
	"github.com/cardledger/statement-parser/internal/domain/statement"
	"github.com/cardledger/statement-parser/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cardparse:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inPath  = flag.String("in", "", "statement file to parse (.pdf or plain text)")
		outPath = flag.String("out", "", "output file (default stdout)")
		pretty  = flag.Bool("pretty", true, "indent JSON output")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required -in flag")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	doc, err := document.FromFile(*inPath)
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}
	logger.Info("statement loaded",
		slog.String("source", doc.Source),
		slog.Int("pages", doc.Pages),
		slog.Int("words", doc.Words),
	)

	svc := statement.NewService(statement.Options{
		MaxTransactions:    cfg.Parser.MaxTransactions,
		NormalizeMerchants: cfg.Parser.NormalizeMerchants,
		FuzzyIssuerMatch:   cfg.Parser.FuzzyIssuerMatch,
		FuzzyMaxDistance:   cfg.Parser.FuzzyMaxDistance,
	}, logger)

	rec, err := svc.Assemble(doc)
	if err != nil {
		return fmt.Errorf("extract statement: %w", err)
	}
	logger.Info("extraction complete",
		slog.String("issuer", string(rec.Issuer)),
		slog.Int("fields_found", rec.FieldsFound()),
		slog.Int("transactions", len(rec.Transactions)),
	)

	out := os.Stdout
	target := *outPath
	if target == "" {
		target = cfg.Output.Path
	}
	if target != "" {
		f, err := os.Create(target)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	if *pretty && cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
