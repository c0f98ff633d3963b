package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Parser.MaxTransactions)
	assert.True(t, cfg.Parser.NormalizeMerchants)
	assert.False(t, cfg.Parser.FuzzyIssuerMatch)
	assert.Equal(t, 2, cfg.Parser.FuzzyMaxDistance)
	assert.Empty(t, cfg.Output.Path)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STATEMENT_MAX_TRANSACTIONS", "25")
	t.Setenv("STATEMENT_FUZZY_ISSUER", "true")
	t.Setenv("STATEMENT_OUTPUT_PRETTY", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Parser.MaxTransactions)
	assert.True(t, cfg.Parser.FuzzyIssuerMatch)
	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("STATEMENT_MAX_TRANSACTIONS", "lots")
	t.Setenv("STATEMENT_NORMALIZE_MERCHANTS", "definitely")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Parser.MaxTransactions)
	assert.True(t, cfg.Parser.NormalizeMerchants)
}

func TestLoad_NegativeValuesRejected(t *testing.T) {
	t.Setenv("STATEMENT_MAX_TRANSACTIONS", "-1")

	_, err := Load()
	assert.Error(t, err)
}
