package source_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/finsight/internal/source"
)

var header = []string{
	"transaction_date", "description", "effective_date", "debit", "credit",
	"balance", "counter_account", "category", "transaction_code",
}

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"Bank statement export"}, // metadata row above the table
		header,
		{"05/01/2024", "mua cafe", "05/01/2024", "30000", "0", "1970000", "HIGHLANDS", "", "FT24001"},
		{"06/01/2024", "luong", "06/01/2024", "0", "12,000,000", "13970000", "CTY ABC", "income", "FT24002"},
	}

	txs, err := source.ParseRows(rows)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), txs[0].TransactionDate)
	assert.Equal(t, "mua cafe", txs[0].Description)
	assert.Equal(t, 30000.0, txs[0].Debit)
	assert.Equal(t, 1970000.0, txs[0].Balance)
	assert.Equal(t, "FT24001", txs[0].TransactionCode)

	// Thousand separators are tolerated.
	assert.Equal(t, 12000000.0, txs[1].Credit)
	assert.Equal(t, "income", txs[1].Category)
}

func TestParseRows_DropsBadDates(t *testing.T) {
	rows := [][]string{
		header,
		{"not-a-date", "x", "05/01/2024", "1", "0", "0", "", "", ""},
		{"05/01/2024", "ok", "05/01/2024", "1", "0", "0", "", "", ""},
		{"", "footer total", "", "99", "", "", "", "", ""},
	}

	txs, err := source.ParseRows(rows)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "ok", txs[0].Description)
}

func TestParseRows_CoercesBadNumbers(t *testing.T) {
	rows := [][]string{
		header,
		{"05/01/2024", "x", "05/01/2024", "n/a", "", "abc", "", "", ""},
	}

	txs, err := source.ParseRows(rows)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Zero(t, txs[0].Debit)
	assert.Zero(t, txs[0].Credit)
	assert.Zero(t, txs[0].Balance)
}

func TestParseRows_ShortRowsDefaultEmpty(t *testing.T) {
	rows := [][]string{
		header,
		{"05/01/2024", "x", "05/01/2024", "1"},
	}

	txs, err := source.ParseRows(rows)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Empty(t, txs[0].CounterAccount)
	assert.Empty(t, txs[0].Category)
}

func TestParseRows_NoHeader(t *testing.T) {
	_, err := source.ParseRows([][]string{{"just", "noise"}})
	assert.Error(t, err)
}
