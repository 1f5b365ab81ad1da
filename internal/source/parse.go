package source

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tdnguyen/finsight/internal/transaction"
)

// Column names of the statement spreadsheet.
const (
	colTransactionDate = "transaction_date"
	colDescription     = "description"
	colEffectiveDate   = "effective_date"
	colDebit           = "debit"
	colCredit          = "credit"
	colBalance         = "balance"
	colCounterAccount  = "counter_account"
	colCategory        = "category"
	colTransactionCode = "transaction_code"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{
	colTransactionDate,
	colDescription,
	colEffectiveDate,
	colDebit,
	colCredit,
	colBalance,
	colCounterAccount,
	colCategory,
	colTransactionCode,
}

// dateLayout is the statement date format (DD/MM/YYYY).
const dateLayout = "02/01/2006"

// columnIndex maps column names to their position in a row.
type columnIndex map[string]int

// ParseRows turns a raw cell grid into transactions. The header row is
// located by scanning for a row carrying all required column names, so
// metadata rows the bank prepends above the table are skipped. Rows
// with unparseable dates are logged and dropped; numeric cells that
// fail to parse are coerced to 0 and string cells default to empty.
func ParseRows(rows [][]string) ([]transaction.Transaction, error) {
	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no header row with columns %v found", requiredColumns)
	}

	var txs []transaction.Transaction

	for i, row := range rows[headerIdx+1:] {
		rowNum := headerIdx + i + 2 // 1-based, for log messages

		tx, err := parseRow(cols, row)
		if err != nil {
			slog.Warn("dropping row", "row", rowNum, "error", err)
			continue
		}

		txs = append(txs, tx)
	}

	return txs, nil
}

// findHeader scans for the first row containing every required column.
func findHeader(rows [][]string) (columnIndex, int) {
	for rowIdx, row := range rows {
		cols := make(columnIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		if hasAllColumns(cols) {
			return cols, rowIdx
		}
	}

	return nil, 0
}

func hasAllColumns(cols columnIndex) bool {
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRow(cols columnIndex, row []string) (transaction.Transaction, error) {
	txDate, err := parseDate(cellValue(row, cols[colTransactionDate]))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("transaction_date: %w", err)
	}

	effDate, err := parseDate(cellValue(row, cols[colEffectiveDate]))
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("effective_date: %w", err)
	}

	return transaction.Transaction{
		TransactionDate: txDate,
		Description:     cellValue(row, cols[colDescription]),
		EffectiveDate:   effDate,
		Debit:           parseNumber(cellValue(row, cols[colDebit])),
		Credit:          parseNumber(cellValue(row, cols[colCredit])),
		Balance:         parseNumber(cellValue(row, cols[colBalance])),
		CounterAccount:  cellValue(row, cols[colCounterAccount]),
		Category:        cellValue(row, cols[colCategory]),
		TransactionCode: cellValue(row, cols[colTransactionCode]),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	return time.Parse(dateLayout, s)
}

// parseNumber parses an amount cell. Thousand-separator commas and
// grouping spaces are tolerated; anything unparseable is 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}

	return d.InexactFloat64()
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
