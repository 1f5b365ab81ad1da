package transaction

import (
	"time"
)

// Transaction represents one bank ledger entry as loaded from the
// statement spreadsheet. Amounts are in VND; exactly one of Debit or
// Credit is expected to be non-zero per entry, but both are always set.
type Transaction struct {
	TransactionDate time.Time
	Description     string
	EffectiveDate   time.Time
	Debit           float64
	Credit          float64
	Balance         float64
	CounterAccount  string
	Category        string
	TransactionCode string
}

// Field names a column of a transaction usable in keyword filters and
// sorting. The values match the source spreadsheet column names.
type Field string

const (
	FieldTransactionDate Field = "transaction_date"
	FieldDescription     Field = "description"
	FieldDebit           Field = "debit"
	FieldCredit          Field = "credit"
	FieldBalance         Field = "balance"
	FieldCounterAccount  Field = "counter_account"
	FieldCategory        Field = "category"
	FieldTransactionCode Field = "transaction_code"
)

// stringValue returns the string value of a field. Unknown or
// non-string fields read as the empty string, so keyword filters
// against them never match.
func (tx Transaction) stringValue(field Field) string {
	switch field {
	case FieldDescription:
		return tx.Description
	case FieldCounterAccount:
		return tx.CounterAccount
	case FieldCategory:
		return tx.Category
	case FieldTransactionCode:
		return tx.TransactionCode
	}

	return ""
}
