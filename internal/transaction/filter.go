package transaction

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// ErrInvalidRange is returned when a date range filter is called with
// a start date after the end date.
var ErrInvalidRange = errors.New("start date is after end date")

// ByDateRange keeps transactions with start <= TransactionDate <= end,
// inclusive on both ends. A nil bound leaves that side open.
func ByDateRange(txs []Transaction, start, end *time.Time) ([]Transaction, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, ErrInvalidRange
	}

	var out []Transaction

	for _, tx := range txs {
		if start != nil && tx.TransactionDate.Before(*start) {
			continue
		}

		if end != nil && tx.TransactionDate.After(*end) {
			continue
		}

		out = append(out, tx)
	}

	return out, nil
}

// ExcludeKeyword drops transactions whose value of field contains the
// keyword, case-insensitively. A field missing from the transaction
// reads as empty and therefore never matches.
func ExcludeKeyword(txs []Transaction, field Field, keyword string) []Transaction {
	keyword = strings.ToLower(keyword)

	var out []Transaction

	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.stringValue(field)), keyword) {
			continue
		}

		out = append(out, tx)
	}

	return out
}

// cleanRule is one (field, keyword) exclusion applied by Clean.
type cleanRule struct {
	field   Field
	keyword string
}

// cleanRules is the closed list of exclusions that removes savings
// payouts, pass-through salary lines and investment transfers before
// "real" income/expense totals are computed. The list is versioned:
// report numbers change if an entry is edited, so treat it as data.
var cleanRules = []cleanRule{
	{FieldDescription, "TAT TOAN TAI KHOAN TIET KIEM"},
	{FieldDescription, "CONG TY TNHH PHAN MEM FPT "},
	{FieldDescription, "TRA LAI TIEN GUI TK"},
	{FieldDescription, "Tiết kiệm Điện tử"},
	{FieldCounterAccount, "TAT TOAN TAI KHOAN TIET KIEM"},
	{FieldDescription, "tiền nhận hộ cty"},
	{FieldDescription, "đầu tư"},
	{FieldCategory, "saving"},
	{FieldCategory, "invest"},
}

// Clean removes transactions matching the fixed exclusion rule set.
// Each rule only removes rows, so Clean is idempotent.
func Clean(txs []Transaction) []Transaction {
	for _, rule := range cleanRules {
		txs = ExcludeKeyword(txs, rule.field, rule.keyword)
	}

	return txs
}

// searchFields are the columns consulted by Search.
var searchFields = []Field{
	FieldDescription,
	FieldCategory,
	FieldTransactionCode,
	FieldCounterAccount,
}

// Search keeps transactions where any searchable field contains the
// query as a case-insensitive substring.
func Search(txs []Transaction, query string) []Transaction {
	query = strings.ToLower(query)

	var out []Transaction

	for _, tx := range txs {
		for _, field := range searchFields {
			if strings.Contains(strings.ToLower(tx.stringValue(field)), query) {
				out = append(out, tx)
				break
			}
		}
	}

	return out
}

// Filter keeps transactions whose description starts with any of the
// given prefixes, or whose category starts with categoryPrefix. Kept
// transactions are returned as copies with Balance recomputed as
// Debit-Credit and an empty category defaulted to defaultCategory.
// The input slice is never modified.
func Filter(txs []Transaction, descPrefixes []string, categoryPrefix, defaultCategory string) []Transaction {
	var out []Transaction

	for _, tx := range txs {
		if !matchesPrefix(tx, descPrefixes, categoryPrefix) {
			continue
		}

		if tx.Category == "" && defaultCategory != "" {
			tx.Category = defaultCategory
		}

		tx.Balance = tx.Debit - tx.Credit
		out = append(out, tx)
	}

	return out
}

func matchesPrefix(tx Transaction, descPrefixes []string, categoryPrefix string) bool {
	for _, prefix := range descPrefixes {
		if strings.HasPrefix(tx.Description, prefix) {
			return true
		}
	}

	return categoryPrefix != "" && strings.HasPrefix(tx.Category, categoryPrefix)
}

// savingPrefixes mark savings movements in the bank statement.
var savingPrefixes = []string{
	"TAT TOAN TAI KHOAN TIET KIEM",
	"Tiết kiệm Điện tử",
	"DONG TIET KIEM TK",
	"TAT TOAN SO TIET KIEM",
}

// Saving extracts savings transactions. In the savings subset Balance
// holds the debit-minus-credit delta, not the account balance.
func Saving(txs []Transaction) []Transaction {
	return Filter(txs, savingPrefixes, "saving", "saving")
}

// Investment extracts investment transfers.
func Investment(txs []Transaction) []Transaction {
	return Filter(txs, []string{"đầu tư"}, "invest", "invest")
}

// WithoutSavingAndInvestment drops exactly the rows that Saving and
// Investment extract. Clean alone does not cover every savings
// prefix, so totals that treat savings as a separate bucket must
// remove the subsets explicitly before cleaning.
func WithoutSavingAndInvestment(txs []Transaction) []Transaction {
	var out []Transaction

	for _, tx := range txs {
		if matchesPrefix(tx, savingPrefixes, "saving") {
			continue
		}

		if matchesPrefix(tx, []string{"đầu tư"}, "invest") {
			continue
		}

		out = append(out, tx)
	}

	return out
}

// SortBy returns a copy of txs sorted by the given field. The sort is
// stable so same-day statement order is preserved.
func SortBy(txs []Transaction, field Field, descending bool) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)

	less := lessFunc(field)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}

		return less(out[i], out[j])
	})

	return out
}

func lessFunc(field Field) func(a, b Transaction) bool {
	switch field {
	case FieldTransactionDate:
		return func(a, b Transaction) bool { return a.TransactionDate.Before(b.TransactionDate) }
	case FieldDebit:
		return func(a, b Transaction) bool { return a.Debit < b.Debit }
	case FieldCredit:
		return func(a, b Transaction) bool { return a.Credit < b.Credit }
	case FieldBalance:
		return func(a, b Transaction) bool { return a.Balance < b.Balance }
	default:
		return func(a, b Transaction) bool { return a.stringValue(field) < b.stringValue(field) }
	}
}

// Paginate slices txs by offset and limit. A limit of -1 means no
// limit; an offset past the end yields an empty result.
func Paginate(txs []Transaction, offset, limit int) []Transaction {
	if offset < 0 {
		offset = 0
	}

	if offset >= len(txs) {
		return nil
	}

	txs = txs[offset:]

	if limit < 0 || limit > len(txs) {
		return txs
	}

	return txs[:limit]
}
