package transaction

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	// Transactions returns the full loaded dataset in statement order.
	Transactions(ctx context.Context) ([]Transaction, error)
	// Reload discards the cached dataset and loads a fresh snapshot,
	// returning the new snapshot's ID.
	Reload(ctx context.Context) (uuid.UUID, error)
}

// Service composes filters, the categorizer and the aggregators into
// the report shapes consumed by the dashboard.
//
// Report builders never propagate internal errors: they log and
// degrade to an empty result, so a broken source or an inverted date
// range can never fail a dashboard panel.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListParams are the query options of the transaction listing.
type ListParams struct {
	Search    string
	Limit     int // -1 means all
	Offset    int
	SortBy    Field
	Reverse   bool
	StartDate *time.Time
	EndDate   *time.Time
	Clean     bool
}

// List returns transactions with optional cleaning, date filtering,
// free-text search, sorting and pagination applied in that order.
func (s *Service) List(ctx context.Context, params ListParams) []Transaction {
	txs, err := s.repo.Transactions(ctx)
	if err != nil {
		slog.Error("fetching transactions", "error", err)
		return nil
	}

	if params.Clean {
		txs = Clean(txs)
	}

	txs, err = ByDateRange(txs, params.StartDate, params.EndDate)
	if err != nil {
		slog.Warn("invalid date range", "error", err)
		return nil
	}

	if params.Search != "" {
		txs = Search(txs, params.Search)
	}

	if params.SortBy != "" {
		txs = SortBy(txs, params.SortBy, params.Reverse)
	}

	return Paginate(txs, params.Offset, params.Limit)
}

// Saving returns the savings subset within the date range.
func (s *Service) Saving(ctx context.Context, start, end *time.Time) []Transaction {
	return s.subset(ctx, start, end, Saving)
}

// Investment returns the investment subset within the date range.
func (s *Service) Investment(ctx context.Context, start, end *time.Time) []Transaction {
	return s.subset(ctx, start, end, Investment)
}

func (s *Service) subset(ctx context.Context, start, end *time.Time, extract func([]Transaction) []Transaction) []Transaction {
	txs, err := s.repo.Transactions(ctx)
	if err != nil {
		slog.Error("fetching transactions", "error", err)
		return nil
	}

	txs, err = ByDateRange(txs, start, end)
	if err != nil {
		slog.Warn("invalid date range", "error", err)
		return nil
	}

	return extract(txs)
}

// MonthlySummary is one (year, month) bucket of credit and debit sums.
type MonthlySummary struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Income      float64 `json:"income"`
	Expenditure float64 `json:"expenditure"`
}

// IncomeExpenditure sums credits and debits per calendar month.
// Months without transactions are absent, not zero-filled.
func (s *Service) IncomeExpenditure(ctx context.Context, start, end *time.Time) []MonthlySummary {
	txs := s.ranged(ctx, start, end)

	sums := make(map[monthKey]*MonthlySummary)

	var order []monthKey

	for _, tx := range txs {
		key := keyFor(tx)

		row, ok := sums[key]
		if !ok {
			row = &MonthlySummary{Year: key.year, Month: key.month}
			sums[key] = row
			order = append(order, key)
		}

		row.Income += tx.Credit
		row.Expenditure += tx.Debit
	}

	sortMonthKeys(order)

	out := make([]MonthlySummary, 0, len(order))
	for _, key := range order {
		out = append(out, *sums[key])
	}

	return out
}

// monthKey buckets transactions by calendar month.
type monthKey struct {
	year  int
	month int
}

func keyFor(tx Transaction) monthKey {
	return monthKey{tx.TransactionDate.Year(), int(tx.TransactionDate.Month())}
}

func sortMonthKeys(keys []monthKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}

		return keys[i].month < keys[j].month
	})
}

// Overview is the headline income/expense/saving card.
type Overview struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Saving  float64 `json:"saving"`
}

// Overview computes total income, expense and savings over the range.
// Savings and investment balances count as income: money moved into a
// savings account is not an expense, and its payout is not a salary.
func (s *Service) Overview(ctx context.Context, start, end *time.Time) Overview {
	txs := s.ranged(ctx, start, end)

	savingBalance := sumBalance(Saving(txs))
	investmentBalance := sumBalance(Investment(txs))

	var income, expense float64

	for _, tx := range Clean(WithoutSavingAndInvestment(txs)) {
		income += tx.Credit
		expense += tx.Debit
	}

	return Overview{
		Income:  income + savingBalance + investmentBalance,
		Expense: expense,
		Saving:  savingBalance + investmentBalance,
	}
}

// Summary is the total-assets card.
type Summary struct {
	Total        float64 `json:"total"`
	Balance      float64 `json:"balance"`
	TotalSaving  float64 `json:"totalSaving"`
	Invest       float64 `json:"invest"`
	Transactions int     `json:"transactions"`
}

// Summary reports the current account balance, savings and investment
// deltas, and the overall asset total. Balance is taken from the most
// recent cleaned transaction in the range.
func (s *Service) Summary(ctx context.Context, start, end *time.Time) Summary {
	txs := s.ranged(ctx, start, end)

	savingBalance := sumBalance(Saving(txs))
	investmentBalance := sumBalance(Investment(txs))

	cleaned := SortBy(Clean(WithoutSavingAndInvestment(txs)), FieldTransactionDate, true)

	var balance float64
	if len(cleaned) > 0 {
		balance = cleaned[0].Balance
	}

	return Summary{
		Total:        balance + savingBalance + investmentBalance,
		Balance:      balance,
		TotalSaving:  savingBalance,
		Invest:       investmentBalance,
		Transactions: len(cleaned),
	}
}

// DailyBalance is the account balance snapshot at the end of one day.
type DailyBalance struct {
	Date    string  `json:"date"`
	Balance float64 `json:"balance"`
}

// BalanceTrends emits one row per calendar day present in the input,
// carrying the balance of the chronologically last transaction of the
// day. Pagination slices the transaction set before bucketing; the
// dashboard depends on that shape, so it stays even though truncating
// days would be the more obvious contract.
func (s *Service) BalanceTrends(ctx context.Context, offset, limit int, start, end *time.Time) []DailyBalance {
	txs := s.ranged(ctx, start, end)
	txs = Paginate(txs, offset, limit)
	txs = SortBy(txs, FieldTransactionDate, false)

	last := make(map[string]float64)

	var days []string

	for _, tx := range txs {
		day := tx.TransactionDate.Format(time.DateOnly)
		if _, seen := last[day]; !seen {
			days = append(days, day)
		}

		last[day] = tx.Balance
	}

	out := make([]DailyBalance, 0, len(days))
	for _, day := range days {
		out = append(out, DailyBalance{Date: day, Balance: last[day]})
	}

	return out
}

// CategorySize is a treemap node: a category and its debit total.
type CategorySize struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

// ExpenseTree categorizes every debit by its counterparty and sums
// debits per category. Categories with a non-positive total are
// dropped so the treemap never renders empty or negative tiles.
func (s *Service) ExpenseTree(ctx context.Context, offset, limit int, start, end *time.Time) []CategorySize {
	txs := s.ranged(ctx, start, end)
	txs = Paginate(txs, offset, limit)

	totals := make(map[string]float64)

	var order []string

	for _, tx := range txs {
		if tx.Debit == 0 || tx.CounterAccount == "" {
			continue
		}

		label := Categorize(tx.CounterAccount, tx.Category)
		if _, seen := totals[label]; !seen {
			order = append(order, label)
		}

		totals[label] += tx.Debit
	}

	var out []CategorySize

	for _, label := range order {
		if totals[label] > 0 {
			out = append(out, CategorySize{Name: label, Size: totals[label]})
		}
	}

	return out
}

// AccountSummary is the per-counterparty income/expenditure total.
type AccountSummary struct {
	CounterAccount string  `json:"counter_account"`
	Income         float64 `json:"income"`
	Expenditure    float64 `json:"expenditure"`
}

// Accounts sums credits and debits per counterparty account.
func (s *Service) Accounts(ctx context.Context, start, end *time.Time) []AccountSummary {
	txs := s.ranged(ctx, start, end)

	sums := make(map[string]*AccountSummary)

	var order []string

	for _, tx := range txs {
		row, ok := sums[tx.CounterAccount]
		if !ok {
			row = &AccountSummary{CounterAccount: tx.CounterAccount}
			sums[tx.CounterAccount] = row
			order = append(order, tx.CounterAccount)
		}

		row.Income += tx.Credit
		row.Expenditure += tx.Debit
	}

	out := make([]AccountSummary, 0, len(order))
	for _, account := range order {
		out = append(out, *sums[account])
	}

	return out
}

// CategoryBreakdown sums debits per category for categories starting
// with prefix, descending by total, at most top entries.
func (s *Service) CategoryBreakdown(ctx context.Context, prefix string, top int, start, end *time.Time) []CategorySize {
	txs := s.ranged(ctx, start, end)

	totals := make(map[string]float64)

	var order []string

	for _, tx := range txs {
		if !strings.HasPrefix(tx.Category, prefix) {
			continue
		}

		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}

		totals[tx.Category] += tx.Debit
	}

	out := make([]CategorySize, 0, len(order))
	for _, category := range order {
		out = append(out, CategorySize{Name: category, Size: totals[category]})
	}

	// Highest totals first; stable so equal totals keep first-seen order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Size > out[j].Size })

	if top > 0 && len(out) > top {
		out = out[:top]
	}

	return out
}

// HouseFeeMonth holds one month of housing cost totals.
type HouseFeeMonth struct {
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Rent       float64 `json:"rent"`
	Management float64 `json:"management"`
	Utilities  float64 `json:"utilities"`
}

// houseFeeKeywords map a counterparty keyword to the HouseFeeMonth
// field it feeds. All three draw from transactions categorized "rent".
var houseFeeKeywords = []struct {
	keyword string
	add     func(*HouseFeeMonth, float64)
}{
	{"tiền nhà", func(m *HouseFeeMonth, v float64) { m.Rent += v }},
	{"phí quản lý", func(m *HouseFeeMonth, v float64) { m.Management += v }},
	{"tiền điện nước", func(m *HouseFeeMonth, v float64) { m.Utilities += v }},
}

// HouseFee breaks the "rent" category down into rent, management fee
// and utility payments per month.
func (s *Service) HouseFee(ctx context.Context, start, end *time.Time) []HouseFeeMonth {
	txs := s.ranged(ctx, start, end)

	months := make(map[monthKey]*HouseFeeMonth)

	var order []monthKey

	for _, tx := range txs {
		if tx.Category != "rent" {
			continue
		}

		account := strings.ToLower(tx.CounterAccount)

		for _, rule := range houseFeeKeywords {
			if !strings.Contains(account, rule.keyword) {
				continue
			}

			key := keyFor(tx)

			row, ok := months[key]
			if !ok {
				row = &HouseFeeMonth{Year: key.year, Month: key.month}
				months[key] = row
				order = append(order, key)
			}

			rule.add(row, tx.Debit)
		}
	}

	sortMonthKeys(order)

	out := make([]HouseFeeMonth, 0, len(order))
	for _, key := range order {
		out = append(out, *months[key])
	}

	return out
}

// Highlights bundles the most recent activity with the largest
// expenses of the range.
type Highlights struct {
	Latest      []Transaction
	TopExpenses []Transaction
}

// Highlights returns the n most recent transactions (oldest first)
// and the n largest debits of the range.
func (s *Service) Highlights(ctx context.Context, n int, start, end *time.Time) Highlights {
	txs := s.ranged(ctx, start, end)

	byDate := SortBy(txs, FieldTransactionDate, false)
	if len(byDate) > n {
		byDate = byDate[len(byDate)-n:]
	}

	var expenses []Transaction

	for _, tx := range txs {
		if tx.Credit == 0 && tx.Debit > 0 {
			expenses = append(expenses, tx)
		}
	}

	expenses = SortBy(expenses, FieldDebit, true)
	if len(expenses) > n {
		expenses = expenses[:n]
	}

	return Highlights{Latest: byDate, TopExpenses: expenses}
}

// Reload forces a fresh snapshot load and returns its ID.
func (s *Service) Reload(ctx context.Context) (uuid.UUID, error) {
	return s.repo.Reload(ctx)
}

// ranged fetches the dataset and applies the date range, degrading to
// an empty slice on any failure.
func (s *Service) ranged(ctx context.Context, start, end *time.Time) []Transaction {
	txs, err := s.repo.Transactions(ctx)
	if err != nil {
		slog.Error("fetching transactions", "error", err)
		return nil
	}

	txs, err = ByDateRange(txs, start, end)
	if err != nil {
		slog.Warn("invalid date range", "error", err)
		return nil
	}

	return txs
}

func sumBalance(txs []Transaction) float64 {
	var total float64
	for _, tx := range txs {
		total += tx.Balance
	}

	return total
}
