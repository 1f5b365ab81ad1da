package transaction

import (
	"time"

	"github.com/tdnguyen/finsight/internal/transaction"
)

type transactionResponse struct {
	TransactionDate string  `json:"transaction_date"`
	Description     string  `json:"description"`
	EffectiveDate   string  `json:"effective_date"`
	Debit           float64 `json:"debit"`
	Credit          float64 `json:"credit"`
	Balance         float64 `json:"balance"`
	CounterAccount  string  `json:"counter_account"`
	Category        string  `json:"category"`
	TransactionCode string  `json:"transaction_code"`
}

func toResponse(tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		TransactionDate: tx.TransactionDate.Format(time.DateOnly),
		Description:     tx.Description,
		EffectiveDate:   tx.EffectiveDate.Format(time.DateOnly),
		Debit:           tx.Debit,
		Credit:          tx.Credit,
		Balance:         tx.Balance,
		CounterAccount:  tx.CounterAccount,
		Category:        tx.Category,
		TransactionCode: tx.TransactionCode,
	}
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type highlightsResponse struct {
	Latest      []transactionResponse `json:"latest"`
	TopExpenses []transactionResponse `json:"top_expenses"`
}

type reloadResponse struct {
	SnapshotID string `json:"snapshot_id"`
}

// orEmpty keeps aggregate responses as [] rather than null when a
// report degrades to an empty result.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
