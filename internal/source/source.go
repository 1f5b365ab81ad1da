// Package source loads the transaction dataset from a tabular
// spreadsheet export. Implementations share the row parser in this
// package; they only differ in where the cell grid comes from.
package source

import (
	"context"

	"github.com/tdnguyen/finsight/internal/transaction"
)

type Source interface {
	// Load reads the full spreadsheet and returns the parsed
	// transactions in sheet order.
	Load(ctx context.Context) ([]transaction.Transaction, error)
}
