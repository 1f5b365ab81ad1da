// Package csvfile loads transactions from a local CSV statement
// export. The file's charset is detected before parsing, since bank
// portals hand out UTF-8, UTF-16 and legacy-codepage files
// interchangeably.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	enc "github.com/tdnguyen/finsight/internal/encoding"
	"github.com/tdnguyen/finsight/internal/source"
	"github.com/tdnguyen/finsight/internal/transaction"
)

type Loader struct {
	path  string
	comma rune
}

// New returns a loader for the CSV file at path. comma is the field
// separator; 0 means the default ','.
func New(path string, comma rune) *Loader {
	if comma == 0 {
		comma = ','
	}

	return &Loader{path: path, comma: comma}
}

func (l *Loader) Load(ctx context.Context) ([]transaction.Transaction, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open statement file: %w", err)
	}
	defer f.Close()

	utf8r, err := enc.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = l.comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	txs, err := source.ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}

	return txs, nil
}
