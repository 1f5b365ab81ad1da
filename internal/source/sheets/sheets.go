// Package sheets loads transactions from a Google Sheets spreadsheet,
// the live copy of the statement maintained by hand.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/tdnguyen/finsight/internal/source"
	"github.com/tdnguyen/finsight/internal/transaction"
)

type Loader struct {
	svc           *gsheet.Service
	spreadsheetID string
	readRange     string
}

// New creates a Sheets loader for the given spreadsheet and A1 range
// (e.g. "Transactions!A:I"). Credentials come from credentialsFile, or
// from application default credentials when it is empty.
func New(ctx context.Context, spreadsheetID, readRange, credentialsFile string) (*Loader, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	if readRange == "" {
		readRange = "Transactions!A:I"
	}

	opts := []goption.ClientOption{goption.WithScopes(gsheet.SpreadsheetsReadonlyScope)}

	if credentialsFile != "" {
		credentialsJSON, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}

		opts = append(opts, goption.WithCredentialsJSON(credentialsJSON))
	}

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Loader{svc: svc, spreadsheetID: spreadsheetID, readRange: readRange}, nil
}

func (l *Loader) Load(ctx context.Context) ([]transaction.Transaction, error) {
	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, l.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch range %s: %w", l.readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))

	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, strings.TrimSpace(fmt.Sprint(cell)))
		}

		rows = append(rows, cells)
	}

	txs, err := source.ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parse spreadsheet %s: %w", l.spreadsheetID, err)
	}

	return txs, nil
}
