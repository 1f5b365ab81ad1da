package transaction_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/finsight/internal/transaction"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestByDateRange(t *testing.T) {
	txs := []transaction.Transaction{
		{TransactionDate: day("2024-01-01"), Description: "a"},
		{TransactionDate: day("2024-01-05"), Description: "b"},
		{TransactionDate: day("2024-02-01"), Description: "c"},
	}

	type testCase struct {
		name     string
		start    *time.Time
		end      *time.Time
		want     []string
		wantErr  bool
	}

	tests := []testCase{
		{
			name:  "InclusiveBothEnds",
			start: dayPtr("2024-01-01"),
			end:   dayPtr("2024-01-05"),
			want:  []string{"a", "b"},
		},
		{
			name:  "SameDay",
			start: dayPtr("2024-01-05"),
			end:   dayPtr("2024-01-05"),
			want:  []string{"b"},
		},
		{
			name: "Unbounded",
			want: []string{"a", "b", "c"},
		},
		{
			name:  "OpenEnd",
			start: dayPtr("2024-01-05"),
			want:  []string{"b", "c"},
		},
		{
			name:    "InvertedRange",
			start:   dayPtr("2024-02-01"),
			end:     dayPtr("2024-01-01"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transaction.ByDateRange(txs, tt.start, tt.end)

			if tt.wantErr {
				require.ErrorIs(t, err, transaction.ErrInvalidRange)
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)

			var names []string
			for _, tx := range got {
				names = append(names, tx.Description)
			}

			assert.Equal(t, tt.want, names)
		})
	}
}

func TestExcludeKeyword(t *testing.T) {
	txs := []transaction.Transaction{
		{Description: "TAT TOAN TAI KHOAN TIET KIEM 123"},
		{Description: "mua cafe"},
		{CounterAccount: "NGUYEN VAN A"},
	}

	got := transaction.ExcludeKeyword(txs, transaction.FieldDescription, "tat toan tai khoan")
	require.Len(t, got, 2)
	assert.Equal(t, "mua cafe", got[0].Description)

	// A second application with the same arguments changes nothing.
	assert.Equal(t, got, transaction.ExcludeKeyword(got, transaction.FieldDescription, "tat toan tai khoan"))

	// Unknown fields read as empty and never match.
	assert.Len(t, transaction.ExcludeKeyword(txs, transaction.Field("nope"), "a"), 3)
}

func TestClean(t *testing.T) {
	txs := []transaction.Transaction{
		{Description: "mua xăng", Debit: 50},
		{Description: "TAT TOAN TAI KHOAN TIET KIEM 99"},
		{Description: "CONG TY TNHH PHAN MEM FPT chuyen luong"},
		{Description: "dau tuan vui ve"},
		{Description: "đầu tư chứng khoán"},
		{Description: "an trua", Category: "saving"},
		{Description: "an toi", Category: "invest123"},
		{CounterAccount: "TAT TOAN TAI KHOAN TIET KIEM"},
	}

	got := transaction.Clean(txs)
	require.Len(t, got, 2)
	assert.Equal(t, "mua xăng", got[0].Description)
	assert.Equal(t, "dau tuan vui ve", got[1].Description)
}

func TestSearch(t *testing.T) {
	txs := []transaction.Transaction{
		{Description: "mua Cafe sang"},
		{Category: "foodOffice"},
		{TransactionCode: "FT24CAFE001"},
		{CounterAccount: "quan com tam"},
	}

	assert.Len(t, transaction.Search(txs, "cafe"), 2)
	assert.Len(t, transaction.Search(txs, "FOOD"), 1)
	assert.Len(t, transaction.Search(txs, "com tam"), 1)
	assert.Empty(t, transaction.Search(txs, "khong co"))
}

func TestSaving(t *testing.T) {
	txs := []transaction.Transaction{
		{Description: "DONG TIET KIEM TK 01", Debit: 500, Credit: 0, Balance: 9999},
		{Description: "TAT TOAN SO TIET KIEM", Debit: 0, Credit: 500},
		{Description: "an sang", Category: "saving goal"},
		{Description: "an sang", Category: "food"},
	}

	got := transaction.Saving(txs)
	require.Len(t, got, 3)

	// Balance is recomputed as debit-credit on the returned copies.
	assert.Equal(t, 500.0, got[0].Balance)
	assert.Equal(t, -500.0, got[1].Balance)

	// Empty categories default to "saving"; existing ones are kept.
	assert.Equal(t, "saving", got[0].Category)
	assert.Equal(t, "saving goal", got[2].Category)

	// Input is untouched.
	assert.Equal(t, 9999.0, txs[0].Balance)
	assert.Equal(t, "", txs[0].Category)
}

func TestInvestment(t *testing.T) {
	txs := []transaction.Transaction{
		{Description: "đầu tư cổ phiếu", Debit: 1000},
		{Description: "an sang", Category: "invest"},
		{Description: "an sang"},
	}

	got := transaction.Investment(txs)
	require.Len(t, got, 2)
	assert.Equal(t, "invest", got[0].Category)
	assert.Equal(t, 1000.0, got[0].Balance)
}

func TestWithoutSavingAndInvestment(t *testing.T) {
	txs := []transaction.Transaction{
		{Description: "DONG TIET KIEM TK 01"},
		{Description: "đầu tư cổ phiếu"},
		{Description: "an sang", Category: "invest"},
		{Description: "an sang"},
	}

	got := transaction.WithoutSavingAndInvestment(txs)
	require.Len(t, got, 1)
	assert.Equal(t, "an sang", got[0].Description)
	assert.Equal(t, "", got[0].Category)
}

func TestSortBy(t *testing.T) {
	txs := []transaction.Transaction{
		{TransactionDate: day("2024-02-01"), Debit: 10},
		{TransactionDate: day("2024-01-01"), Debit: 30},
		{TransactionDate: day("2024-03-01"), Debit: 20},
	}

	byDate := transaction.SortBy(txs, transaction.FieldTransactionDate, false)
	assert.Equal(t, day("2024-01-01"), byDate[0].TransactionDate)
	assert.Equal(t, day("2024-03-01"), byDate[2].TransactionDate)

	byDebit := transaction.SortBy(txs, transaction.FieldDebit, true)
	assert.Equal(t, 30.0, byDebit[0].Debit)

	// Input order is preserved.
	assert.Equal(t, day("2024-02-01"), txs[0].TransactionDate)
}

func TestPaginate(t *testing.T) {
	txs := []transaction.Transaction{
		{Description: "a"}, {Description: "b"}, {Description: "c"},
	}

	assert.Len(t, transaction.Paginate(txs, 0, -1), 3)
	assert.Len(t, transaction.Paginate(txs, 0, 2), 2)
	assert.Equal(t, "c", transaction.Paginate(txs, 2, 10)[0].Description)
	assert.Empty(t, transaction.Paginate(txs, 5, 10))
}
