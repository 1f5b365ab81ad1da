package transaction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdnguyen/finsight/internal/transaction"
)

func TestCategorize_Overrides(t *testing.T) {
	// An exact category code wins regardless of the description.
	assert.Equal(t, "saving", transaction.Categorize("mua xăng đầy bình", "saving"))
	assert.Equal(t, "Investment", transaction.Categorize("", "invest"))
	assert.Equal(t, "Food in office", transaction.Categorize("", "foodOffice"))
	assert.Equal(t, "rent", transaction.Categorize("", "rent"))

	// Codes are matched exactly, not by prefix.
	assert.NotEqual(t, "saving", transaction.Categorize("an sang", "savings"))
}

func TestCategorize_Keywords(t *testing.T) {
	type testCase struct {
		name        string
		description string
		want        string
	}

	tests := []testCase{
		{
			name:        "Fuel",
			description: "đổ xăng xe máy",
			want:        "Fuel",
		},
		{
			name:        "UtilitiesDiacritics",
			description: "thanh toán tiền điện tháng 1",
			want:        "Utilities",
		},
		{
			// Matching is diacritic-sensitive: the folded form of
			// "điện" does not hit the "điện" keyword.
			name:        "FoldedInputDoesNotMatch",
			description: "thanh toan tien dien thang 1",
			want:        "Others",
		},
		{
			name:        "CaseInsensitive",
			description: "WINMART quan 7",
			want:        "Supermarket",
		},
		{
			// "nước" precedes "nước dừa" in the rule list, so the
			// generic rule wins. First match is the contract.
			name:        "FirstMatchWins",
			description: "mua nước dừa",
			want:        "Utilities",
		},
		{
			name:        "Beverage",
			description: "café sữa đá",
			want:        "Beverage",
		},
		{
			name:        "NoMatch",
			description: "abc xyz",
			want:        "Others",
		},
		{
			name:        "Empty",
			description: "",
			want:        "Others",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transaction.Categorize(tt.description, ""))
		})
	}
}
