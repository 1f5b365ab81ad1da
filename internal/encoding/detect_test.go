package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/finsight/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with Vietnamese characters should pass through unchanged.
	input := "description;debit\nTiết kiệm Điện tử;500000\nđầu tư;200000\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("transaction_date,description\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "transaction_date,description\n", string(got))
}

func TestNewUTF8Reader_Windows1258(t *testing.T) {
	// Windows-1258 encoded "trà đá": à = 0xE0, đ = 0xF0, á = 0xE1.
	legacy := []byte{'t', 'r', 0xE0, ' ', 0xF0, 0xE1}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(legacy))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "trà đá", string(got))
}
