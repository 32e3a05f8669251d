package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadObservations(t *testing.T) {
	t.Run("cabeçalho original com quantidades ausentes", func(t *testing.T) {
		input := "Item_Code,YearMonth,Order_Qty\n" +
			"A1,2025-01-01,10\n" +
			"A1,2025-02,\n" +
			"B2,2025-01-01,NaN\n" +
			"\n" +
			"B2,2025-02-01,3.5\n"

		observations, err := ReadObservations(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, observations, 4)

		assert.Equal(t, "A1", observations[0].EntityID)
		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), observations[0].Period)
		assert.True(t, observations[0].HasQuantity())
		assert.Equal(t, 10.0, observations[0].Qty())

		assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), observations[1].Period)
		assert.False(t, observations[1].HasQuantity())
		assert.False(t, observations[2].HasQuantity())
		assert.Equal(t, 3.5, observations[3].Qty())
	})

	t.Run("aliases de coluna e BOM", func(t *testing.T) {
		input := "\ufeffqty,entity_id,period\n7,X,2024-12-15\n"

		observations, err := ReadObservations(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, observations, 1)
		assert.Equal(t, "X", observations[0].EntityID)
		assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), observations[0].Period)
		assert.Equal(t, 7.0, observations[0].Qty())
	})

	t.Run("arquivo vazio", func(t *testing.T) {
		observations, err := ReadObservations(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, observations)
	})

	t.Run("coluna obrigatória ausente", func(t *testing.T) {
		_, err := ReadObservations(strings.NewReader("Item_Code,Order_Qty\nA1,1\n"))

		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("linhas inválidas", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{name: "quantidade", input: "Item_Code,YearMonth,Order_Qty\nA1,2025-01-01,abc\n"},
			{name: "período", input: "Item_Code,YearMonth,Order_Qty\nA1,janeiro,1\n"},
			{name: "item vazio", input: "Item_Code,YearMonth,Order_Qty\n,2025-01-01,1\n"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ReadObservations(strings.NewReader(tt.input))
				assert.ErrorIs(t, err, ErrInvalidRow)
			})
		}
	})
}

func TestReadObservationsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte("Item_Code,YearMonth,Order_Qty\nA1,2025-01-01,1\n"), 0o600))

	observations, err := ReadObservationsFile(path)

	require.NoError(t, err)
	assert.Len(t, observations, 1)

	_, err = ReadObservationsFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
