package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
)

func TestLoader_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Item_Code,YearMonth,Order_Qty\nA1,2025-07-01,20\nB2,2025-07-01,\n"))
	}))
	defer server.Close()

	t.Run("com token", func(t *testing.T) {
		loader := NewLoader(config.ProfileUpdateSync{FeedToken: "secret"})

		observations, err := loader.Load(server.URL + "/current_month.csv")

		require.NoError(t, err)
		require.Len(t, observations, 2)
		assert.Equal(t, 20.0, observations[0].Qty())
		assert.False(t, observations[1].HasQuantity())
	})

	t.Run("sem token", func(t *testing.T) {
		loader := NewLoader(config.ProfileUpdateSync{})

		_, err := loader.Fetch(context.Background(), server.URL)

		assert.ErrorContains(t, err, "401")
	})
}

func TestLoader_LoadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_month.csv")
	require.NoError(t, os.WriteFile(path, []byte("Item_Code,YearMonth,Order_Qty\nA1,2025-07-01,20\n"), 0o600))

	observations, err := NewLoader(config.ProfileUpdateSync{}).Load(path)

	require.NoError(t, err)
	assert.Len(t, observations, 1)
}
