package repository

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisRepository(t *testing.T) (ProfileRepository, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisProfileRepository(client, "forecast", time.Second), server
}

func TestRedisProfileRepository(t *testing.T) {
	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("upsert e leitura preservam o perfil", func(t *testing.T) {
		repo, server := newTestRedisRepository(t)
		require.NoError(t, repo.Upsert(sampleProfile("A1", june)))

		profile, err := repo.FindOne("A1")

		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, sampleProfile("A1", june).LastSixMonths, profile.LastSixMonths)
		assert.Equal(t, 12.5, profile.MeanQty)
		assert.Equal(t, map[string]float64{"1": 10}, profile.Seasonality)
		assert.True(t, profile.LastUpdated.Equal(june))

		raw, err := server.Get("forecast:profile:A1")
		require.NoError(t, err)
		assert.Contains(t, raw, `"last_updated":"2025-06-01"`)
	})

	t.Run("perfil inexistente retorna nil", func(t *testing.T) {
		repo, _ := newTestRedisRepository(t)

		profile, err := repo.FindOne("missing")

		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("update move o item para o índice do novo período", func(t *testing.T) {
		repo, server := newTestRedisRepository(t)
		require.NoError(t, repo.Upsert(sampleProfile("A1", june)))

		updated := sampleProfile("A1", july)
		updated.LastSixMonths = []float64{12, 11, 13, 15, 14, 20}
		require.NoError(t, repo.Update(updated))

		assert.False(t, server.Exists("forecast:profiles:last_updated:2025-06-01"))

		inJuly, err := server.SIsMember("forecast:profiles:last_updated:2025-07-01", "A1")
		require.NoError(t, err)
		assert.True(t, inJuly)

		profile, err := repo.FindOne("A1")
		require.NoError(t, err)
		assert.Equal(t, []float64{12, 11, 13, 15, 14, 20}, profile.LastSixMonths)
	})

	t.Run("update de item inexistente falha", func(t *testing.T) {
		repo, _ := newTestRedisRepository(t)

		err := repo.Update(sampleProfile("Z9", july))

		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("busca por last_updated alimenta a verificação de período aplicado", func(t *testing.T) {
		repo, _ := newTestRedisRepository(t)
		require.NoError(t, repo.Upsert(sampleProfile("A1", june)))
		require.NoError(t, repo.Upsert(sampleProfile("B2", june)))

		found, err := repo.FindOneByLastUpdated(june)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Contains(t, []string{"A1", "B2"}, found.EntityID)

		absent, err := repo.FindOneByLastUpdated(july)
		require.NoError(t, err)
		assert.Nil(t, absent)

		require.NoError(t, repo.Update(sampleProfile("A1", july)))
		require.NoError(t, repo.Update(sampleProfile("B2", july)))

		stale, err := repo.FindOneByLastUpdated(june)
		require.NoError(t, err)
		assert.Nil(t, stale)
	})

	t.Run("find all ordena por item e ignora chaves removidas", func(t *testing.T) {
		repo, server := newTestRedisRepository(t)
		require.NoError(t, repo.Upsert(sampleProfile("C3", june)))
		require.NoError(t, repo.Upsert(sampleProfile("A1", june)))
		require.NoError(t, repo.Upsert(sampleProfile("B2", june)))

		server.Del("forecast:profile:B2")

		profiles, err := repo.FindAll()

		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, "A1", profiles[0].EntityID)
		assert.Equal(t, "C3", profiles[1].EntityID)
	})

	t.Run("find all sem perfis", func(t *testing.T) {
		repo, _ := newTestRedisRepository(t)

		profiles, err := repo.FindAll()

		require.NoError(t, err)
		assert.NotNil(t, profiles)
		assert.Empty(t, profiles)
	})

	t.Run("falha de conexão é propagada", func(t *testing.T) {
		repo, server := newTestRedisRepository(t)
		server.Close()

		_, err := repo.FindAll()

		assert.Error(t, err)
	})
}
