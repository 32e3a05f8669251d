package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// redisProfileRepository guarda cada perfil como um documento JSON em <prefix>:profile:<item>.
// O conjunto <prefix>:profiles lista os itens e <prefix>:profiles:last_updated:<data>
// indexa os itens pelo último período aplicado.
type redisProfileRepository struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func NewRedisProfileRepository(client *redis.Client, prefix string, timeout time.Duration) ProfileRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &redisProfileRepository{
		client:  client,
		prefix:  prefix,
		timeout: timeout,
	}
}

func (r *redisProfileRepository) profileKey(entityID string) string {
	return fmt.Sprintf("%s:profile:%s", r.prefix, entityID)
}

func (r *redisProfileRepository) indexKey() string {
	return fmt.Sprintf("%s:profiles", r.prefix)
}

func (r *redisProfileRepository) periodKey(period time.Time) string {
	return fmt.Sprintf("%s:profiles:last_updated:%s", r.prefix, period.Format(domain.PeriodLayout))
}

func (r *redisProfileRepository) FindOne(entityID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	return r.get(ctx, entityID)
}

func (r *redisProfileRepository) get(ctx context.Context, entityID string) (*domain.Profile, error) {
	data, err := r.client.Get(ctx, r.profileKey(entityID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar perfil no redis: %w", err)
	}

	profile := &domain.Profile{}
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("erro ao deserializar perfil %s: %w", entityID, err)
	}

	return profile, nil
}

func (r *redisProfileRepository) FindAll() ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	entityIDs, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar perfis no redis: %w", err)
	}

	profiles := make([]*domain.Profile, 0, len(entityIDs))
	if len(entityIDs) == 0 {
		return profiles, nil
	}

	sort.Strings(entityIDs)

	keys := make([]string, len(entityIDs))
	for i, entityID := range entityIDs {
		keys[i] = r.profileKey(entityID)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfis no redis: %w", err)
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue // removido entre o SMEMBERS e o MGET
		}

		profile := &domain.Profile{}
		if err := json.Unmarshal([]byte(raw), profile); err != nil {
			return nil, fmt.Errorf("erro ao deserializar perfil %s: %w", entityIDs[i], err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (r *redisProfileRepository) FindOneByLastUpdated(period time.Time) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	entityID, err := r.client.SRandMember(ctx, r.periodKey(period)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar índice de last_updated: %w", err)
	}

	return r.get(ctx, entityID)
}

func (r *redisProfileRepository) Upsert(profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	previous, err := r.get(ctx, profile.EntityID)
	if err != nil {
		return err
	}

	return r.save(ctx, previous, profile)
}

func (r *redisProfileRepository) Update(profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	previous, err := r.get(ctx, profile.EntityID)
	if err != nil {
		return err
	}

	if previous == nil {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profile.EntityID)
	}

	return r.save(ctx, previous, profile)
}

func (r *redisProfileRepository) save(ctx context.Context, previous, profile *domain.Profile) error {
	stored := profile.Clone()
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("erro ao serializar perfil %s: %w", profile.EntityID, err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.profileKey(profile.EntityID), data, 0)
		pipe.SAdd(ctx, r.indexKey(), profile.EntityID)
		if previous != nil && !previous.LastUpdated.Equal(profile.LastUpdated) {
			pipe.SRem(ctx, r.periodKey(previous.LastUpdated), profile.EntityID)
		}
		pipe.SAdd(ctx, r.periodKey(profile.LastUpdated), profile.EntityID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("erro ao salvar perfil %s no redis: %w", profile.EntityID, err)
	}

	return nil
}
