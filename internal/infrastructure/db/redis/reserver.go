package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/umd-esiea/umd-api/internal/core/domain"
)

const defaultReservationTTL = 10 * time.Second

// releaseScript deletes a reservation only while it is still held by the
// caller's token, so an expired and re-acquired key is never freed by mistake.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// KeyReserver serialises concurrent writers of the same natural key across
// API instances. Key format: reserve:<resource>:<field>:<value>
type KeyReserver struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewKeyReserver creates a KeyReserver. Reservations expire after ttl even
// if never released.
func NewKeyReserver(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *KeyReserver {
	if ttl <= 0 {
		ttl = defaultReservationTTL
	}
	return &KeyReserver{client: client, ttl: ttl, logger: logger}
}

// Reserve claims every key or none. A key held by another writer is reported
// as a conflict on that key.
func (r *KeyReserver) Reserve(ctx context.Context, resource string, keys []domain.Key) (func(), error) {
	token := uuid.NewString()
	held := make([]string, 0, len(keys))

	release := func() {
		// release must succeed even when the request context is already done
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
		defer cancel()
		for _, k := range held {
			if err := releaseScript.Run(ctx, r.client, []string{k}, token).Err(); err != nil {
				r.logger.Warn().Err(err).Str("key", k).Msg("release reservation")
			}
		}
	}

	for _, key := range keys {
		k := reservationKey(resource, key)
		ok, err := r.client.SetNX(ctx, k, token, r.ttl).Result()
		if err != nil {
			release()
			return nil, fmt.Errorf("reserve %s: %w", k, err)
		}
		if !ok {
			release()
			return nil, domain.Conflict(resource, key)
		}
		held = append(held, k)
	}

	return release, nil
}

func reservationKey(resource string, key domain.Key) string {
	return fmt.Sprintf("reserve:%s:%s:%s", resource, key.Field, key.Value)
}
