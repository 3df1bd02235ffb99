package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"dashboard/internal/configuration"

	"github.com/redis/rueidis"
)

type RueidisCache struct {
	client rueidis.Client
}

func newRueidisCache(
	hosts []string,
	password string,
	tlsEnabled bool,
	tlsServerName,
	errorContext string,
) (*RueidisCache, error) {
	clientOption := rueidis.ClientOption{
		InitAddress: hosts,
		Password:    password,
	}

	if tlsEnabled {
		clientOption.TLSConfig = &tls.Config{
			ServerName: tlsServerName,
			MinVersion: tls.VersionTLS12,
		}
	}

	client, err := rueidis.NewClient(clientOption)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", errorContext, err)
	}
	return &RueidisCache{client: client}, nil
}

// rateLimitWindow is the fixed window a request counter lives for.
const rateLimitWindow = time.Minute

// GetRateLimit opens the window with SET NX EX and counts the request with
// INCR in one round trip. Only a client over the limit costs a TTL lookup.
func (r *RueidisCache) GetRateLimit(ctx context.Context, identifier string, requestsPerMinute int) (int, error) {
	key := fmt.Sprintf(configuration.CacheAppRateLimitKey, identifier)

	results := r.client.DoMulti(ctx,
		r.client.B().Set().Key(key).Value("0").Nx().ExSeconds(int64(rateLimitWindow.Seconds())).Build(),
		r.client.B().Incr().Key(key).Build(),
	)
	if err := results[0].Error(); err != nil && !rueidis.IsRedisNil(err) {
		return 0, fmt.Errorf("open rate limit window: %w", err)
	}

	count, err := results[1].AsInt64()
	if err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}
	if count <= int64(requestsPerMinute) {
		return 0, nil
	}

	ttl, err := r.client.Do(ctx, r.client.B().Ttl().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, fmt.Errorf("read rate limit window: %w", err)
	}
	return int(max(ttl, 1)), nil
}

func (r *RueidisCache) Close() error {
	r.client.Close()
	return nil
}
