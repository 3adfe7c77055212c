package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/umd-esiea/umd-api/internal/api/metrics"
)

const visitorTTL = 3 * time.Minute

// limiterStore keeps one token bucket per client identifier and forgets
// clients idle for longer than visitorTTL.
type limiterStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
	swept    time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterStore(perSecond float64, burst int) *limiterStore {
	return &limiterStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow implements echo's RateLimiterStore.
func (s *limiterStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.swept) > visitorTTL {
		for id, v := range s.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(s.visitors, id)
			}
		}
		s.swept = now
	}

	v, ok := s.visitors[identifier]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.visitors[identifier] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1), nil
}

// RateLimit throttles requests per client IP.
func RateLimit(perSecond float64, burst int) echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: newLimiterStore(perSecond, burst),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			metrics.RateLimitedTotal.WithLabelValues(c.Path()).Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		},
	})
}
