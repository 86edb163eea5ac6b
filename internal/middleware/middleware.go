package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/nabekabebe/recipe-api/internal/cache"
	"github.com/nabekabebe/recipe-api/internal/service"
)

const ContextUserIDKey = "user_id"

var validateToken = service.ValidateToken

func extractUserID(c echo.Context, rdb cache.Cache) (int, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	userID, err := validateToken(c.Request().Context(), rdb, parts[1])
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return userID, nil
}

// RequireAuth resolves the bearer token against the token store and puts
// the owning user id on the context. It runs before any handler logic, so
// unauthenticated requests never reach a query.
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := extractUserID(c, rdb)
			if err != nil {
				return err
			}
			c.Set(ContextUserIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user's id set by RequireAuth.
func UserID(c echo.Context) int {
	id, _ := c.Get(ContextUserIDKey).(int)
	return id
}

// RateLimit applies a per-IP token bucket. Used on the unauthenticated
// endpoints where credential guessing is possible.
func RateLimit(rps rate.Limit, burst int) echo.MiddlewareFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rps, burst)
			limiters[ip] = l
		}
		return l
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiterFor(c.RealIP()).Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
