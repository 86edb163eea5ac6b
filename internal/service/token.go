package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nabekabebe/recipe-api/internal/cache"
)

const tokenKeyPrefix = "token:"

var ErrInvalidToken = errors.New("invalid token")

// newTokenValue generates opaque token strings; tests can override it.
var newTokenValue = defaultTokenValue

func defaultTokenValue() string {
	return uuid.NewString()
}

// IssueToken stores an opaque bearer token bound to the user id and returns
// it. ttl <= 0 makes the token valid until removed.
func IssueToken(ctx context.Context, rdb cache.Cache, userID int, ttl time.Duration) (string, error) {
	token := newTokenValue()
	if err := rdb.Set(ctx, tokenKeyPrefix+token, strconv.Itoa(userID), ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueToken: %w", err)
	}
	return token, nil
}

// ValidateToken resolves an opaque token to the user id it was issued for.
func ValidateToken(ctx context.Context, rdb cache.Cache, token string) (int, error) {
	val, err := rdb.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrInvalidToken
		}
		return 0, fmt.Errorf("ValidateToken: %w", err)
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}
