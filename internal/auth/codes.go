package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

const codeKeyPrefix = "verify:"

// CodeStore keeps email verification codes in Redis so entries expire on
// their own and survive process restarts, instead of accumulating in an
// unbounded in-process map.
type CodeStore struct {
	client *redis.Client
}

func NewCodeStore(client *redis.Client) *CodeStore {
	return &CodeStore{client: client}
}

func (s *CodeStore) Save(ctx context.Context, codeID, email, code string, ttl time.Duration) error {
	key := codeKeyPrefix + codeID
	if err := s.client.HSet(ctx, key, "email", email, "code", code).Err(); err != nil {
		return fmt.Errorf("save verification code: %w", err)
	}
	if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("expire verification code: %w", err)
	}

	return nil
}

// Verify consumes the code: on a match the entry is deleted so it cannot
// be replayed.
func (s *CodeStore) Verify(ctx context.Context, codeID, code string) (string, error) {
	key := codeKeyPrefix + codeID

	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCodeNotFound
		}
		return "", fmt.Errorf("get verification code: %w", err)
	}
	if len(values) == 0 {
		return "", domain.ErrCodeNotFound
	}

	if values["code"] != code {
		return "", domain.ErrCodeMismatch
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return "", fmt.Errorf("consume verification code: %w", err)
	}

	return values["email"], nil
}
