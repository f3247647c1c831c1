package ports

import (
	"context"
	"time"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// CodeStore keeps verification codes in an external store with per-entry
// expiry. Verify consumes the code: a matched code is deleted atomically.
type CodeStore interface {
	Save(ctx context.Context, codeID, email, code string, ttl time.Duration) error
	Verify(ctx context.Context, codeID, code string) (email string, err error)
}
