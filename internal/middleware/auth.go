package middleware

import (
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/auth"
)

const ClaimsKey = "auth_claims"

// Auth guards the admin endpoints: a missing token is 401, a present but
// invalid or expired one is 403.
func Auth(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
