package middleware

import (
	"fmt"
	"strconv"
	"time"

	"chatmint-studio/config"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"
	"chatmint-studio/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Rate limit groups.
const (
	GroupChat          = "chat"
	GroupRegistrations = "registrations"
	GroupWalletAuth    = "wallet_auth"
	GroupOwnership     = "ownership"
	GroupGallery       = "gallery"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// RateLimitRules builds the per-group rules from configuration. Groups with
// a non-positive limit are left out and so not limited.
func RateLimitRules(cfg config.RateLimitConfig) map[string]RateLimitRule {
	window := cfg.Window
	if window <= 0 {
		window = time.Minute
	}
	rules := make(map[string]RateLimitRule)
	for group, limit := range map[string]int64{
		GroupChat:          cfg.Chat,
		GroupRegistrations: cfg.Registrations,
		GroupWalletAuth:    cfg.WalletAuth,
		GroupOwnership:     cfg.Ownership,
		GroupGallery:       cfg.Gallery,
	} {
		if limit > 0 {
			rules[group] = RateLimitRule{Limit: limit, Window: window}
		}
	}
	return rules
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Store failures let the request through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Abort(c, apperror.ErrRateLimitExceeded())
			return
		}

		c.Next()
	}
}

// extractIdentifier keys signed-in requests by wallet, the rest by client IP.
func extractIdentifier(c *gin.Context) string {
	if w, ok := Wallet(c); ok {
		return w.String()
	}
	return c.ClientIP()
}
