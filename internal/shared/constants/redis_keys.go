package constants

import (
	"fmt"
	"time"
)

// Redis key layout
// Pattern: queuesmart:{module}:{identifier}

const (
	CACHE_PREFIX = "queuesmart"
)

// ================== DASHBOARD SESSIONS ==================

const (
	CACHE_KEY_DASHBOARD_SESSION = CACHE_PREFIX + ":dashboard:session:" // + session-id

	TTL_DASHBOARD_SESSION = 2 * time.Hour
)

// ================== RATE LIMITING ==================

const (
	CACHE_KEY_RATE_LIMIT = CACHE_PREFIX + ":ratelimit:" // + ip:type
)

// DashboardSessionKey returns the Redis key holding one session's dashboard state
func DashboardSessionKey(sessionID string) string {
	return CACHE_KEY_DASHBOARD_SESSION + sessionID
}

// RateLimitKey returns the sliding-window key for a client and limit class
func RateLimitKey(clientIP, limitType string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_RATE_LIMIT, clientIP, limitType)
}
