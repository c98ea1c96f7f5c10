package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"

	"queuesmart/internal/shared/utils/response"
	"queuesmart/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Middleware enforces per-IP budgets. A Redis failure lets the request
// through rather than taking the UI down with the limiter.
func Middleware(rateLimiter *RateLimiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := getClientIP(c)
		limitType := getRateLimitType(c.Request.Method, c.FullPath())

		result, err := rateLimiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			log.WithFields(map[string]interface{}{
				"ip":   clientIP,
				"type": string(limitType),
			}).WithError(err).ErrorContext(c.Request.Context(), "Rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			log.LogRateLimitExceeded(c.Request.Context(), clientIP, c.FullPath())
			response.AbortWithError(c, http.StatusTooManyRequests,
				"Rate limit exceeded", map[string]interface{}{
					"limit":      result.Limit,
					"reset_time": result.ResetTime,
				})
			return
		}

		c.Next()
	}
}

// getRateLimitType classifies a route. Routes that reach the generative
// responder get the tightest budgets.
func getRateLimitType(method, path string) RateLimitType {
	switch {
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"),
		strings.HasPrefix(path, "/status"):
		return RateLimitTypeHealth

	case strings.HasSuffix(path, "/predictions"),
		strings.HasSuffix(path, "/dashboard/predict"),
		strings.HasSuffix(path, "/dashboard/locate"):
		return RateLimitTypePrediction

	case strings.Contains(path, "/analytics"):
		return RateLimitTypeAnalytics

	case method == http.MethodGet && (strings.Contains(path, "/canteens") ||
		strings.Contains(path, "/dashboard")):
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}

// getClientIP extracts real client IP
func getClientIP(c *gin.Context) string {
	xForwardedFor := c.GetHeader("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	xRealIP := c.GetHeader("X-Real-IP")
	if xRealIP != "" {
		if net.ParseIP(xRealIP) != nil {
			return xRealIP
		}
	}

	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}

	return ip
}
