package handlers

import (
	"net/http"
	"sync"

	"healthtrack/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Context keys set by requireAuth for downstream handlers.
const (
	ctxUserID    = "userId"
	ctxUserEmail = "userEmail"
	ctxUserRole  = "userRole"
)

// requireAuth verifies the bearer token and, when roles is non-empty, that
// the caller holds one of them. Rejections carry fixed generic messages; the
// specific cause is only logged.
func (h *Handler) requireAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := service.ExtractBearer(c.GetHeader("Authorization"))
		if token == "" {
			h.failStatus(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		claims, err := h.services.ParseToken(token)
		if err != nil {
			if h.log != nil {
				h.log.Warnw("auth_token_rejected", "path", c.FullPath(), "err", err)
			}
			h.failStatus(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			h.failStatus(c, http.StatusForbidden, msgForbidden)
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// requesterID returns the authenticated user's id stored by requireAuth.
func requesterID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func requesterRole(c *gin.Context) string {
	return c.GetString(ctxUserRole)
}

// clientLimiters hands out one token bucket per client IP. Entries are never
// evicted, so the map grows with the number of distinct client IPs seen over
// the process lifetime.
// TODO: evict buckets idle past a few minutes if memory becomes a concern.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newClientLimiters(limit rate.Limit, burst int) *clientLimiters {
	return &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (cl *clientLimiters) get(ip string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	l, ok := cl.limiters[ip]
	if !ok {
		l = rate.NewLimiter(cl.limit, cl.burst)
		cl.limiters[ip] = l
	}
	return l
}

// rateLimit throttles requests per client IP.
func (h *Handler) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.limiters.get(c.ClientIP()).Allow() {
			h.failStatus(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
