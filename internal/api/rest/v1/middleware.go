package v1

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"therapy_companion_service/internal/app"
	"therapy_companion_service/internal/domain/therapists"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

const identityContextKey = "therapistIdentity"

// BearerAuth resolves the Authorization header to a therapist identity.
// The master token maps to the built-in admin identity; every other token
// must belong to an active therapist account.
func BearerAuth(accountService therapists.AccountService, masterToken string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if masterToken != "" && token == masterToken {
			setIdentity(ctx, therapists.Identity{
				Email:        therapists.AdminEmail,
				Name:         "System Admin",
				Organization: "System",
			})
			ctx.Next()
			return
		}

		therapist, err := accountService.ValidateToken(ctx.Request.Context(), token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		setIdentity(ctx, therapist.Identity())
		ctx.Next()
	}
}

func setIdentity(ctx *gin.Context, identity therapists.Identity) {
	ctx.Set(identityContextKey, identity)
}

// identityFromContext returns the authenticated identity set by BearerAuth.
func identityFromContext(ctx *gin.Context) therapists.Identity {
	if v, ok := ctx.Get(identityContextKey); ok {
		if identity, ok := v.(therapists.Identity); ok {
			return identity
		}
	}
	return therapists.Identity{}
}

// clientRateLimiter keeps one token bucket per client IP.
type clientRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimit returns middleware allowing n requests per window for each
// client IP, with a burst of the same size.
func NewRateLimit(n int, window time.Duration) gin.HandlerFunc {
	rl := &clientRateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Every(window / time.Duration(n)),
		burst:    n,
	}

	go rl.cleanup()

	return func(ctx *gin.Context) {
		if !rl.allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "Rate limit exceeded"})
			return
		}
		ctx.Next()
	}
}

func (rl *clientRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter.Allow()
}

// cleanup evicts buckets for clients not seen for an hour.
func (rl *clientRateLimiter) cleanup() {
	for range time.Tick(10 * time.Minute) {
		rl.mu.Lock()
		for ip, entry := range rl.limiters {
			if time.Since(entry.lastSeen) > time.Hour {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "therapy_companion_http_requests_total",
		Help: "Number of HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "therapy_companion_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Metrics records request counts and latencies for Prometheus.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ClientIPContext copies the client IP onto the request context so audit
// entries written by the services carry it.
func ClientIPContext() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		reqCtx := app.WithClientIP(ctx.Request.Context(), ctx.ClientIP())
		ctx.Request = ctx.Request.WithContext(reqCtx)
		ctx.Next()
	}
}
