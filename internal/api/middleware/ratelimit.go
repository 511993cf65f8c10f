package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/strix8755/LodgeEaseApp-sub000/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, повторите позже"

// DefaultLimiterIdleTTL время, после которого limiter неактивного IP удаляется
const DefaultLimiterIdleTTL = 10 * time.Minute

// IPRateLimiter хранит limiter на каждый IP клиента
// Записи неактивных IP вытесняются по истечении idleTTL
type IPRateLimiter struct {
	ips *cache.Cache
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int, idleTTL time.Duration) *IPRateLimiter {
	if idleTTL <= 0 {
		idleTTL = DefaultLimiterIdleTTL
	}
	return &IPRateLimiter{
		ips: cache.New(idleTTL, 2*idleTTL),
		r:   r,
		b:   b,
	}
}

// GetLimiter возвращает limiter для IP, создавая его при первом обращении
// Каждое обращение продлевает жизнь записи
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Get(ip); ok {
		limiter := v.(*rate.Limiter)
		i.ips.SetDefault(ip, limiter)
		return limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	if err := i.ips.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		// запись успел создать параллельный запрос
		if v, ok := i.ips.Get(ip); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// Len количество отслеживаемых IP
func (i *IPRateLimiter) Len() int {
	return i.ips.ItemCount()
}

// RateLimit ограничивает частоту запросов с одного IP
func RateLimit(requestsPerSecond float64, burst int) mux.MiddlewareFunc {
	limiter := NewIPRateLimiter(rate.Limit(requestsPerSecond), burst, DefaultLimiterIdleTTL)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.GetLimiter(clientIP(r)).Allow() {
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
