package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/movies-api/api"
	"github.com/metinatakli/movies-api/internal/jsonutil"
	"golang.org/x/time/rate"
)

const (
	ErrNotFound         = "The requested resource not found"
	ErrMethodNotAllowed = "The method is not supported for this resource"
	ErrRateLimited      = "Rate limit exceeded"
)

func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, ErrNotFound, nil)
}

func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed, nil)
}

const clientIdleTimeout = 3 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit gives every client IP its own token bucket. Requests over the
// limit are rejected with 429. Buckets idle for longer than
// clientIdleTimeout are dropped.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*client)
		lastSweep = time.Now()
	)

	allow := func(ip string, now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(lastSweep) > clientIdleTimeout {
			for key, c := range clients {
				if now.Sub(c.lastSeen) > clientIdleTimeout {
					delete(clients, key)
				}
			}
			lastSweep = now
		}

		c, ok := clients[ip]
		if !ok {
			c = &client{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
			clients[ip] = c
		}
		c.lastSeen = now

		return c.limiter.AllowN(now, 1)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allow(clientIP(r), time.Now()) {
				writeError(w, r, http.StatusTooManyRequests, ErrRateLimited, http.Header{
					"Retry-After": []string{"1"},
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP expects RemoteAddr to already be rewritten by chi's RealIP.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, headers http.Header) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := jsonutil.WriteJSON(w, status, resp, headers)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
