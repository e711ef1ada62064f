package handler

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// maxBodyBytes caps contact submissions well below any legitimate payload:
// the largest valid message is 5000 characters.
const maxBodyBytes = 10 << 10 // 10KB

// MaxBody rejects oversized request bodies before they reach JSON decoding.
func MaxBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// RateLimiter provides per-IP rate limiting over a sliding window.
type RateLimiter struct {
	max     int
	window  time.Duration
	message string

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	timestamps []time.Time
}

// NewRateLimiter creates a limiter allowing max requests per client IP per
// window. message is the 429 response body text.
func NewRateLimiter(max int, window time.Duration, message string) *RateLimiter {
	rl := &RateLimiter{
		max:     max,
		window:  window,
		message: message,
		clients: make(map[string]*clientWindow),
	}
	go rl.cleanupLoop()
	return rl
}

// cleanupLoop periodically removes stale entries from the clients map.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		windowStart := time.Now().Add(-rl.window)
		rl.mu.Lock()
		for ip, cw := range rl.clients {
			valid := cw.timestamps[:0]
			for _, ts := range cw.timestamps {
				if ts.After(windowStart) {
					valid = append(valid, ts)
				}
			}
			cw.timestamps = valid
			if len(cw.timestamps) == 0 {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns an http.Handler that enforces the limit and emits
// standard RateLimit-* response headers on every request.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r)
		now := time.Now()
		windowStart := now.Add(-rl.window)

		rl.mu.Lock()
		cw, ok := rl.clients[ip]
		if !ok {
			cw = &clientWindow{}
			rl.clients[ip] = cw
		}

		// Prune timestamps outside the window; in-place filter on the shared
		// backing array.
		valid := cw.timestamps[:0]
		for _, ts := range cw.timestamps {
			if ts.After(windowStart) {
				valid = append(valid, ts)
			}
		}
		cw.timestamps = valid

		if len(cw.timestamps) >= rl.max {
			oldest := cw.timestamps[0]
			reset := oldest.Add(rl.window).Sub(now)
			rl.mu.Unlock()

			rl.setHeaders(w, 0, reset)
			w.Header().Set("Retry-After", ceilSeconds(reset))
			WriteError(w, http.StatusTooManyRequests, rl.message)
			return
		}

		cw.timestamps = append(cw.timestamps, now)
		remaining := rl.max - len(cw.timestamps)
		var reset time.Duration
		if len(cw.timestamps) > 0 {
			reset = cw.timestamps[0].Add(rl.window).Sub(now)
		}
		rl.mu.Unlock()

		rl.setHeaders(w, remaining, reset)
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) setHeaders(w http.ResponseWriter, remaining int, reset time.Duration) {
	w.Header().Set("RateLimit-Limit", strconv.Itoa(rl.max))
	w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
	w.Header().Set("RateLimit-Reset", ceilSeconds(reset))
}

func ceilSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// LimitPrefix applies mw only to requests whose path starts with prefix;
// other requests skip straight to next.
func LimitPrefix(prefix string, mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client address: the first X-Forwarded-For entry, then
// X-Real-IP, then the connection's remote address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return rip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
