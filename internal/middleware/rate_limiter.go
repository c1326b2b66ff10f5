package middleware

import (
	"net/http"
	"sync"
	"time"

	"loja/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// rateEntry tracks request counts per IP within a sliding window.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*rateEntry)
	loginMapMu sync.Mutex

	apiRateMap   = make(map[string]*rateEntry)
	apiRateMapMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return limit(loginMap, &loginMapMu, 20, time.Minute,
		"Muitas tentativas de login. Tente novamente em 1 minuto.")
}

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(max int, window time.Duration) gin.HandlerFunc {
	return limit(apiRateMap, &apiRateMapMu, max, window,
		"Muitas requisições. Tente novamente em instantes.")
}

func limit(entries map[string]*rateEntry, mu *sync.Mutex, max int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		entry, exists := entries[ip]
		if !exists {
			entry = &rateEntry{}
			entries[ip] = entry
		}
		mu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			// Reset sliding window
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > max {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// ── Purge goroutine ──────────────────────────────────────────────────────────
// Periodically removes expired entries from both maps so IPs that never
// return don't accumulate forever.

const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := purgeMap(loginMap, &loginMapMu, now) + purgeMap(apiRateMap, &apiRateMapMu, now)
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter maps purged")
		}
	}
}

func purgeMap(entries map[string]*rateEntry, mu *sync.Mutex, now time.Time) int {
	mu.Lock()
	defer mu.Unlock()
	purged := 0
	for ip, entry := range entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}
