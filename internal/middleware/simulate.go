package middleware

import (
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"talentflow-backend/internal/utilities"
)

// Latency delays every request by a uniform duration in [min, max], imitating
// a remote API in front of the local store. Zero bounds disable the delay.
func Latency(min, max time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if max > 0 && max >= min {
			d := min
			if max > min {
				d += time.Duration(rand.Int63n(int64(max - min)))
			}
			time.Sleep(d)
		}
		c.Next()
	}
}

// FailureInjection aborts mutating requests with probability rate, before the
// handler runs. A failed attempt therefore commits nothing; callers see a 500
// they may retry against unchanged state. Reads are never failed.
func FailureInjection(rate float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			if rate > 0 && rand.Float64() < rate {
				c.AbortWithStatusJSON(http.StatusInternalServerError, utilities.ErrorResponse{
					Error: "injected transient failure",
				})
				return
			}
		}
		c.Next()
	}
}

// EnvLatencyMiddleware builds the latency middleware from API_LATENCY_MIN_MS
// and API_LATENCY_MAX_MS, defaulting to the 200-1200ms window.
func EnvLatencyMiddleware() gin.HandlerFunc {
	minMs := envInt("API_LATENCY_MIN_MS", 200)
	maxMs := envInt("API_LATENCY_MAX_MS", 1200)
	return Latency(time.Duration(minMs)*time.Millisecond, time.Duration(maxMs)*time.Millisecond)
}

// EnvFailureInjectionMiddleware builds the failure injector from
// API_FAILURE_RATE, defaulting to an 8% write-failure rate.
func EnvFailureInjectionMiddleware() gin.HandlerFunc {
	rateString := os.Getenv("API_FAILURE_RATE")
	rate, err := strconv.ParseFloat(rateString, 64)
	if err != nil || rate < 0 || rate > 1 {
		rate = 0.08
	}
	return FailureInjection(rate)
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
