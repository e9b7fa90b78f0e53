package observability

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs completed API requests and feeds the request counters.
// Only /api and /health paths are logged; static asset noise is skipped.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		status := c.Response().StatusCode()
		path := c.Path()
		metrics.RecordRequest(path, c.Method(), status, duration)

		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/health") {
			logger.Info("request",
				zap.String("method", c.Method()),
				zap.String("path", path),
				zap.Int("status", status),
				zap.Duration("duration", duration),
			)
		}
		return err
	}
}
