package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// IdentityLocal is the fiber Locals key under which the auth middleware
// stores the authenticated identity.
const IdentityLocal = "auth_identity"

// RequestLogger logs each request and records it in metrics.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		route := c.Route().Path
		metrics.RecordRequest(route, c.Method(), status, elapsed)

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
		}
		if identity, ok := c.Locals(IdentityLocal).(string); ok && identity != "" {
			fields = append(fields, zap.String("identity", identity))
		}
		logger.Info("request", fields...)
		return err
	}
}
