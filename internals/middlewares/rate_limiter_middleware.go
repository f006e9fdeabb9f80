// file: internals/middlewares/rate_limiter_middleware.go
package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Counters live in process memory (limiter's default store); good for a
// single instance only. A multi-instance deployment needs a shared store.

// LenientRateLimiter: read endpoints. Counts GET only inside a group that
// also carries the strict limiter.
func LenientRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "lenient:" + c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Method() != fiber.MethodGet
		},
		LimitReached: rateLimitReached,
	})
}

// StrictRateLimiter: mutating endpoints.
func StrictRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "strict:" + c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodGet
		},
		LimitReached: rateLimitReached,
	})
}

// AuthRateLimiter: login endpoints, very low ceiling against credential guessing.
func AuthRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: rateLimitReached,
	})
}

func rateLimitReached(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error": "Çok fazla istek gönderildi. Lütfen daha sonra tekrar deneyin.",
	})
}
