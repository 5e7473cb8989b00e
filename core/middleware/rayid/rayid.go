package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's ray ID.
const HeaderName = "X-Ray-Id"

// New returns a middleware that assigns every request a ray ID.
// An incoming X-Ray-Id header is honored so IDs propagate across services;
// otherwise a fresh UUID is generated. The ID is stored in c.Locals("ray_id")
// for the logger and echoed back in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
