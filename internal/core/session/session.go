package session

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

// Header carries the storefront session between the browser and this service.
const Header = "X-Session-ID"

// UserHeader optionally carries the authenticated user's ID.
const UserHeader = "X-User-ID"

const localsKey = "session_id"

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// New returns a middleware that resolves the session ID for every request.
// Missing or malformed IDs are replaced by a fresh UUID, echoed back in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Header values alias the pooled request buffer; the ID outlives the request as a map key.
		id := utils.CopyString(c.Get(Header))
		if !validID.MatchString(id) {
			id = uuid.NewString()
		}
		c.Locals(localsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}

// ID returns the session ID resolved by the middleware, or "" when it did not run.
func ID(c *fiber.Ctx) string {
	id, _ := c.Locals(localsKey).(string)
	return id
}

// UserID returns the optional authenticated user ID.
func UserID(c *fiber.Ctx) string {
	return utils.CopyString(c.Get(UserHeader))
}
