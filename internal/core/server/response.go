package server

import "github.com/gofiber/fiber/v2"

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
	// Fields holds per-field validation messages.
	Fields map[string]string `json:"fields,omitempty"`
	// Redirect tells the storefront where to send the user instead.
	Redirect string `json:"redirect,omitempty"`
}

// RayID returns the request ID assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// Error writes an ErrorResponse with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// ValidationError writes a 422 with per-field messages.
func ValidationError(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
		Fields:  fields,
	})
}

// Redirect writes a 409 asking the storefront to navigate elsewhere.
func Redirect(c *fiber.Ctx, message, location string) error {
	return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
		Message:  message,
		RayID:    RayID(c),
		Redirect: location,
	})
}
