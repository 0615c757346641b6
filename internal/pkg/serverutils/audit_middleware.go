package serverutils

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"

	"corp-portal-be/internal/audit"
)

// NewAuditMiddleware records every mutating request on the audit bus.
// Reads (and therefore websocket upgrades) are skipped.
func NewAuditMiddleware(publisher message.Publisher) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()

		switch ctx.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return err
		}

		employeeCode, _ := ctx.Locals("employee_code").(string)
		entry := audit.Entry{
			EventType: "HTTP_" + ctx.Method(),
			Details: map[string]interface{}{
				"path":          ctx.Path(),
				"status":        ctx.Response().StatusCode(),
				"employee_code": employeeCode,
			},
		}
		// Audit delivery never fails the request it describes.
		_ = audit.Publish(publisher, entry)
		return err
	}
}
