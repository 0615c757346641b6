package serverutils

import (
	"corp-portal-be/internal/identity"

	"github.com/gofiber/fiber/v2"
)

// NewJwtMiddleware authenticates the request and stores the resolved claims
// in locals for downstream handlers.
func NewJwtMiddleware(verifier *identity.Verifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
		}

		claims, err := verifier.Verify(authHeader[7:])
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		ctx.Locals("user_id", claims.UserId.String())
		ctx.Locals("employee_code", claims.EmployeeCode)
		ctx.Locals("name", claims.Name)
		ctx.Locals("role", claims.Role)
		return ctx.Next()
	}
}

// RequireRoles gates a route to the given roles. Must run after the JWT middleware.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Insufficient role"})
	}
}
