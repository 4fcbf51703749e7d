package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/principal"
)

// RoleRequired lets the request through only when the resolved
// principal carries at least one of the given roles.
func RoleRequired(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal.FromCtx(c)
		if err != nil {
			return err
		}
		if !p.HasAnyRole(roles...) {
			return apperrors.Forbidden("insufficient role for this endpoint")
		}
		return c.Next()
	}
}
