package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/witoldp/petcare-backend/internal/apperrors"
)

// JWTProtected verifies the bearer token signature. Principal
// resolution happens in a separate middleware behind this guard.
func JWTProtected(key []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: key},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return apperrors.NotAuthenticated("invalid or expired token")
		},
	})
}
