// Package principal resolves the authenticated actor for a request.
// The JWT middleware verifies the token signature; this package trusts
// only the sub (username) claim and resolves id and roles from the
// user store on every request. Nothing is cached across requests.
package principal

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/witoldp/petcare-backend/internal/apperrors"
	"github.com/witoldp/petcare-backend/internal/models"
	"github.com/witoldp/petcare-backend/internal/repository"
)

const localsKey = "principal"

type Principal struct {
	UserID   uuid.UUID
	Username string
	Roles    []models.Role
}

func (p Principal) HasRole(role models.Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (p Principal) HasAnyRole(roles ...models.Role) bool {
	for _, r := range roles {
		if p.HasRole(r) {
			return true
		}
	}
	return false
}

type Resolver struct {
	users repository.Users
}

func NewResolver(users repository.Users) *Resolver {
	return &Resolver{users: users}
}

// Attach is fiber middleware placed after the JWT guard. It loads the
// user named by the token's sub claim and stores the request-scoped
// principal in locals.
func (r *Resolver) Attach() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok || token == nil {
			return apperrors.NotAuthenticated("missing or invalid token")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return apperrors.NotAuthenticated("invalid token claims")
		}
		username, _ := claims["sub"].(string)
		if username == "" {
			return apperrors.NotAuthenticated("token has no subject")
		}

		user, err := r.users.GetByUsername(username)
		if err != nil {
			if apperrors.IsKind(err, apperrors.KindNotFound) {
				return apperrors.NotAuthenticated("unknown user")
			}
			return err
		}

		c.Locals(localsKey, Principal{
			UserID:   user.ID,
			Username: user.Username,
			Roles:    user.RoleSet(),
		})
		return c.Next()
	}
}

// FromCtx returns the principal attached by the resolver middleware.
func FromCtx(c *fiber.Ctx) (Principal, error) {
	p, ok := c.Locals(localsKey).(Principal)
	if !ok {
		return Principal{}, apperrors.NotAuthenticated("no authenticated principal")
	}
	return p, nil
}
