package middleware

import (
	"strings"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"
	"funkopop-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth resolves the caller's identity and stores it in the request
// context. An identity already attached to the context (an established
// session) short-circuits; otherwise the bearer token is decoded and the user
// looked up, with the password excluded by the response shape.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := c.Locals("user").(*model.User); ok {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperror.Unauthorized()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return apperror.Unauthorized()
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return apperror.Unauthorized()
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return apperror.Unauthorized()
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// RequireRole permits the request if the resolved identity's role is a member
// of the given set
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*model.User)
		if !ok {
			return apperror.Unauthorized()
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return apperror.Forbidden()
	}
}
