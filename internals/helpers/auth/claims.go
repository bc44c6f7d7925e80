// file: internals/helpers/auth/claims.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	ErrNoUserInContext   = errors.New("no authenticated user in request context")
	ErrNoSchoolInContext = errors.New("no school context on request")
)

// GetUserIDFromToken returns the authenticated principal's id, as placed in
// Locals("user_id") by the auth middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrNoUserInContext
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}

// GetUserRole returns the role claim set by the auth middleware ("" when absent).
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

// GetSchoolIDFromContext returns the tenant id pinned by the school-context
// middleware. Handlers must scope every exam query with it.
func GetSchoolIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals("school_id").(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrNoSchoolInContext
	}
	return id, nil
}
