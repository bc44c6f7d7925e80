// file: internals/middlewares/tenancy/school_context.go
package tenancy

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "practicals_backend/internals/features/schools/model"
)

/* ==========================
   Consts & Types
========================== */

// HeaderSchoolID carries the tenant slug (the front end derives it from its
// subdomain and attaches it to every call).
const HeaderSchoolID = "X-School-ID"

// SchoolResolver maps a slug to a school id. Injectable so handlers can be
// tested without a database.
type SchoolResolver func(c *fiber.Ctx, slug string) (uuid.UUID, error)

type SchoolContextOpts struct {
	DB       *gorm.DB
	Resolver SchoolResolver // defaults to the DB-backed lookup when nil
}

/* ==========================
   Middleware
========================== */

// SchoolContext resolves X-School-ID once per request and pins the school id
// into Locals("school_id"). Every exam table is partitioned by that id, so a
// missing or unknown header is a hard 400/404, never a silent fallback.
func SchoolContext(opts SchoolContextOpts) fiber.Handler {
	resolve := opts.Resolver
	if resolve == nil {
		resolve = dbResolver(opts.DB)
	}
	return func(c *fiber.Ctx) error {
		slug := normalizeSlug(c.Get(HeaderSchoolID))
		if slug == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Missing X-School-ID header")
		}
		id, err := resolve(c, slug)
		if err != nil || id == uuid.Nil {
			return fiber.NewError(fiber.StatusNotFound, "Unknown school")
		}
		c.Locals("school_id", id)
		c.Locals("school_slug", slug)
		return c.Next()
	}
}

func dbResolver(db *gorm.DB) SchoolResolver {
	return func(c *fiber.Ctx, slug string) (uuid.UUID, error) {
		var row schoolModel.SchoolModel
		if err := db.WithContext(c.Context()).
			Where("school_slug = ? AND school_deleted_at IS NULL", slug).
			First(&row).Error; err != nil {
			return uuid.Nil, err
		}
		return row.SchoolID, nil
	}
}

func normalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// slugs never contain dots; tolerate clients sending the full host
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	return s
}
