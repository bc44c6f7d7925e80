// file: internals/middlewares/tenancy/school_context_test.go
package tenancy

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newTestApp(known map[string]uuid.UUID) (*fiber.App, *uuid.UUID) {
	var seen uuid.UUID
	app := fiber.New()
	app.Use(SchoolContext(SchoolContextOpts{
		Resolver: func(c *fiber.Ctx, slug string) (uuid.UUID, error) {
			id, ok := known[slug]
			if !ok {
				return uuid.Nil, errors.New("no such school")
			}
			return id, nil
		},
	}))
	app.Get("/t", func(c *fiber.Ctx) error {
		seen = c.Locals("school_id").(uuid.UUID)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &seen
}

func TestSchoolContextResolvesSlug(t *testing.T) {
	wantID := uuid.New()
	app, seen := newTestApp(map[string]uuid.UUID{"nursing-academy": wantID})

	req := httptest.NewRequest("GET", "/t", nil)
	req.Header.Set(HeaderSchoolID, "nursing-academy")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if *seen != wantID {
		t.Errorf("school_id in locals = %s, want %s", *seen, wantID)
	}
}

func TestSchoolContextMissingHeader(t *testing.T) {
	app, _ := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSchoolContextUnknownSchool(t *testing.T) {
	app, _ := newTestApp(map[string]uuid.UUID{"other": uuid.New()})

	req := httptest.NewRequest("GET", "/t", nil)
	req.Header.Set(HeaderSchoolID, "nope")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestNormalizeSlug(t *testing.T) {
	cases := map[string]string{
		"  Nursing-Academy ":        "nursing-academy",
		"nursing-academy.app.test":  "nursing-academy",
		"NURSING":                   "nursing",
		"":                          "",
	}
	for in, want := range cases {
		if got := normalizeSlug(in); got != want {
			t.Errorf("normalizeSlug(%q) = %q, want %q", in, got, want)
		}
	}
}
