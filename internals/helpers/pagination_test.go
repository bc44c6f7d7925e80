// file: internals/helpers/pagination_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", target, nil)); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	p := resolveFor(t, "/t")
	if p.Page != 1 || p.PerPage != 20 || p.Offset != 0 {
		t.Errorf("defaults = %+v", p)
	}

	p = resolveFor(t, "/t?page=3&per_page=10")
	if p.Page != 3 || p.PerPage != 10 || p.Offset != 20 || p.Limit != 10 {
		t.Errorf("page=3 per_page=10: %+v", p)
	}

	// limit is an alias for per_page
	p = resolveFor(t, "/t?limit=5")
	if p.PerPage != 5 {
		t.Errorf("limit alias ignored: %+v", p)
	}

	p = resolveFor(t, "/t?page=-2&per_page=9999")
	if p.Page != 1 {
		t.Errorf("negative page not clamped: %+v", p)
	}
	if p.PerPage != 100 {
		t.Errorf("per_page not capped at max: %+v", p)
	}
}

func TestBuildPagination(t *testing.T) {
	pg := BuildPagination(45, 2, 20)
	if pg.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Errorf("page 2 of 3 should have next and prev: %+v", pg)
	}

	pg = BuildPagination(0, 1, 20)
	if pg.TotalPages != 0 || pg.HasNext || pg.HasPrev {
		t.Errorf("empty set: %+v", pg)
	}
}
