// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/x", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveOn(t, "/x", 20, 100)
	if p.Page != 1 || p.PerPage != 20 || p.Offset != 0 || p.Limit != 20 {
		t.Fatalf("paging default salah: %+v", p)
	}
}

func TestResolvePagingPagePerPage(t *testing.T) {
	p := resolveOn(t, "/x?page=3&per_page=10", 20, 100)
	if p.Offset != 20 || p.Limit != 10 || p.Page != 3 {
		t.Fatalf("paging = %+v, want offset 20 limit 10", p)
	}
}

func TestResolvePagingClampsPerPage(t *testing.T) {
	p := resolveOn(t, "/x?per_page=9999", 20, 100)
	if p.PerPage != 100 {
		t.Fatalf("per_page = %d, want clamp ke 100", p.PerPage)
	}
}

func TestResolvePagingSkipAlias(t *testing.T) {
	p := resolveOn(t, "/x?skip=45&limit=10", 20, 100)
	if p.Offset != 45 || p.Limit != 10 {
		t.Fatalf("paging = %+v, want offset 45 limit 10", p)
	}
	if p.Page != 5 {
		t.Fatalf("page = %d, want 5", p.Page)
	}
}

func TestResolvePagingNegativeValues(t *testing.T) {
	p := resolveOn(t, "/x?page=-2&per_page=-5", 20, 100)
	if p.Page != 1 || p.PerPage != 20 || p.Offset != 0 {
		t.Fatalf("nilai negatif harus dinormalisasi: %+v", p)
	}
}

func TestBuildPaginationFromOffset(t *testing.T) {
	pg := BuildPaginationFromOffset(45, 20, 10)
	if pg.Page != 3 || pg.TotalPages != 5 || pg.Total != 45 {
		t.Fatalf("pagination = %+v", pg)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("halaman tengah harus punya next & prev: %+v", pg)
	}

	pg = BuildPaginationFromOffset(0, 0, 10)
	if pg.TotalPages != 1 || pg.HasNext || pg.HasPrev {
		t.Fatalf("pagination kosong = %+v", pg)
	}
}
