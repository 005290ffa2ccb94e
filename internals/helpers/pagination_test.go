package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func parseFor(t *testing.T, target string) PageParams {
	t.Helper()
	app := fiber.New()
	var p PageParams
	app.Get("/t", func(c *fiber.Ctx) error {
		p = ParsePage(c, "name", "asc")
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest("GET", target, nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("executando request: %v", err)
	}
	return p
}

func TestParsePageDefaults(t *testing.T) {
	p := parseFor(t, "/t")
	if p.Page != 1 || p.PerPage != DefaultPageOpts.DefaultPerPage {
		t.Errorf("defaults = %+v", p)
	}
	if p.SortBy != "name" || p.SortOrder != "asc" {
		t.Errorf("sort defaults = %+v", p)
	}
}

func TestParsePageClampsPerPage(t *testing.T) {
	p := parseFor(t, "/t?per_page=99999")
	if p.PerPage != DefaultPageOpts.MaxPerPage {
		t.Errorf("PerPage = %d, esperado teto %d", p.PerPage, DefaultPageOpts.MaxPerPage)
	}

	p = parseFor(t, "/t?page=-3&per_page=0")
	if p.Page != 1 || p.PerPage != DefaultPageOpts.DefaultPerPage {
		t.Errorf("valores inválidos deveriam cair nos defaults: %+v", p)
	}
}

func TestOrderClauseRestrictsColumns(t *testing.T) {
	allowed := map[string]string{"name": "member_name"}

	p := PageParams{SortBy: "name", SortOrder: "desc"}
	if got := p.OrderClause(allowed, "member_name"); got != "member_name desc" {
		t.Errorf("OrderClause = %q", got)
	}

	// coluna desconhecida nunca vaza para o SQL
	p = PageParams{SortBy: "member_password; drop table members", SortOrder: "asc"}
	if got := p.OrderClause(allowed, "member_name"); got != "member_name asc" {
		t.Errorf("OrderClause com coluna desconhecida = %q", got)
	}
}

func TestBuildPageMeta(t *testing.T) {
	meta := BuildPageMeta(PageParams{Page: 2, PerPage: 25}, 51)
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, esperado 3", meta.TotalPages)
	}
	meta = BuildPageMeta(PageParams{Page: 1, PerPage: 25}, 0)
	if meta.TotalPages != 1 {
		t.Errorf("TotalPages vazio = %d, esperado 1", meta.TotalPages)
	}
}
