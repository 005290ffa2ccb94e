package dto

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func withQuery(t *testing.T, target string, fn func(c *fiber.Ctx)) {
	t.Helper()
	app := fiber.New()
	app.Get("/t", func(c *fiber.Ctx) error {
		fn(c)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest("GET", target, nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("executando request: %v", err)
	}
}

func TestMonthYearFromQuery(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name      string
		target    string
		wantMonth int
		wantYear  int
	}{
		{"válido", "/t?month=3&year=2024", 3, 2024},
		{"mês fora da faixa cai no atual", "/t?month=13&year=2024", int(now.Month()), 2024},
		{"não numérico cai no atual", "/t?month=abc&year=xyz", int(now.Month()), now.Year()},
		{"ausente cai no atual", "/t", int(now.Month()), now.Year()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			withQuery(t, tc.target, func(c *fiber.Ctx) {
				month, year := MonthYearFromQuery(c)
				if month != tc.wantMonth || year != tc.wantYear {
					t.Errorf("MonthYearFromQuery = %d/%d, esperado %d/%d",
						month, year, tc.wantMonth, tc.wantYear)
				}
			})
		})
	}
}

func TestDateFromQuery(t *testing.T) {
	withQuery(t, "/t?end_date=2024-03-01", func(c *fiber.Ctx) {
		got := DateFromQuery(c, "end_date")
		want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("DateFromQuery = %v, esperado %v", got, want)
		}
	})

	// nomes alternativos de parâmetro valem na ordem dada
	withQuery(t, "/t?class_date=2024-05-12", func(c *fiber.Ctx) {
		got := DateFromQuery(c, "class_date", "date")
		want := time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("DateFromQuery via class_date = %v, esperado %v", got, want)
		}
	})
	withQuery(t, "/t?date=2024-05-12", func(c *fiber.Ctx) {
		got := DateFromQuery(c, "class_date", "date")
		want := time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("DateFromQuery via alias date = %v, esperado %v", got, want)
		}
	})

	// data ruim cai em hoje, nunca erra
	withQuery(t, "/t?end_date=31-12-2024", func(c *fiber.Ctx) {
		got := DateFromQuery(c, "end_date")
		now := time.Now()
		if got.Year() != now.Year() || got.Month() != now.Month() || got.Day() != now.Day() {
			t.Errorf("DateFromQuery com data ruim = %v, esperado hoje", got)
		}
	})
}

func TestYearFromQuery(t *testing.T) {
	withQuery(t, "/t?year=-5", func(c *fiber.Ctx) {
		if got := YearFromQuery(c); got != time.Now().Year() {
			t.Errorf("YearFromQuery(-5) = %d, esperado ano corrente", got)
		}
	})
	withQuery(t, "/t?year=2022", func(c *fiber.Ctx) {
		if got := YearFromQuery(c); got != 2022 {
			t.Errorf("YearFromQuery = %d, esperado 2022", got)
		}
	})
}
