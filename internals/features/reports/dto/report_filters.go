package dto

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Filtros de relatório nunca falham: valor ruim cai no período corrente.

func MonthYearFromQuery(c *fiber.Ctx) (int, int) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	if v, err := strconv.Atoi(c.Query("month")); err == nil && v >= 1 && v <= 12 {
		month = time.Month(v)
	}
	if v, err := strconv.Atoi(c.Query("year")); err == nil && v > 0 {
		year = v
	}
	return int(month), year
}

func YearFromQuery(c *fiber.Ctx) int {
	if v, err := strconv.Atoi(c.Query("year")); err == nil && v > 0 {
		return v
	}
	return time.Now().Year()
}

func MonthFromQuery(c *fiber.Ctx) int {
	if v, err := strconv.Atoi(c.Query("month")); err == nil && v >= 1 && v <= 12 {
		return v
	}
	return int(time.Now().Month())
}

// DateFromQuery aceita mais de um nome de parâmetro: o primeiro que
// parsear como data vale.
func DateFromQuery(c *fiber.Ctx, keys ...string) time.Time {
	for _, key := range keys {
		if t, err := time.Parse("2006-01-02", c.Query(key)); err == nil {
			return t
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
