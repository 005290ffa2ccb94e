package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"templodigital_backend/internals/constants"
)

func roleApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	if role != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userRole", role)
			return c.Next()
		})
	}
	app.Get("/t", OnlyRoles("acesso negado", allowed...), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyRolesAllowsListedRole(t *testing.T) {
	app := roleApp(constants.RoleTesoureiro, constants.TreasuryRoles...)
	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("executando request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, esperado 200", resp.StatusCode)
	}
}

func TestOnlyRolesRejectsOtherRole(t *testing.T) {
	app := roleApp(constants.RoleMembro, constants.TreasuryRoles...)
	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("executando request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("status = %d, esperado 403", resp.StatusCode)
	}
}

func TestOnlyRolesWithoutRoleLocals(t *testing.T) {
	app := roleApp("", constants.TreasuryRoles...)
	resp, err := app.Test(httptest.NewRequest("GET", "/t", nil))
	if err != nil {
		t.Fatalf("executando request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, esperado 401", resp.StatusCode)
	}
}
