package controller

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"templodigital_backend/internals/constants"
	userModel "templodigital_backend/internals/features/users/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userModel.UserModel{}); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}
	return db
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	db := newTestDB(t)

	user := userModel.UserModel{
		UserUserName: "tesoureira",
		UserFullName: "Clara Nunes",
		UserPassword: "hash",
		UserRole:     constants.RoleTesoureiro,
		UserIsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("criando usuário: %v", err)
	}

	ctrl := &UserController{DB: db}
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", user.UserID.String())
		return c.Next()
	})
	app.Get("/me", ctrl.Me)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	if err != nil {
		t.Fatalf("executando request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, esperado 200", resp.StatusCode)
	}

	var body struct {
		Data struct {
			UserName string `json:"user_user_name"`
			Role     string `json:"user_role"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decodificando resposta: %v", err)
	}
	if body.Data.UserName != "tesoureira" || body.Data.Role != constants.RoleTesoureiro {
		t.Errorf("perfil = %+v", body.Data)
	}
}

func TestMeWithoutTokenLocals(t *testing.T) {
	db := newTestDB(t)
	ctrl := &UserController{DB: db}
	app := fiber.New()
	app.Get("/me", ctrl.Me)

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	if err != nil {
		t.Fatalf("executando request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, esperado 401", resp.StatusCode)
	}
}
