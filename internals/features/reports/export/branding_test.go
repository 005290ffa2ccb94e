package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"templodigital_backend/internals/configs"
	churchModel "templodigital_backend/internals/features/churches/model"
)

func newBrandingDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite: %v", err)
	}
	if err := db.AutoMigrate(&churchModel.ChurchConfigurationModel{}); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}
	return db
}

func TestLoadBrandingDefaultsWithoutConfiguration(t *testing.T) {
	db := newBrandingDB(t)

	b := LoadBranding(db)
	if b.ChurchName != "Igreja" {
		t.Errorf("ChurchName = %q, esperado o padrão", b.ChurchName)
	}
	if b.LogoPath != "" {
		t.Errorf("LogoPath = %q, esperado vazio", b.LogoPath)
	}
}

func TestLoadBrandingResolvesRelativeLogoPath(t *testing.T) {
	db := newBrandingDB(t)

	dir := t.TempDir()
	prev := configs.UploadDir
	configs.UploadDir = dir
	t.Cleanup(func() { configs.UploadDir = prev })

	rel := filepath.Join("church_logo", "logo.png")
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("criando diretório: %v", err)
	}
	if err := os.WriteFile(full, []byte("png"), 0o644); err != nil {
		t.Fatalf("gravando logo: %v", err)
	}

	cfg := churchModel.ChurchConfigurationModel{
		ChurchConfigChurchName: "Igreja Central",
		ChurchConfigLogoPath:   &rel,
	}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("criando configuração: %v", err)
	}

	b := LoadBranding(db)
	if b.ChurchName != "Igreja Central" {
		t.Errorf("ChurchName = %q", b.ChurchName)
	}
	if b.LogoPath != full {
		t.Errorf("LogoPath = %q, esperado %q", b.LogoPath, full)
	}
}

func TestLoadBrandingSkipsMissingLogoFile(t *testing.T) {
	db := newBrandingDB(t)

	prev := configs.UploadDir
	configs.UploadDir = t.TempDir()
	t.Cleanup(func() { configs.UploadDir = prev })

	rel := filepath.Join("church_logo", "sumiu.png")
	cfg := churchModel.ChurchConfigurationModel{
		ChurchConfigChurchName: "Igreja Central",
		ChurchConfigLogoPath:   &rel,
	}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("criando configuração: %v", err)
	}

	b := LoadBranding(db)
	if b.LogoPath != "" {
		t.Errorf("LogoPath = %q, esperado vazio para arquivo inexistente", b.LogoPath)
	}
}
