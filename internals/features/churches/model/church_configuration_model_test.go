package model

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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
	if err := db.AutoMigrate(&ChurchConfigurationModel{}); err != nil {
		t.Fatalf("migrando esquema: %v", err)
	}
	return db
}

func TestConfigurationExists(t *testing.T) {
	db := newTestDB(t)

	exists, err := ConfigurationExists(db)
	if err != nil {
		t.Fatalf("ConfigurationExists: %v", err)
	}
	if exists {
		t.Error("banco vazio não deveria reportar configuração")
	}

	cfg := ChurchConfigurationModel{ChurchConfigChurchName: "Igreja Central"}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("criando configuração: %v", err)
	}

	exists, err = ConfigurationExists(db)
	if err != nil {
		t.Fatalf("ConfigurationExists: %v", err)
	}
	if !exists {
		t.Error("configuração criada deveria ser detectada")
	}
}
