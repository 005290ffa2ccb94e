package export

import (
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"templodigital_backend/internals/configs"
	churchModel "templodigital_backend/internals/features/churches/model"
)

type Branding struct {
	ChurchName string
	LogoPath   string
}

// LoadBranding lê a configuração da igreja para o cabeçalho dos
// arquivos. Sem configuração cadastrada, cai num nome genérico; logo
// ilegível vira cabeçalho só de texto.
func LoadBranding(db *gorm.DB) Branding {
	b := Branding{ChurchName: "Igreja"}

	var cfg churchModel.ChurchConfigurationModel
	if err := db.First(&cfg).Error; err != nil {
		return b
	}
	if cfg.ChurchConfigChurchName != "" {
		b.ChurchName = cfg.ChurchConfigChurchName
	}
	if cfg.ChurchConfigLogoPath != nil {
		// uploads guardam o caminho relativo ao UPLOAD_DIR
		path := *cfg.ChurchConfigLogoPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(configs.UploadDir, path)
		}
		if _, err := os.Stat(path); err == nil {
			b.LogoPath = path
		}
	}
	return b
}
