package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Extensões aceitas para comprovantes e documentos de prestação de contas
// (mesma lista do validador original).
var allowedDocumentExts = map[string]struct{}{
	".pdf":  {},
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".xls":  {},
	".xlsx": {},
}

func IsAllowedDocumentExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedDocumentExts[ext]
	return ok
}

// SaveUpload valida a extensão e grava o arquivo em
// <uploadDir>/<subdir>/<uuid><ext>, devolvendo o caminho relativo salvo.
func SaveUpload(c *fiber.Ctx, fh *multipart.FileHeader, uploadDir, subdir string) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Arquivo ausente")
	}
	if !IsAllowedDocumentExt(fh.Filename) {
		return "", fiber.NewError(fiber.StatusBadRequest,
			"Tipo de arquivo não suportado. Use PDF, JPG, PNG, GIF, XLS ou XLSX.")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	now := time.Now()
	rel := filepath.Join(subdir, fmt.Sprintf("%04d/%02d", now.Year(), now.Month()), uuid.NewString()+ext)
	dst := filepath.Join(uploadDir, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Falha ao preparar diretório de upload")
	}
	if err := c.SaveFile(fh, dst); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Falha ao salvar arquivo")
	}
	return rel, nil
}
