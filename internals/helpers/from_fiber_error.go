package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError converte o erro devolvido por DB.Transaction (normalmente
// *fiber.Error) na resposta JSON padrão. Qualquer outro erro vira 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
