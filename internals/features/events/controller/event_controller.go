package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDTO "templodigital_backend/internals/features/events/dto"
	eventModel "templodigital_backend/internals/features/events/model"
	helper "templodigital_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

var eventSortCols = map[string]string{
	"date":       "event_date",
	"title":      "event_title",
	"created_at": "event_created_at",
}

// GET /api/u/events
// Filtros: type, church_id, start, end (YYYY-MM-DD)
func (h *EventController) ListEvents(c *fiber.Ctx) error {
	p := helper.ParsePage(c, "date", "desc")

	q := h.DB.Model(&eventModel.EventModel{})
	if v := c.Query("type"); v != "" {
		q = q.Where("event_type = ?", v)
	}
	if v := c.Query("church_id"); v != "" {
		q = q.Where("event_church_id = ?", v)
	}
	if v := c.Query("start"); v != "" {
		q = q.Where("event_date >= ?", v)
	}
	if v := c.Query("end"); v != "" {
		q = q.Where("event_date <= ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar eventos")
	}

	var events []eventModel.EventModel
	if err := q.Order(p.OrderClause(eventSortCols, "event_date")).
		Offset(p.Offset()).Limit(p.PerPage).
		Find(&events).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao listar eventos")
	}

	return helper.Success(c, "OK", fiber.Map{
		"events":     events,
		"pagination": helper.BuildPageMeta(p, total),
	})
}

// GET /api/u/events/:id
func (h *EventController) GetEvent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var event eventModel.EventModel
	if err := h.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar evento")
	}
	return helper.Success(c, "OK", event)
}

// POST /api/a/events
func (h *EventController) CreateEvent(c *fiber.Ctx) error {
	var req eventDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	event := req.ToModel()
	if err := h.DB.Create(&event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao criar evento")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Evento criado com sucesso", event)
}

// PUT /api/a/events/:id
func (h *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var event eventModel.EventModel
	if err := h.DB.Where("event_id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Evento não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao buscar evento")
	}

	req.Apply(&event)
	if err := h.DB.Save(&event).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao atualizar evento")
	}
	return helper.Success(c, "Evento atualizado com sucesso", event)
}

// DELETE /api/a/events/:id
func (h *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := h.DB.Where("event_id = ?", id).Delete(&eventModel.EventModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Falha ao excluir evento")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Evento não encontrado")
	}
	return helper.Success(c, "Evento excluído com sucesso", nil)
}
