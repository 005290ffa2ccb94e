package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "templodigital_backend/internals/features/events/model"
)

type CreateEventRequest struct {
	Title       string  `json:"event_title" validate:"required,min=2,max=255"`
	Date        string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	Time        *string `json:"event_time" validate:"omitempty,datetime=15:04"`
	Description *string `json:"event_description"`
	Type        *string `json:"event_type" validate:"omitempty,oneof=culto reuniao especial"`
	ChurchID    *string `json:"event_church_id" validate:"omitempty,uuid"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	trimPtr(&r.Description)
}

func (r *CreateEventRequest) ToModel() m.EventModel {
	event := m.EventModel{
		EventTitle:       r.Title,
		EventDate:        mustDate(r.Date),
		EventTime:        r.Time,
		EventDescription: r.Description,
		EventType:        m.EventTypeCulto,
		EventChurchID:    parseUUIDPtr(r.ChurchID),
	}
	if r.Type != nil {
		event.EventType = *r.Type
	}
	return event
}

type UpdateEventRequest struct {
	Title       *string `json:"event_title" validate:"omitempty,min=2,max=255"`
	Date        *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Time        *string `json:"event_time" validate:"omitempty,datetime=15:04"`
	Description *string `json:"event_description"`
	Type        *string `json:"event_type" validate:"omitempty,oneof=culto reuniao especial"`
	ChurchID    *string `json:"event_church_id" validate:"omitempty,uuid"`
}

func (r *UpdateEventRequest) Normalize() {
	trimPtr(&r.Title)
	trimPtr(&r.Description)
}

func (r *UpdateEventRequest) Apply(event *m.EventModel) {
	if r.Title != nil {
		event.EventTitle = *r.Title
	}
	if r.Date != nil {
		event.EventDate = mustDate(*r.Date)
	}
	if r.Time != nil {
		event.EventTime = r.Time
	}
	if r.Description != nil {
		event.EventDescription = r.Description
	}
	if r.Type != nil {
		event.EventType = *r.Type
	}
	if id := parseUUIDPtr(r.ChurchID); id != nil {
		event.EventChurchID = id
	}
}

func mustDate(s string) datatypes.Date {
	t, _ := time.Parse("2006-01-02", s)
	return datatypes.Date(t)
}

func parseUUIDPtr(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
