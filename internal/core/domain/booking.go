package domain

import (
	"time"

	"github.com/google/uuid"
)

type Patient struct {
	Name       string `json:"name"`
	SecondName string `json:"secondName,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

type BookingRequest struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Comments   string    `json:"comments,omitempty"`
	Patient    Patient   `json:"patient"`
	FacilityID uuid.UUID `json:"facilityId"`
}

// SlotBookedEvent публикуется после передачи брони во внешний сервис.
// Консьюмеры получают событие как минимум один раз.
type SlotBookedEvent struct {
	Slot BookingRequest `json:"slot"`
}
