package out

import (
	"context"
	"time"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
)

// SlotServicePort - внешний сервис расписаний, единственный источник правды.
type SlotServicePort interface {
	// GetWeeklyAvailability возвращает расписание недели, начинающейся с
	// weekMonday. (nil, nil) означает пустой ответ без ошибки.
	GetWeeklyAvailability(ctx context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error)

	// TakeSlot передает бронь во внешний сервис.
	TakeSlot(ctx context.Context, request domain.BookingRequest) error
}
