package in

import (
	"context"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
)

// AvailabilityUseCase - чтение недельной доступности.
// Ошибка валидации и инфраструктурная ошибка возвращаются раздельно.
type AvailabilityUseCase interface {
	GetWeeklyAvailability(ctx context.Context, date string) (*domain.AvailabilityResponse, *domain.ValidationError, error)
}

// BookingUseCase - бронирование слота.
type BookingUseCase interface {
	TakeSlot(ctx context.Context, request domain.BookingRequest) (*domain.ValidationError, error)
}

// InvalidationUseCase - инвалидация кэша по событию брони.
type InvalidationUseCase interface {
	InvalidateBookedSlot(ctx context.Context, event domain.SlotBookedEvent) error
}
