package services

import (
	"context"
	"time"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/utils"
)

// BookingValidator проверяет запрос брони против актуального недельного
// расписания, полученного через кэш.
type BookingValidator struct {
	cacheService AvailabilityProvider
}

func NewBookingValidator(cacheService AvailabilityProvider) *BookingValidator {
	return &BookingValidator{
		cacheService: cacheService,
	}
}

// Validate прогоняет проверки по порядку и останавливается на первой
// неудачной. Ошибки не накапливаются. Инфраструктурная ошибка получения
// расписания возвращается отдельно и без преобразований.
func (v *BookingValidator) Validate(ctx context.Context, request domain.BookingRequest) (*domain.ValidationError, error) {
	if !request.Start.Before(request.End) {
		return domain.NewStartNotBeforeEndError(request.Start, request.End), nil
	}

	weekMonday := domain.MondayOfWeek(request.Start)
	availability, err := v.cacheService.GetAvailability(ctx, weekMonday)
	if err != nil {
		return nil, err
	}

	if vErr := validateRequestedDuration(request, availability); vErr != nil {
		return vErr, nil
	}

	return validateSlotIsAvailable(request, availability), nil
}

func validateRequestedDuration(request domain.BookingRequest, availability *domain.WeeklyAvailability) *domain.ValidationError {
	requestedMinutes := int(request.End.Sub(request.Start).Minutes())
	if requestedMinutes != availability.SlotDurationMinutes {
		return domain.NewInvalidDurationError(requestedMinutes, availability.SlotDurationMinutes)
	}

	return nil
}

func validateSlotIsAvailable(request domain.BookingRequest, availability *domain.WeeklyAvailability) *domain.ValidationError {
	day := availability.DayOf(request.Start.UTC().Weekday())
	if day == nil || day.WorkPeriod == nil {
		return domain.NewSlotUnavailableError()
	}

	date := utils.StartCurrentDay(request.Start.UTC())

	if request.Start.Before(day.FirstSlotStart(date)) || request.End.After(day.LastSlotEnd(date)) {
		return domain.NewSlotUnavailableError()
	}

	// В отличие от генерации слотов здесь проверяется настоящее
	// пересечение интервалов, а не точное совпадение границ
	if overlaps(request.Start, request.End, day.LunchStart(date), day.LunchEnd(date)) {
		return domain.NewSlotUnavailableError()
	}
	for _, busy := range day.BusySlots {
		if overlaps(request.Start, request.End, busy.Start.Date, busy.End.Date) {
			return domain.NewSlotUnavailableError()
		}
	}

	return nil
}

func overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && end1.After(start2)
}
