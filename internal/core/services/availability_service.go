package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
	"github.com/suchimauz/facility-slot-manager/internal/utils"
)

var availabilityDateFormat = regexp.MustCompile(`^[0-9]{8}$`)

// AvailabilityService - чтение недельной доступности: валидация даты,
// приведение к понедельнику, кэшированное расписание, сборка ответа.
type AvailabilityService struct {
	cacheService AvailabilityProvider
	logger       out.LoggerPort
}

func NewAvailabilityService(cacheService AvailabilityProvider, logger out.LoggerPort) *AvailabilityService {
	return &AvailabilityService{
		cacheService: cacheService,
		logger:       logger.WithModule("AvailabilityService"),
	}
}

func (s *AvailabilityService) GetWeeklyAvailability(ctx context.Context, date string) (*domain.AvailabilityResponse, *domain.ValidationError, error) {
	if vErr := validateAvailabilityDate(date); vErr != nil {
		return nil, vErr, nil
	}

	// Дата уже прошла валидацию, здесь парсинг не может упасть
	parsedDate, _ := utils.ParseAvailabilityDate(date)
	weekMonday := domain.MondayOfWeek(parsedDate)

	s.logger.Info("slots.availability.requested", out.LogFields{
		"date":       date,
		"weekMonday": weekMonday.Format("2006-01-02"),
	})

	availability, err := s.cacheService.GetAvailability(ctx, weekMonday)
	if err != nil {
		s.logger.Error("slots.availability.fetch_failed", out.LogFields{
			"date":  date,
			"error": err.Error(),
		})
		return nil, nil, err
	}

	return buildAvailabilityResponse(availability, weekMonday), nil, nil
}

func validateAvailabilityDate(date string) *domain.ValidationError {
	if strings.TrimSpace(date) == "" {
		return domain.NewEmptyDateError()
	}
	if !availabilityDateFormat.MatchString(date) {
		return domain.NewInvalidDateFormatError(date)
	}
	if _, err := utils.ParseAvailabilityDate(date); err != nil {
		return domain.NewNonExistingDateError(date)
	}

	return nil
}

func buildAvailabilityResponse(availability *domain.WeeklyAvailability, weekMonday time.Time) *domain.AvailabilityResponse {
	days := make([]domain.AvailabilityResponseDay, 0, 7)
	for dayIndex := 0; dayIndex < 7; dayIndex++ {
		day := availability.Day(dayIndex)
		// Закрытые дни в ответ не попадают совсем
		if day == nil || day.WorkPeriod == nil {
			continue
		}

		date := weekMonday.AddDate(0, 0, dayIndex)
		days = append(days, domain.AvailabilityResponseDay{
			DayOfWeek:      dayIndex,
			AvailableSlots: generateDaySlots(date, day, availability.SlotDurationMinutes),
		})
	}

	return &domain.AvailabilityResponse{
		FacilityID: availability.Facility.FacilityID,
		Days:       days,
	}
}
