package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

// AvailabilityCacheTTL - фиксированное время жизни записи кэша недели.
const AvailabilityCacheTTL = 3 * time.Hour

const availabilityMaxAttempts = 3

// AvailabilityProvider отдает недельное расписание по его понедельнику.
type AvailabilityProvider interface {
	GetAvailability(ctx context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error)
}

// SlotCacheService - cache-aside поверх внешнего сервиса слотов.
// Шаг "посмотреть кэш, при промахе сходить наружу" повторяется целиком.
type SlotCacheService struct {
	slotService out.SlotServicePort
	cache       out.CachePort
	logger      out.LoggerPort
	backoff     backoffFunc
}

func NewSlotCacheService(slotService out.SlotServicePort, cache out.CachePort, logger out.LoggerPort) *SlotCacheService {
	return &SlotCacheService{
		slotService: slotService,
		cache:       cache,
		logger:      logger.WithModule("SlotCacheService"),
		backoff:     linearBackoff,
	}
}

// GetAvailability возвращает расписание недели, начинающейся с weekMonday.
// Пустой результат после всех попыток превращается в
// domain.ErrSlotServiceUnavailable, ошибка уходит наверх без изменений.
func (s *SlotCacheService) GetAvailability(ctx context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error) {
	availability, err := retryWithBackoff(ctx, availabilityMaxAttempts, s.backoff,
		func(result *domain.WeeklyAvailability, err error) bool {
			retry := err != nil || result == nil
			if retry {
				fields := out.LogFields{
					"weekMonday": weekMonday.Format("2006-01-02"),
				}
				if err != nil {
					fields["error"] = err.Error()
				}
				s.logger.Warn("availability.fetch.attempt_failed", fields)
			}
			return retry
		},
		func() (*domain.WeeklyAvailability, error) {
			return s.fetchOrMiss(ctx, weekMonday)
		},
	)
	if err != nil {
		return nil, err
	}
	if availability == nil {
		return nil, domain.ErrSlotServiceUnavailable
	}

	return availability, nil
}

func (s *SlotCacheService) fetchOrMiss(ctx context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error) {
	cacheKey := domain.AvailabilityCacheKey(weekMonday)

	cached, found, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		return nil, err
	}
	if found {
		var availability domain.WeeklyAvailability
		if err := json.Unmarshal(cached, &availability); err != nil {
			return nil, err
		}
		s.logger.Debug("availability.cache.hit", out.LogFields{
			"cacheKey": cacheKey,
		})
		return &availability, nil
	}

	s.logger.Debug("availability.cache.miss", out.LogFields{
		"cacheKey": cacheKey,
	})

	availability, err := s.slotService.GetWeeklyAvailability(ctx, weekMonday)
	if err != nil {
		return nil, err
	}
	if availability == nil {
		return nil, nil
	}

	// Пустой ответ в кэш не пишем, только полноценное расписание
	encoded, err := json.Marshal(availability)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, encoded, AvailabilityCacheTTL); err != nil {
		return nil, err
	}

	return availability, nil
}

// InvalidateBookedSlot удаляет запись кэша по дате начала брони.
// Ключ строится от самой даты, без приведения к понедельнику недели.
func (s *SlotCacheService) InvalidateBookedSlot(ctx context.Context, event domain.SlotBookedEvent) error {
	cacheKey := domain.AvailabilityCacheKey(event.Slot.Start)

	s.logger.Info("availability.cache.invalidate", out.LogFields{
		"cacheKey":   cacheKey,
		"facilityId": event.Slot.FacilityID,
	})

	return s.cache.Delete(ctx, cacheKey)
}
