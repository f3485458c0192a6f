package services

import (
	"context"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

// BookingService - запись на слот: валидация, передача брони во внешний
// сервис, публикация события.
type BookingService struct {
	validator   *BookingValidator
	slotService out.SlotServicePort
	eventBus    out.EventBusPort
	logger      out.LoggerPort
}

func NewBookingService(
	validator *BookingValidator,
	slotService out.SlotServicePort,
	eventBus out.EventBusPort,
	logger out.LoggerPort,
) *BookingService {
	return &BookingService{
		validator:   validator,
		slotService: slotService,
		eventBus:    eventBus,
		logger:      logger.WithModule("BookingService"),
	}
}

func (s *BookingService) TakeSlot(ctx context.Context, request domain.BookingRequest) (*domain.ValidationError, error) {
	s.logger.Info("slots.take.requested", out.LogFields{
		"facilityId": request.FacilityID,
		"start":      request.Start,
		"end":        request.End,
	})

	validationErr, err := s.validator.Validate(ctx, request)
	if err != nil {
		return nil, err
	}
	if validationErr != nil {
		s.logger.Info("slots.take.rejected", out.LogFields{
			"kind":    validationErr.Kind,
			"message": validationErr.Message,
		})
		return validationErr, nil
	}

	if err := s.slotService.TakeSlot(ctx, request); err != nil {
		s.logger.Error("slots.take.submit_failed", out.LogFields{
			"facilityId": request.FacilityID,
			"error":      err.Error(),
		})
		return nil, err
	}

	// Событие публикуется после возврата из внешнего сервиса.
	// Двухфазного подтверждения нет: неудачная публикация не откатывает
	// бронь и не повторяется.
	if err := s.eventBus.PublishSlotBooked(ctx, domain.SlotBookedEvent{Slot: request}); err != nil {
		s.logger.Error("slots.take.publish_failed", out.LogFields{
			"facilityId": request.FacilityID,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("slots.take.accepted", out.LogFields{
		"facilityId": request.FacilityID,
		"start":      request.Start,
	})

	return nil, nil
}
