package eventbus

import (
	"context"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

// NoopPublisher подменяет шину, когда RabbitMQ выключен.
// События никуда не уходят, поэтому кэш живет до конца TTL.
type NoopPublisher struct {
	logger out.LoggerPort
}

func NewNoopPublisher(logger out.LoggerPort) *NoopPublisher {
	return &NoopPublisher{
		logger: logger,
	}
}

func (p *NoopPublisher) PublishSlotBooked(ctx context.Context, event domain.SlotBookedEvent) error {
	p.logger.Debug("eventbus.disabled.skip_publish", out.LogFields{
		"facilityId": event.Slot.FacilityID,
	})
	return nil
}
