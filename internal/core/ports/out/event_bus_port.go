package out

import (
	"context"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
)

// EventBusPort - шина событий. Доставка подписчикам at-least-once.
type EventBusPort interface {
	PublishSlotBooked(ctx context.Context, event domain.SlotBookedEvent) error
}
