package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
)

func newTestBookingService(provider *availabilityProviderStub, slotService *slotServiceStub, eventBus *eventBusStub) *BookingService {
	validator := NewBookingValidator(provider)
	return NewBookingService(validator, slotService, eventBus, nopLogger{})
}

func TestTakeSlotPublishesEventAfterSubmit(t *testing.T) {
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	slotService := &slotServiceStub{}
	eventBus := &eventBusStub{}
	svc := newTestBookingService(provider, slotService, eventBus)

	request := bookingAt(monday(9, 0), monday(9, 30))
	vErr, err := svc.TakeSlot(context.Background(), request)

	require.NoError(t, err)
	assert.Nil(t, vErr)
	assert.Equal(t, 1, slotService.takeCalls)
	require.Len(t, eventBus.events, 1)
	assert.Equal(t, request, eventBus.events[0].Slot)
}

func TestTakeSlotRejectedRequestIsNotSubmitted(t *testing.T) {
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	slotService := &slotServiceStub{}
	eventBus := &eventBusStub{}
	svc := newTestBookingService(provider, slotService, eventBus)

	// Слот внутри обеда
	vErr, err := svc.TakeSlot(context.Background(), bookingAt(monday(14, 0), monday(14, 30)))

	require.NoError(t, err)
	require.NotNil(t, vErr)
	assert.Equal(t, domain.ValidationSlotUnavailable, vErr.Kind)
	assert.Equal(t, 0, slotService.takeCalls)
	assert.Empty(t, eventBus.events)
}

func TestTakeSlotValidatorInfrastructureErrorStopsBooking(t *testing.T) {
	provider := &availabilityProviderStub{err: domain.ErrSlotServiceUnavailable}
	slotService := &slotServiceStub{}
	eventBus := &eventBusStub{}
	svc := newTestBookingService(provider, slotService, eventBus)

	vErr, err := svc.TakeSlot(context.Background(), bookingAt(monday(9, 0), monday(9, 30)))

	assert.Nil(t, vErr)
	assert.ErrorIs(t, err, domain.ErrSlotServiceUnavailable)
	assert.Equal(t, 0, slotService.takeCalls)
	assert.Empty(t, eventBus.events)
}

func TestTakeSlotSubmitErrorSkipsPublish(t *testing.T) {
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	slotService := &slotServiceStub{
		takeFn: func(context.Context, domain.BookingRequest) error {
			return errors.New("dial tcp: connection refused")
		},
	}
	eventBus := &eventBusStub{}
	svc := newTestBookingService(provider, slotService, eventBus)

	vErr, err := svc.TakeSlot(context.Background(), bookingAt(monday(9, 0), monday(9, 30)))

	assert.Nil(t, vErr)
	assert.Error(t, err)
	assert.Empty(t, eventBus.events)
}

func TestTakeSlotPublishErrorIsReturned(t *testing.T) {
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	slotService := &slotServiceStub{}
	eventBus := &eventBusStub{err: errors.New("channel closed")}
	svc := newTestBookingService(provider, slotService, eventBus)

	vErr, err := svc.TakeSlot(context.Background(), bookingAt(monday(9, 0), monday(9, 30)))

	assert.Nil(t, vErr)
	assert.Error(t, err)
	// Бронь уже ушла во внешний сервис, отката нет
	assert.Equal(t, 1, slotService.takeCalls)
}

func TestTakeSlotStaleCacheStillBooks(t *testing.T) {
	// Расписание из кэша может не знать о чужой свежей брони,
	// внешний сервис остается последней линией проверки
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	slotService := &slotServiceStub{}
	eventBus := &eventBusStub{}
	svc := newTestBookingService(provider, slotService, eventBus)

	vErr, err := svc.TakeSlot(context.Background(), bookingAt(tuesday(13, 0), tuesday(13, 30)))

	require.NoError(t, err)
	assert.Nil(t, vErr)
	assert.Equal(t, 1, slotService.takeCalls)
	assert.Len(t, eventBus.events, 1)
}
