package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
)

func bookingAt(start, end time.Time) domain.BookingRequest {
	return domain.BookingRequest{
		Start:      start,
		End:        end,
		FacilityID: fixtureFacilityID,
		Patient: domain.Patient{
			Name:  "John",
			Email: "john@example.com",
			Phone: "+15550101",
		},
	}
}

func monday(hour, minute int) time.Time {
	return time.Date(2026, time.January, 5, hour, minute, 0, 0, time.UTC)
}

func tuesday(hour, minute int) time.Time {
	return time.Date(2026, time.January, 6, hour, minute, 0, 0, time.UTC)
}

func TestValidateStartMustBeBeforeEnd(t *testing.T) {
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	validator := NewBookingValidator(provider)

	vErr, err := validator.Validate(context.Background(), bookingAt(monday(10, 0), monday(10, 0)))

	require.NoError(t, err)
	require.NotNil(t, vErr)
	assert.Equal(t, domain.ValidationStartNotBeforeEnd, vErr.Kind)
	// До расписания проверка не доходит
	assert.Empty(t, provider.calls)
}

func TestValidatePropagatesInfrastructureError(t *testing.T) {
	provider := &availabilityProviderStub{err: domain.ErrSlotServiceUnavailable}
	validator := NewBookingValidator(provider)

	vErr, err := validator.Validate(context.Background(), bookingAt(monday(10, 0), monday(10, 30)))

	assert.Nil(t, vErr)
	assert.ErrorIs(t, err, domain.ErrSlotServiceUnavailable)
}

func TestValidateRequestsScheduleForWeekMonday(t *testing.T) {
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	validator := NewBookingValidator(provider)

	_, err := validator.Validate(context.Background(), bookingAt(tuesday(11, 0), tuesday(11, 30)))

	require.NoError(t, err)
	require.Len(t, provider.calls, 1)
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), provider.calls[0])
}

func TestValidateDurationMustMatchSchedule(t *testing.T) {
	provider := &availabilityProviderStub{availability: weeklyFixture()}
	validator := NewBookingValidator(provider)

	vErr, err := validator.Validate(context.Background(), bookingAt(monday(10, 0), monday(10, 45)))

	require.NoError(t, err)
	require.NotNil(t, vErr)
	assert.Equal(t, domain.ValidationInvalidDuration, vErr.Kind)
}

func TestValidateSlotUnavailable(t *testing.T) {
	sunday := func(hour, minute int) time.Time {
		return time.Date(2026, time.January, 11, hour, minute, 0, 0, time.UTC)
	}

	testCases := []struct {
		name    string
		request domain.BookingRequest
	}{
		{"closed day", bookingAt(sunday(10, 0), sunday(10, 30))},
		{"before opening", bookingAt(monday(8, 0), monday(8, 30))},
		{"ends after closing", bookingAt(monday(17, 45), monday(18, 15))},
		{"overlaps lunch start", bookingAt(monday(13, 45), monday(14, 15))},
		{"inside lunch", bookingAt(monday(14, 15), monday(14, 45))},
		{"exactly busy interval", bookingAt(tuesday(11, 30), tuesday(12, 0))},
		// Генерация слотов частичное пересечение пропустила бы,
		// валидация брони ловит
		{"partially overlaps busy interval", bookingAt(tuesday(11, 45), tuesday(12, 15))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &availabilityProviderStub{availability: weeklyFixture()}
			validator := NewBookingValidator(provider)

			vErr, err := validator.Validate(context.Background(), tc.request)

			require.NoError(t, err)
			require.NotNil(t, vErr)
			assert.Equal(t, domain.ValidationSlotUnavailable, vErr.Kind)
		})
	}
}

func TestValidateAcceptsFreeSlot(t *testing.T) {
	testCases := []struct {
		name    string
		request domain.BookingRequest
	}{
		{"first slot of the day", bookingAt(monday(9, 0), monday(9, 30))},
		{"right before lunch", bookingAt(monday(13, 30), monday(14, 0))},
		{"right after lunch", bookingAt(monday(15, 0), monday(15, 30))},
		{"last slot of the day", bookingAt(monday(17, 30), monday(18, 0))},
		{"between busy intervals", bookingAt(tuesday(12, 0), tuesday(12, 30))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &availabilityProviderStub{availability: weeklyFixture()}
			validator := NewBookingValidator(provider)

			vErr, err := validator.Validate(context.Background(), tc.request)

			require.NoError(t, err)
			assert.Nil(t, vErr)
		})
	}
}

func TestValidateUnknownFacilityScheduleError(t *testing.T) {
	provider := &availabilityProviderStub{err: errors.New("upstream 500")}
	validator := NewBookingValidator(provider)

	request := bookingAt(monday(9, 0), monday(9, 30))
	request.FacilityID = uuid.New()

	vErr, err := validator.Validate(context.Background(), request)

	assert.Nil(t, vErr)
	assert.Error(t, err)
}
