package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/json_types"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)             {}
func (nopLogger) Info(string, out.LogFields)              {}
func (nopLogger) Warn(string, out.LogFields)              {}
func (nopLogger) Error(string, out.LogFields)             {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

type slotServiceStub struct {
	getFn     func(ctx context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error)
	takeFn    func(ctx context.Context, request domain.BookingRequest) error
	getCalls  int
	takeCalls int
}

func (s *slotServiceStub) GetWeeklyAvailability(ctx context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error) {
	s.getCalls++
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, weekMonday)
}

func (s *slotServiceStub) TakeSlot(ctx context.Context, request domain.BookingRequest) error {
	s.takeCalls++
	if s.takeFn == nil {
		return nil
	}
	return s.takeFn(ctx, request)
}

type cacheStub struct {
	data    map[string][]byte
	ttls    map[string]time.Duration
	getErr  error
	deleted []string
}

func newCacheStub() *cacheStub {
	return &cacheStub{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (c *cacheStub) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	value, found := c.data[key]
	return value, found, nil
}

func (c *cacheStub) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.data[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *cacheStub) Delete(_ context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.data, key)
	return nil
}

type availabilityProviderStub struct {
	availability *domain.WeeklyAvailability
	err          error
	calls        []time.Time
}

func (s *availabilityProviderStub) GetAvailability(_ context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error) {
	s.calls = append(s.calls, weekMonday)
	return s.availability, s.err
}

type eventBusStub struct {
	events []domain.SlotBookedEvent
	err    error
}

func (b *eventBusStub) PublishSlotBooked(_ context.Context, event domain.SlotBookedEvent) error {
	if b.err != nil {
		return b.err
	}
	b.events = append(b.events, event)
	return nil
}

var fixtureFacilityID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

func busyAt(start, end time.Time) domain.BusyInterval {
	return domain.BusyInterval{
		Start: json_types.DateTime{Date: start},
		End:   json_types.DateTime{Date: end},
	}
}

// Неделя с понедельника 2026-01-05. Понедельник 9-18 с обедом 14-15,
// вторник 11-17 с обедом 14-15 и двумя занятыми интервалами,
// остальные дни закрыты.
func weeklyFixture() *domain.WeeklyAvailability {
	tuesday := time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC)

	return &domain.WeeklyAvailability{
		Facility: domain.Facility{
			FacilityID: fixtureFacilityID,
			Name:       "Downtown Clinic",
			Address:    "12 Main st",
		},
		SlotDurationMinutes: 30,
		Monday: &domain.DayAvailability{
			WorkPeriod: &domain.WorkPeriod{StartHour: 9, LunchStartHour: 14, LunchEndHour: 15, EndHour: 18},
		},
		Tuesday: &domain.DayAvailability{
			WorkPeriod: &domain.WorkPeriod{StartHour: 11, LunchStartHour: 14, LunchEndHour: 15, EndHour: 17},
			BusySlots: []domain.BusyInterval{
				busyAt(tuesday.Add(11*time.Hour+30*time.Minute), tuesday.Add(12*time.Hour)),
				busyAt(tuesday.Add(15*time.Hour+30*time.Minute), tuesday.Add(16*time.Hour)),
			},
		},
	}
}
