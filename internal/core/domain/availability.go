package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/facility-slot-manager/internal/core/json_types"
)

type Facility struct {
	FacilityID uuid.UUID `json:"facilityId"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
}

// WorkPeriod - рабочие часы одного дня недели.
// Часы трактуются как смещение от полуночи целевой даты, всегда в UTC.
type WorkPeriod struct {
	StartHour      int `json:"startHour"`
	LunchStartHour int `json:"lunchStartHour"`
	LunchEndHour   int `json:"lunchEndHour"`
	EndHour        int `json:"endHour"`
}

// BusyInterval - уже занятый интервал, полуоткрытый [start, end).
// Внешний сервис присылает время и с таймзоной, и без, поэтому json_types.
type BusyInterval struct {
	Start json_types.DateTime `json:"start"`
	End   json_types.DateTime `json:"end"`
}

// DayAvailability - рабочий период и занятые интервалы одного дня недели.
// Отсутствие workPeriod означает, что учреждение в этот день закрыто.
type DayAvailability struct {
	WorkPeriod *WorkPeriod    `json:"workPeriod,omitempty"`
	BusySlots  []BusyInterval `json:"busySlots,omitempty"`
}

func (d *DayAvailability) FirstSlotStart(date time.Time) time.Time {
	return date.Add(time.Duration(d.WorkPeriod.StartHour) * time.Hour)
}

func (d *DayAvailability) LastSlotEnd(date time.Time) time.Time {
	return date.Add(time.Duration(d.WorkPeriod.EndHour) * time.Hour)
}

func (d *DayAvailability) LunchStart(date time.Time) time.Time {
	return date.Add(time.Duration(d.WorkPeriod.LunchStartHour) * time.Hour)
}

func (d *DayAvailability) LunchEnd(date time.Time) time.Time {
	return date.Add(time.Duration(d.WorkPeriod.LunchEndHour) * time.Hour)
}

// WeeklyAvailability - недельное расписание учреждения целиком,
// приходит от внешнего сервиса и только кэшируется, локально не хранится.
type WeeklyAvailability struct {
	Facility            Facility         `json:"facility"`
	SlotDurationMinutes int              `json:"slotDurationMinutes"`
	Monday              *DayAvailability `json:"monday,omitempty"`
	Tuesday             *DayAvailability `json:"tuesday,omitempty"`
	Wednesday           *DayAvailability `json:"wednesday,omitempty"`
	Thursday            *DayAvailability `json:"thursday,omitempty"`
	Friday              *DayAvailability `json:"friday,omitempty"`
	Saturday            *DayAvailability `json:"saturday,omitempty"`
	Sunday              *DayAvailability `json:"sunday,omitempty"`
}

// Day возвращает доступность по индексу дня недели, Monday = 0 .. Sunday = 6.
func (a *WeeklyAvailability) Day(dayIndex int) *DayAvailability {
	switch dayIndex {
	case 0:
		return a.Monday
	case 1:
		return a.Tuesday
	case 2:
		return a.Wednesday
	case 3:
		return a.Thursday
	case 4:
		return a.Friday
	case 5:
		return a.Saturday
	case 6:
		return a.Sunday
	default:
		return nil
	}
}

// DayOf переводит time.Weekday (Sunday = 0) в нумерацию с понедельника.
func (a *WeeklyAvailability) DayOf(weekday time.Weekday) *DayAvailability {
	return a.Day((int(weekday) + 6) % 7)
}

// AvailableSlot - вычисляемый интервал записи, никогда не сохраняется.
type AvailableSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponseDay struct {
	DayOfWeek      int             `json:"dayOfWeek"`
	AvailableSlots []AvailableSlot `json:"availableSlots"`
}

type AvailabilityResponse struct {
	FacilityID uuid.UUID                 `json:"facilityId"`
	Days       []AvailabilityResponseDay `json:"days"`
}
