package services

import (
	"sort"
	"time"

	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
)

// generateDaySlots строит доступные слоты одного дня. date - полночь
// целевого дня в UTC. Результат отсортирован по началу слота.
func generateDaySlots(date time.Time, day *domain.DayAvailability, slotDurationMinutes int) []domain.AvailableSlot {
	slots := buildAllSlotsInDay(date, day, slotDurationMinutes)
	slots = removeLunchTimeSlots(date, day, slots)
	slots = removeBusySlots(day, slots)

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})

	return slots
}

func buildAllSlotsInDay(date time.Time, day *domain.DayAvailability, slotDurationMinutes int) []domain.AvailableSlot {
	slotDuration := time.Duration(slotDurationMinutes) * time.Minute
	endOfWorkingDay := day.LastSlotEnd(date)

	// Условие цикла проверяет только начало слота, поэтому последний слот
	// может закончиться позже часа закрытия, если рабочее окно не кратно
	// длительности слота.
	slots := make([]domain.AvailableSlot, 0)
	for cursor := day.FirstSlotStart(date); cursor.Before(endOfWorkingDay); {
		slot := domain.AvailableSlot{
			Start: cursor,
			End:   cursor.Add(slotDuration),
		}
		slots = append(slots, slot)
		cursor = slot.End
	}

	return slots
}

func removeLunchTimeSlots(date time.Time, day *domain.DayAvailability, slots []domain.AvailableSlot) []domain.AvailableSlot {
	lunchStart := day.LunchStart(date)
	lunchEnd := day.LunchEnd(date)

	// Слот, хотя бы частично попавший на обед, отбрасывается целиком
	filtered := make([]domain.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		if !slot.End.After(lunchStart) || !slot.Start.Before(lunchEnd) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

func removeBusySlots(day *domain.DayAvailability, slots []domain.AvailableSlot) []domain.AvailableSlot {
	if len(day.BusySlots) == 0 {
		return slots
	}

	filtered := make([]domain.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		if !matchesBusySlot(day.BusySlots, slot) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// Занятый интервал убирает слот только при точном совпадении границ,
// частичные пересечения на этом этапе не фильтруются.
func matchesBusySlot(busySlots []domain.BusyInterval, slot domain.AvailableSlot) bool {
	for _, busy := range busySlots {
		if busy.Start.Date.Equal(slot.Start) && busy.End.Date.Equal(slot.End) {
			return true
		}
	}

	return false
}
