package domain

import "time"

const cacheKeyLayout = "2006-01-02"

// AvailabilityCacheKey - единственная точка форматирования ключа кэша
// недельной доступности. Все, кто читает или удаляет запись, обязаны
// строить ключ только через эту функцию.
func AvailabilityCacheKey(date time.Time) string {
	return date.UTC().Format(cacheKeyLayout)
}

// MondayOfWeek возвращает понедельник недели, в которую попадает дата,
// со временем 00:00 UTC. Понедельник отображается сам в себя.
func MondayOfWeek(date time.Time) time.Time {
	date = date.UTC()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	daysToSubtract := (7 + int(day.Weekday()) - int(time.Monday)) % 7
	return day.AddDate(0, 0, -daysToSubtract)
}
