package utils

import "time"

// StartCurrentDay возвращает ту же дату со временем 00:00, таймзона сохраняется.
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay возвращает дату следующего дня со временем 00:00.
func StartNextDay(t time.Time) time.Time {
	return StartCurrentDay(t.AddDate(0, 0, 1))
}

// ParseAvailabilityDate парсит дату запроса доступности в строгом
// формате yyyyMMdd, полночь UTC.
func ParseAvailabilityDate(str string) (time.Time, error) {
	return time.ParseInLocation("20060102", str, time.UTC)
}
