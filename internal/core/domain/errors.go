package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrSlotServiceUnavailable - внешний сервис слотов не вернул данные
// после всех повторов. Это сбой инфраструктуры, а не ошибка валидации.
var ErrSlotServiceUnavailable = errors.New("external slot service is unavailable")

type ValidationErrorKind string

const (
	ValidationEmptyDate         ValidationErrorKind = "empty_date"
	ValidationInvalidDateFormat ValidationErrorKind = "invalid_date_format"
	ValidationNonExistingDate   ValidationErrorKind = "non_existing_date"
	ValidationStartNotBeforeEnd ValidationErrorKind = "start_not_before_end"
	ValidationInvalidDuration   ValidationErrorKind = "invalid_duration"
	ValidationSlotUnavailable   ValidationErrorKind = "slot_unavailable"
)

// ValidationError - ожидаемый отказ, возвращается значением.
// Никогда не смешивается с инфраструктурными ошибками.
type ValidationError struct {
	Kind    ValidationErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewEmptyDateError() *ValidationError {
	return &ValidationError{
		Kind:    ValidationEmptyDate,
		Message: "date is required",
	}
}

func NewInvalidDateFormatError(date string) *ValidationError {
	return &ValidationError{
		Kind:    ValidationInvalidDateFormat,
		Message: fmt.Sprintf("date %q has an invalid format, expected yyyyMMdd", date),
	}
}

func NewNonExistingDateError(date string) *ValidationError {
	return &ValidationError{
		Kind:    ValidationNonExistingDate,
		Message: fmt.Sprintf("date %q does not exist", date),
	}
}

func NewStartNotBeforeEndError(start, end time.Time) *ValidationError {
	return &ValidationError{
		Kind:    ValidationStartNotBeforeEnd,
		Message: fmt.Sprintf("start %s must be earlier than end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
	}
}

func NewInvalidDurationError(requestedMinutes, expectedMinutes int) *ValidationError {
	return &ValidationError{
		Kind:    ValidationInvalidDuration,
		Message: fmt.Sprintf("requested slot duration %d is incorrect, it must be %d", requestedMinutes, expectedMinutes),
	}
}

func NewSlotUnavailableError() *ValidationError {
	return &ValidationError{
		Kind:    ValidationSlotUnavailable,
		Message: "slot is not available",
	}
}
