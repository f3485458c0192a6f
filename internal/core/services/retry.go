package services

import (
	"context"
	"time"
)

type backoffFunc func(attempt int) time.Duration

// linearBackoff: 1s после первой попытки, 2s после второй и так далее.
// Без джиттера, задержки детерминированные.
func linearBackoff(attempt int) time.Duration {
	return time.Duration(attempt) * time.Second
}

// retryWithBackoff выполняет op до maxAttempts раз. Повтор происходит,
// пока retryable считает исход попытки неудачным. Исход последней
// попытки возвращается как есть, без преобразований.
func retryWithBackoff[T any](
	ctx context.Context,
	maxAttempts int,
	backoff backoffFunc,
	retryable func(result T, err error) bool,
	op func() (T, error),
) (T, error) {
	var result T
	var err error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err = op()
		if !retryable(result, err) {
			return result, err
		}
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-time.After(backoff(attempt)):
		}
	}

	return result, err
}
