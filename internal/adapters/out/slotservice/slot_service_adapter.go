package slotservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/suchimauz/facility-slot-manager/internal/config"
	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

type SlotServiceAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewSlotServiceAdapter(cfg *config.Config, logger out.LoggerPort) *SlotServiceAdapter {
	return &SlotServiceAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.SlotService.URL,
		username: cfg.SlotService.Username,
		password: cfg.SlotService.Password,
		logger:   logger,
	}
}

func (a *SlotServiceAdapter) GetWeeklyAvailability(ctx context.Context, weekMonday time.Time) (*domain.WeeklyAvailability, error) {
	url := fmt.Sprintf("%s/GetWeeklyAvailability/%s", a.baseURL, weekMonday.Format("20060102"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("slotservice.availability.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	// Неделя без расписания приходит как 404 или пустой ответ
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		a.logger.Info("slotservice.availability.empty", out.LogFields{
			"weekMonday": weekMonday.Format("2006-01-02"),
		})
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		a.logger.Error("slotservice.availability.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// Литерал null в теле оставляет указатель пустым
	var availability *domain.WeeklyAvailability
	if err := json.NewDecoder(resp.Body).Decode(&availability); err != nil {
		a.logger.Error("slotservice.availability.decode_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("slotservice.availability.fetch_success", out.LogFields{
		"weekMonday": weekMonday.Format("2006-01-02"),
	})

	return availability, nil
}

func (a *SlotServiceAdapter) TakeSlot(ctx context.Context, request domain.BookingRequest) error {
	body, err := json.Marshal(request)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/TakeSlot", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("slotservice.take_slot.failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}
	defer resp.Body.Close()

	// Неуспешный статус не считается ошибкой вызова, только логируется
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		a.logger.Warn("slotservice.take_slot.unexpected_status", out.LogFields{
			"status":     resp.StatusCode,
			"facilityId": request.FacilityID,
		})
		return nil
	}

	a.logger.Debug("slotservice.take_slot.success", out.LogFields{
		"facilityId": request.FacilityID,
	})

	return nil
}
