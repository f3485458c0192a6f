package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/facility-slot-manager/internal/config"
	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/in"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

// SlotBookedListener слушает события брони и инвалидирует кэш
// недельной доступности.
type SlotBookedListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.InvalidationUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewSlotBookedListener(useCase in.InvalidationUseCase, cfg *config.Config, logger out.LoggerPort) (*SlotBookedListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &SlotBookedListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *SlotBookedListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.RoutingKey,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("slot_booked.message.failed", out.LogFields{
						"error": err.Error(),
					})
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("slot_booked.queue.started", out.LogFields{
		"queue": queue.Name,
	})

	return nil
}

func (l *SlotBookedListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var event domain.SlotBookedEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}

	l.logger.Info("slot_booked.message.received", out.LogFields{
		"facilityId": event.Slot.FacilityID,
		"start":      event.Slot.Start,
	})

	return l.useCase.InvalidateBookedSlot(ctx, event)
}

func (l *SlotBookedListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
