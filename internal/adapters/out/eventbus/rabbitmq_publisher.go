package eventbus

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/facility-slot-manager/internal/config"
	"github.com/suchimauz/facility-slot-manager/internal/core/domain"
	"github.com/suchimauz/facility-slot-manager/internal/core/ports/out"
)

type RabbitMqPublisher struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     out.LoggerPort
}

func NewRabbitMqPublisher(cfg *config.Config, logger out.LoggerPort) (*RabbitMqPublisher, error) {
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

	err = channel.ExchangeDeclare(
		cfg.RabbitMQ.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		logger.Error("rabbitmq.exchange.declare_failed", out.LogFields{
			"error":    err.Error(),
			"exchange": cfg.RabbitMQ.Exchange,
		})
		return nil, err
	}

	return &RabbitMqPublisher{
		conn:       conn,
		channel:    channel,
		exchange:   cfg.RabbitMQ.Exchange,
		routingKey: cfg.RabbitMQ.RoutingKey,
		logger:     logger,
	}, nil
}

func (p *RabbitMqPublisher) PublishSlotBooked(ctx context.Context, event domain.SlotBookedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.logger.Error("eventbus.slot_booked.publish_failed", out.LogFields{
			"error": err.Error(),
		})
		return err
	}

	p.logger.Info("eventbus.slot_booked.published", out.LogFields{
		"facilityId": event.Slot.FacilityID,
		"start":      event.Slot.Start,
	})

	return nil
}

func (p *RabbitMqPublisher) Close() error {
	if p == nil || p.channel == nil {
		return nil
	}

	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
