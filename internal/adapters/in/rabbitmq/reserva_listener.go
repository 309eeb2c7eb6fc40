package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/citamed/agenda-slots-service/internal/config"
	"github.com/citamed/agenda-slots-service/internal/core/domain"
	"github.com/citamed/agenda-slots-service/internal/core/ports/in"
	"github.com/citamed/agenda-slots-service/internal/core/ports/out"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ReservaListener consumes the booking collaborator's claim events. A claim
// moves the Horario out of Disponible; a cancellation reopens it. This is
// the report-back path for statuses the booking side owns.
type ReservaListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.ScheduleUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type MensajeReserva struct {
	ProgramacionID uuid.UUID             `json:"programacion_id"`
	HorarioID      uuid.UUID             `json:"horario_id"`
	Estatus        domain.HorarioEstatus `json:"estatus"`
}

func NewReservaListener(useCase in.ScheduleUseCase, cfg *config.Config, logger out.LoggerPort) (*ReservaListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMq.AmqpUri,
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

	return &ReservaListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *ReservaListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.ReservasQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
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
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := l.procesarMensaje(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.reserva.process_failed", out.LogFields{
						"error": err.Error(),
					})
					msg.Nack(false, true) // requeue
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("rabbitmq.reserva.queue_started", out.LogFields{
		"queue": queue.Name,
	})

	return nil
}

func (l *ReservaListener) procesarMensaje(ctx context.Context, msg amqp.Delivery) error {
	var reserva MensajeReserva
	if err := json.Unmarshal(msg.Body, &reserva); err != nil {
		return err
	}

	l.logger.Debug("rabbitmq.reserva.received", out.LogFields{
		"programacionId": reserva.ProgramacionID,
		"horarioId":      reserva.HorarioID,
		"estatus":        reserva.Estatus,
	})

	return l.useCase.MarcarHorario(ctx, reserva.ProgramacionID, reserva.HorarioID, reserva.Estatus)
}

func (l *ReservaListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
