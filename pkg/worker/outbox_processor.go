package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/repository"
	"github.com/healsmart/healsmart-api/pkg/logger"
	"github.com/healsmart/healsmart-api/pkg/messaging"
	"github.com/healsmart/healsmart-api/pkg/metrics"
)

type OutboxProcessorConfig struct {
	BatchSize     int
	PollInterval  time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	RetentionDays int
}

// ConfirmationSender notifies a patient after a doctor approves their
// appointment.
type ConfirmationSender interface {
	SendAppointmentConfirmation(to, patientName, confirmedTime string) error
}

// OutboxProcessor drains pending outbox events to the broker. Approved
// appointments additionally trigger a confirmation email.
type OutboxProcessor struct {
	repo    repository.OutboxRepository
	broker  messaging.Broker
	email   ConfirmationSender
	config  OutboxProcessorConfig
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewOutboxProcessor(
	repo repository.OutboxRepository,
	broker messaging.Broker,
	email ConfirmationSender,
	config OutboxProcessorConfig,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *OutboxProcessor {
	if config.BatchSize <= 0 {
		panic("BatchSize must be greater than 0")
	}
	if config.PollInterval <= 0 {
		panic("PollInterval must be greater than 0")
	}
	if config.RetryAttempts <= 0 {
		panic("RetryAttempts must be greater than 0")
	}
	if config.RetryDelay <= 0 {
		panic("RetryDelay must be greater than 0")
	}

	return &OutboxProcessor{
		repo:    repo,
		broker:  broker,
		email:   email,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}

func (p *OutboxProcessor) Start(ctx context.Context) {
	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	p.logger.Info("Starting outbox processor")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Shutting down outbox processor")
			return
		case <-ticker.C:
			if err := p.processEvents(ctx); err != nil {
				p.logger.Error(err, "Failed to process events")
			}
		}
	}
}

// StartCleanup periodically deletes processed events past the retention
// window. Runs until the context is cancelled.
func (p *OutboxProcessor) StartCleanup(ctx context.Context, interval time.Duration) {
	if p.config.RetentionDays <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := p.repo.DeleteProcessedBefore(ctx, p.config.RetentionDays)
			if err != nil {
				p.logger.Error(err, "Failed to clean up processed events")
				continue
			}
			if deleted > 0 {
				p.logger.Info("Cleaned up processed events", "deleted", deleted)
			}
		}
	}
}

func (p *OutboxProcessor) processEvents(ctx context.Context) error {
	timer := prometheus.NewTimer(p.metrics.OutboxProcessingLatency)
	defer timer.ObserveDuration()

	events, err := p.repo.GetPendingEvents(ctx, p.config.BatchSize)
	if err != nil {
		p.metrics.DatabaseOperations.WithLabelValues("get_pending_events", "error").Inc()
		return fmt.Errorf("failed to get pending events: %w", err)
	}
	p.metrics.DatabaseOperations.WithLabelValues("get_pending_events", "success").Inc()

	for _, event := range events {
		if err := p.processEvent(ctx, event); err != nil {
			p.logger.Error(err, "Failed to process event",
				"event_id", event.ID.String(),
				"event_type", event.EventType)
			continue
		}
	}

	return nil
}

func (p *OutboxProcessor) processEvent(ctx context.Context, event *model.OutboxEvent) error {
	err := retry(p.config.RetryAttempts, p.config.RetryDelay, func() error {
		return p.broker.Publish(ctx, event.EventType, event.Payload)
	})

	if err != nil {
		p.metrics.OutboxEventsFailed.Inc()
		errStr := err.Error()
		if updateErr := p.repo.UpdateStatus(ctx, event.ID, model.OutboxStatusFailed, &errStr); updateErr != nil {
			p.logger.Error(updateErr, "Failed to update event status")
		}
		return err
	}

	if event.EventType == model.EventAppointmentApproved {
		p.sendConfirmation(event)
	}

	p.metrics.OutboxEventsProcessed.Inc()
	if err := p.repo.UpdateStatus(ctx, event.ID, model.OutboxStatusProcessed, nil); err != nil {
		p.logger.Error(err, "Failed to update event status", "event_id", event.ID.String())
		return err
	}

	return nil
}

// sendConfirmation is best-effort: the event is still marked processed
// when mail delivery fails, and the contact field may not be an email
// address at all.
func (p *OutboxProcessor) sendConfirmation(event *model.OutboxEvent) {
	if p.email == nil {
		return
	}

	var apt model.Appointment
	if err := json.Unmarshal(event.Payload, &apt); err != nil {
		p.logger.Error(err, "Failed to decode appointment payload", "event_id", event.ID.String())
		return
	}

	confirmedTime := apt.PreferredTime
	if apt.ConfirmedTime != nil {
		confirmedTime = *apt.ConfirmedTime
	}

	if err := p.email.SendAppointmentConfirmation(apt.Contact, apt.PatientName, confirmedTime); err != nil {
		p.logger.Error(err, "Failed to send confirmation email", "appointment_id", apt.ID.String())
	}
}

func retry(attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(delay)
		}
	}
	return fmt.Errorf("after %d attempts: %w", attempts, err)
}
