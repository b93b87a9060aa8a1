package sesconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/kafka"
	"github.com/you-humble/btg-configurator/platform/logger"
)

type Converter interface {
	PayloadToConfigurationOrdered(data []byte) (model.ConfigurationOrdered, error)
}

type SessionRepository interface {
	Delete(ctx context.Context, owner, platform string) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	sessions SessionRepository
}

func NewSessionConsumer(
	consumer kafka.Consumer,
	conv Converter,
	sessions SessionRepository,
) *service {
	return &service{consumer: consumer, conv: conv, sessions: sessions}
}

func (s *service) RunConfigurationOrderedConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting configuration ordered consumer")

	if err := s.consumer.Consume(ctx, s.configurationOrderedHandler); err != nil {
		logger.Error(ctx, "Consume from configuration.ordered topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// configurationOrderedHandler forgets the resumable wizard of an owner once
// that build was ordered. Edits never came from a resumable session.
// Records tagged with another event type share the topic and are skipped.
func (s *service) configurationOrderedHandler(ctx context.Context, msg kafka.Message) error {
	if et := msg.EventType(); et != "" && et != converter.EventConfigurationOrdered {
		return nil
	}

	event, err := s.conv.PayloadToConfigurationOrdered(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode ConfigurationOrdered", logger.ErrorF(err))
		return fmt.Errorf("converter payload_to_configuration_ordered error: %w", err)
	}

	if event.Edited || event.Owner == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, event.Owner, event.Platform); err != nil {
		logger.Error(ctx, "consumer.DeleteSession",
			logger.String("owner", event.Owner),
			logger.String("platform", event.Platform),
			logger.ErrorF(err),
		)
		return err
	}

	return nil
}
