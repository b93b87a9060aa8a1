package ordproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/btg-configurator/internal/converter"
	"github.com/you-humble/btg-configurator/internal/model"
	"github.com/you-humble/btg-configurator/platform/kafka"
)

type Converter interface {
	ConfigurationOrderedToPayload(m model.ConfigurationOrdered) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewOrderProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendConfigurationOrdered keys the record by order id so every event of one
// order lands on the same partition.
func (s *service) SendConfigurationOrdered(ctx context.Context, event model.ConfigurationOrdered) error {
	payload, err := s.conv.ConfigurationOrderedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter configuration_ordered_to_payload error: %w", err)
	}

	err = s.producer.Send(ctx, event.OrderID[:], payload,
		kafka.Header{Key: kafka.HeaderEventType, Value: []byte(converter.EventConfigurationOrdered)},
		kafka.Header{Key: kafka.HeaderContentType, Value: []byte("application/x-protobuf")},
	)
	if err != nil {
		return fmt.Errorf("producer to configuration.ordered topic error: %w", err)
	}

	return nil
}
