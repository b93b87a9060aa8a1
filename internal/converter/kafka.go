package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/btg-configurator/internal/model"
)

const EventConfigurationOrdered = "configuration.ordered"

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

// ConfigurationOrderedToPayload encodes the event as a google.protobuf.Struct.
func (c *kafkaConverter) ConfigurationOrderedToPayload(m model.ConfigurationOrdered) ([]byte, error) {
	components := make(map[string]any, len(m.Components))
	for slot, id := range m.Components {
		components[slot.String()] = id
	}

	unavailable := make([]any, 0, len(m.Delivery.UnavailableComponents))
	for _, u := range m.Delivery.UnavailableComponents {
		unavailable = append(unavailable, map[string]any{"slot": u.Slot.String(), "name": u.Name})
	}

	pb, err := structpb.NewStruct(map[string]any{
		"event_id":       m.EventID.String(),
		"order_id":       m.OrderID.String(),
		"owner":          m.Owner,
		"platform":       m.Platform,
		"total":          m.Total,
		"edited":         m.Edited,
		"estimated_days": m.Delivery.EstimatedDays,
		"all_available":  m.Delivery.AllAvailable,
		"delivery_date":  m.Delivery.DeliveryDate.UTC().Format(time.RFC3339),
		"unavailable":    unavailable,
		"components":     components,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}

	payload, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) PayloadToConfigurationOrdered(data []byte) (model.ConfigurationOrdered, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return model.ConfigurationOrdered{}, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}

	fields := pb.GetFields()
	str := func(key string) string { return fields[key].GetStringValue() }

	eventID, err := uuid.Parse(str("event_id"))
	if err != nil {
		return model.ConfigurationOrdered{}, fmt.Errorf("parse event_id: %w", err)
	}
	orderID, err := uuid.Parse(str("order_id"))
	if err != nil {
		return model.ConfigurationOrdered{}, fmt.Errorf("parse order_id: %w", err)
	}

	out := model.ConfigurationOrdered{
		EventID:  eventID,
		OrderID:  orderID,
		Owner:    str("owner"),
		Platform: str("platform"),
		Total:    fields["total"].GetNumberValue(),
		Edited:   fields["edited"].GetBoolValue(),
		Delivery: model.DeliveryEstimate{
			EstimatedDays: int(fields["estimated_days"].GetNumberValue()),
			AllAvailable:  fields["all_available"].GetBoolValue(),
		},
		Components: make(map[model.Slot]string),
	}

	if raw := str("delivery_date"); raw != "" {
		if out.Delivery.DeliveryDate, err = time.Parse(time.RFC3339, raw); err != nil {
			return model.ConfigurationOrdered{}, fmt.Errorf("parse delivery_date: %w", err)
		}
	}

	for _, v := range fields["unavailable"].GetListValue().GetValues() {
		item := v.GetStructValue().GetFields()
		slot, ok := model.ParseSlot(item["slot"].GetStringValue())
		if !ok {
			continue
		}
		out.Delivery.UnavailableComponents = append(out.Delivery.UnavailableComponents,
			model.UnavailableComponent{Slot: slot, Name: item["name"].GetStringValue()})
	}

	for k, v := range fields["components"].GetStructValue().GetFields() {
		if slot, ok := model.ParseSlot(k); ok {
			out.Components[slot] = v.GetStringValue()
		}
	}

	return out, nil
}
