package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/btg-configurator/internal/model"
)

func TestConfigurationOrderedPayload(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()
	event := model.ConfigurationOrdered{
		EventID:  uuid.New(),
		OrderID:  uuid.New(),
		Owner:    "owner-1",
		Platform: "AMD",
		Total:    1670.5,
		Delivery: model.DeliveryEstimate{
			EstimatedDays: model.DeliveryDaysBackorder,
			UnavailableComponents: []model.UnavailableComponent{
				{Slot: model.SlotGPU, Name: "RX 7800 XT"},
			},
			DeliveryDate: time.Date(2026, 5, 16, 10, 0, 0, 0, time.UTC),
		},
		Components: map[model.Slot]string{
			model.SlotCPU: "cpu-1",
			model.SlotGPU: "gpu-1",
		},
	}

	payload, err := conv.ConfigurationOrderedToPayload(event)
	require.NoError(t, err)

	got, err := conv.PayloadToConfigurationOrdered(payload)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestPayloadToConfigurationOrdered_Errors(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()

	_, err := conv.PayloadToConfigurationOrdered([]byte{0xff, 0xff})
	assert.Error(t, err)

	payload, err := conv.ConfigurationOrderedToPayload(model.ConfigurationOrdered{})
	require.NoError(t, err)
	got, err := conv.PayloadToConfigurationOrdered(payload)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got.OrderID)
}
