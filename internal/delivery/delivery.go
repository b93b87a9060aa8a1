package delivery

import (
	"time"

	"github.com/you-humble/btg-configurator/internal/model"
)

// Estimate derives availability and the delivery date from stock. Empty
// slots are ignored.
func Estimate(sel model.Selection, now time.Time) model.DeliveryEstimate {
	est := model.DeliveryEstimate{AllAvailable: true}

	for _, slot := range model.DefaultSlotOrder {
		c := sel.Get(slot)
		if c == nil || c.InStock() {
			continue
		}
		est.AllAvailable = false
		est.UnavailableComponents = append(est.UnavailableComponents, model.UnavailableComponent{
			Slot: slot,
			Name: c.Name,
		})
	}

	est.EstimatedDays = model.DeliveryDaysInStock
	if !est.AllAvailable {
		est.EstimatedDays = model.DeliveryDaysBackorder
	}
	est.DeliveryDate = now.AddDate(0, 0, est.EstimatedDays)

	return est
}
