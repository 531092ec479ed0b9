package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"washex/models"
	"washex/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateOrder applies a partial update to an order. Patch fields are
// applied independently and only when present in the map; a present
// key with a nil value clears the corresponding fields. The address
// snapshot taken at creation is never patchable.
func (s *DefaultOrderService) UpdateOrder(ctx context.Context, code string, patch map[string]any) (*models.Order, error) {
	existing, err := s.OrderRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	// The snapshot fields silently drop out of any patch.
	delete(patch, "deliveryAddress")
	delete(patch, "deliverySociety")
	delete(patch, "deliveryPincode")

	set := bson.M{}
	unset := bson.M{}

	if raw, ok := patch["pickupAgent"]; ok {
		if err := s.applyAgentPatch(ctx, raw, "pickupAgentId", "pickupAgentName", set, unset); err != nil {
			return nil, err
		}
	}
	if raw, ok := patch["deliveryAgent"]; ok {
		if err := s.applyAgentPatch(ctx, raw, "deliveryAgentId", "deliveryAgentName", set, unset); err != nil {
			return nil, err
		}
	}

	var patchPickupDate *time.Time
	if raw, ok := patch["pickupDate"]; ok {
		t, err := parseTimeValue(raw)
		if err != nil {
			return nil, err
		}
		patchPickupDate = t
		if t != nil {
			set["pickupDate"] = *t
		} else {
			unset["pickupDate"] = ""
		}
	}

	if raw, ok := patch["pickupSlot"]; ok {
		if raw == nil {
			unset["pickupSlotId"] = ""
			unset["pickupSlotName"] = ""
		} else {
			id, ok := raw.(string)
			if !ok {
				return nil, utils.ValidationError{Message: "pickupSlot must be a slot id"}
			}
			slot, err := s.SlotRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			set["pickupSlotId"] = slot.ID
			set["pickupSlotName"] = slot.Name
		}
	}

	if raw, ok := patch["deliveryDate"]; ok {
		t, err := parseTimeValue(raw)
		if err != nil {
			return nil, err
		}
		if t != nil {
			set["deliveryDate"] = *t
			// A fresh delivery date always carries the canonical
			// all-day window until dispatch narrows it down.
			slot, err := s.SlotRepo.GetAllDaySlot(ctx)
			var nf utils.NotFoundError
			switch {
			case err == nil:
				set["deliverySlotId"] = slot.ID
				set["deliverySlotName"] = slot.Name
			case errors.As(err, &nf):
				// No canonical slot seeded; the date stands alone.
				unset["deliverySlotId"] = ""
				unset["deliverySlotName"] = ""
			default:
				return nil, err
			}
		} else {
			unset["deliveryDate"] = ""
			unset["deliverySlotId"] = ""
			unset["deliverySlotName"] = ""
		}
	}

	if raw, ok := patch["items"]; ok {
		if err := s.applyItemsPatch(ctx, existing, raw, patchPickupDate, set, unset); err != nil {
			return nil, err
		}
	}

	if raw, ok := patch["status"]; ok {
		status, ok := raw.(string)
		if !ok || status == "" {
			return nil, utils.ValidationError{Message: "status must be a non-empty string"}
		}
		if !models.CanTransition(existing.Status, status) {
			return nil, utils.ValidationError{
				Message: fmt.Sprintf("order %s is %s and cannot move to %s", code, existing.Status, status),
			}
		}
		set["status"] = status
	}

	if raw, ok := patch["paymentStatus"]; ok {
		ps, ok := raw.(string)
		if !ok || ps == "" {
			return nil, utils.ValidationError{Message: "paymentStatus must be a non-empty string"}
		}
		set["paymentStatus"] = ps
	}

	if raw, ok := patch["notes"]; ok {
		if raw == nil {
			unset["notes"] = ""
		} else if notes, ok := raw.(string); ok {
			set["notes"] = notes
		}
	}

	if len(set) == 0 && len(unset) == 0 {
		return existing, nil
	}

	if err := s.OrderRepo.UpdateByCode(ctx, code, set, unset); err != nil {
		return nil, err
	}
	utils.OrdersUpdated.Inc()

	return s.OrderRepo.GetByCode(ctx, code)
}

// applyAgentPatch resolves an agent reference and keeps the denormalized
// name in lockstep with the id. A nil reference clears both.
func (s *DefaultOrderService) applyAgentPatch(ctx context.Context, raw any, idField, nameField string, set, unset bson.M) error {
	if raw == nil {
		unset[idField] = ""
		unset[nameField] = ""
		return nil
	}
	id, ok := raw.(string)
	if !ok {
		return utils.ValidationError{Message: "agent reference must be a staff id"}
	}
	if id == "" {
		unset[idField] = ""
		unset[nameField] = ""
		return nil
	}
	agent, err := s.StaffRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	set[idField] = agent.ID
	set[nameField] = agent.Name
	return nil
}

// applyItemsPatch re-prices the full item list and recomputes the bill
// amount and expected delivery date from the replacement items.
func (s *DefaultOrderService) applyItemsPatch(ctx context.Context, existing *models.Order, raw any, patchPickupDate *time.Time, set, unset bson.M) error {
	items, err := decodeRawItems(raw)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return utils.ValidationError{Message: "items cannot be emptied; cancel the order instead"}
	}

	priced := make([]models.PricedLineItem, 0, len(items))
	defs := make(map[string]*models.ServiceDefinition)
	billAmount := 0.0
	for _, rawItem := range items {
		if rawItem.Tier == "" {
			rawItem.Tier = models.TierStandard
		}
		svc, err := s.resolveService(ctx, rawItem.ServiceID)
		if err != nil {
			return err
		}
		item, err := PriceLineItem(rawItem, svc)
		if err != nil {
			return err
		}
		priced = append(priced, item)
		defs[svc.ID] = svc
		billAmount += item.ItemTotal
	}

	set["items"] = priced
	set["billAmount"] = billAmount

	// Walk-in orders started processing at creation; pickup orders
	// restart the clock from the (possibly patched) pickup date.
	var startDate *time.Time
	if existing.Source == models.SourceWalkIn {
		createdAt := existing.CreatedAt
		startDate = &createdAt
	} else if patchPickupDate != nil {
		startDate = patchPickupDate
	} else {
		startDate = existing.PickupDate
	}

	if eta := EstimateDelivery(priced, defs, startDate); eta != nil {
		set["expectedDeliveryDate"] = *eta
	} else {
		unset["expectedDeliveryDate"] = ""
	}
	return nil
}

// decodeRawItems converts the loosely typed patch payload back into
// typed line-item requests via a JSON round trip.
func decodeRawItems(raw any) ([]models.RawLineItem, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, utils.ValidationError{Message: "items payload is not serializable"}
	}
	var items []models.RawLineItem
	if err := json.Unmarshal(buf, &items); err != nil {
		return nil, utils.ValidationError{Message: "items payload is malformed"}
	}
	return items, nil
}

// parseTimeValue accepts RFC3339 timestamps, bare dates and native
// time values; nil passes through untouched.
func parseTimeValue(raw any) (*time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t, nil
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return &t, nil
		}
		return nil, utils.ValidationError{Message: fmt.Sprintf("unrecognized date value %q", v)}
	default:
		return nil, utils.ValidationError{Message: "date fields must be strings or null"}
	}
}
