package order

import (
	"context"
	"time"

	"washex/models"
	"washex/utils"

	"go.uber.org/zap"
)

// CreateOrders prices a submission and persists one order per distinct
// service tier, preserving the encounter order of tiers.
//
// Each tier's order is an independent unit of work: when a later
// group's insert fails, orders already persisted for earlier tiers
// stay in place. Callers receive the orders created so far along with
// the error.
func (s *DefaultOrderService) CreateOrders(ctx context.Context, req CreateOrderRequest) ([]models.Order, error) {
	logger := utils.GetLogger()

	customer, err := s.CustomerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	address, ok := customer.CurrentAddress()
	if !ok {
		return nil, utils.ValidationError{Message: "customer has no address on file"}
	}
	if len(req.Items) == 0 {
		return nil, utils.ValidationError{Message: "order has no items"}
	}

	groups := partitionByTier(req.Items)

	var created []models.Order
	for _, group := range groups {
		// Price the whole group before touching storage so a bad item
		// never leaves a partial order behind.
		priced := make([]models.PricedLineItem, 0, len(group.items))
		defs := make(map[string]*models.ServiceDefinition)
		billAmount := 0.0
		for _, raw := range group.items {
			svc, err := s.resolveService(ctx, raw.ServiceID)
			if err != nil {
				return created, err
			}
			item, err := PriceLineItem(raw, svc)
			if err != nil {
				return created, err
			}
			priced = append(priced, item)
			defs[svc.ID] = svc
			billAmount += item.ItemTotal
		}

		code, err := s.generateOrderCode(ctx)
		if err != nil {
			return created, err
		}

		now := time.Now()
		ord := models.Order{
			Code:            code,
			CustomerID:      customer.ID,
			DeliveryAddress: address.AddressText,
			DeliverySociety: address.Society,
			DeliveryPincode: address.Pincode,
			Items:           priced,
			BillAmount:      billAmount,
			PaymentStatus:   models.PaymentPending,
			Notes:           req.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		var startDate *time.Time
		if req.PickupScheduled {
			ord.Source = models.SourcePickup
			ord.Status = models.StatusNew
			ord.PickupDate = req.PickupDate
			startDate = req.PickupDate
			if req.PickupSlotID != "" {
				slot, err := s.SlotRepo.GetByID(ctx, req.PickupSlotID)
				if err != nil {
					return created, err
				}
				ord.PickupSlotID = slot.ID
				ord.PickupSlotName = slot.Name
			}
			if req.PickupAgentID != "" {
				agent, err := s.StaffRepo.GetByID(ctx, req.PickupAgentID)
				if err != nil {
					return created, err
				}
				ord.PickupAgentID = agent.ID
				ord.PickupAgentName = agent.Name
				ord.Status = models.StatusPickupPending
			}
		} else {
			// Walk-in: the garments are already in hand, processing
			// starts now and no pickup fields are recorded at all.
			ord.Source = models.SourceWalkIn
			ord.Status = models.StatusInProgress
			startDate = &now
		}

		ord.ExpectedDeliveryDate = EstimateDelivery(priced, defs, startDate)

		if err := s.OrderRepo.Insert(ctx, ord); err != nil {
			logger.Error("order insert failed, earlier sibling orders kept",
				zap.String("code", ord.Code), zap.String("tier", group.tier), zap.Error(err))
			return created, err
		}

		if ord.PickupSlotID != "" {
			if err := s.SlotRepo.IncrementBooked(ctx, ord.PickupSlotID, 1); err != nil {
				logger.Warn("failed to bump slot booking count", zap.String("slot", ord.PickupSlotID), zap.Error(err))
			}
		}
		if s.Reminder != nil && ord.Status == models.StatusPickupPending {
			if err := s.Reminder.SchedulePickupReminder(ord); err != nil {
				logger.Warn("failed to schedule pickup reminder", zap.String("code", ord.Code), zap.Error(err))
			}
		}

		utils.OrdersCreated.WithLabelValues(group.tier).Inc()
		created = append(created, ord)
	}

	return created, nil
}

type tierGroup struct {
	tier  string
	items []models.RawLineItem
}

// partitionByTier splits items into per-tier groups, keeping the order
// in which tiers were first seen.
func partitionByTier(items []models.RawLineItem) []tierGroup {
	var groups []tierGroup
	index := make(map[string]int)
	for _, item := range items {
		tier := item.Tier
		if tier == "" {
			tier = models.TierStandard
		}
		item.Tier = tier
		i, ok := index[tier]
		if !ok {
			i = len(groups)
			index[tier] = i
			groups = append(groups, tierGroup{tier: tier})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}
