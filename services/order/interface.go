package order

import (
	"context"
	"time"

	catalogRepo "washex/database/repository/catalog"
	customerRepo "washex/database/repository/customer"
	orderRepo "washex/database/repository/order"
	slotRepo "washex/database/repository/slot"
	staffRepo "washex/database/repository/staff"
	"washex/models"
)

// CreateOrderRequest is one logical order submission. Items spanning
// several tiers fan out into one persisted order per tier.
type CreateOrderRequest struct {
	CustomerID      string               `json:"customerId"`
	Items           []models.RawLineItem `json:"items"`
	PickupScheduled bool                 `json:"pickupScheduled"`
	PickupDate      *time.Time           `json:"pickupDate,omitempty"`
	PickupSlotID    string               `json:"pickupSlotId,omitempty"`
	PickupAgentID   string               `json:"pickupAgentId,omitempty"`
	Notes           string               `json:"notes,omitempty"`
}

// ReminderScheduler enqueues pickup reminders for newly created orders.
type ReminderScheduler interface {
	SchedulePickupReminder(order models.Order) error
}

// OrderService owns order creation, mutation and lookups.
type OrderService interface {
	CreateOrders(ctx context.Context, req CreateOrderRequest) ([]models.Order, error)
	UpdateOrder(ctx context.Context, code string, patch map[string]any) (*models.Order, error)
	GetOrder(ctx context.Context, code string) (*models.Order, error)
	ListOrders(ctx context.Context, q orderRepo.OrderQuery) ([]models.Order, error)
	StatusCounts(ctx context.Context) (map[string]int64, error)
}

// DefaultOrderService is the production OrderService.
type DefaultOrderService struct {
	CustomerRepo customerRepo.CustomerRepository
	CatalogRepo  catalogRepo.CatalogRepository
	StaffRepo    staffRepo.StaffRepository
	SlotRepo     slotRepo.SlotRepository
	OrderRepo    orderRepo.OrderRepository
	Reminder     ReminderScheduler // optional
}

// resolveService performs a fresh catalog lookup for every pricing
// operation; definitions are never cached across requests.
func (s *DefaultOrderService) resolveService(ctx context.Context, id string) (*models.ServiceDefinition, error) {
	return s.CatalogRepo.GetByID(ctx, id)
}
