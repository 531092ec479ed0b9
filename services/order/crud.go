package order

import (
	"context"

	orderRepo "washex/database/repository/order"
	"washex/models"
)

func (s *DefaultOrderService) GetOrder(ctx context.Context, code string) (*models.Order, error) {
	return s.OrderRepo.GetByCode(ctx, code)
}

func (s *DefaultOrderService) ListOrders(ctx context.Context, q orderRepo.OrderQuery) ([]models.Order, error) {
	return s.OrderRepo.List(ctx, q)
}

// StatusCounts summarizes the order book for the operations dashboard.
func (s *DefaultOrderService) StatusCounts(ctx context.Context) (map[string]int64, error) {
	return s.OrderRepo.CountByStatus(ctx)
}
