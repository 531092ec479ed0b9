package order

import (
	"context"
	"fmt"
	"strings"

	"washex/utils"

	"github.com/google/uuid"
)

const orderCodePrefix = "WX-"

// newOrderCode draws a candidate code from random UUID hex.
func newOrderCode() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return orderCodePrefix + strings.ToUpper(hex[:5])
}

// generateOrderCode returns a code no existing order uses. The
// existence check is a best-effort pre-check; the unique index on the
// orders collection is the final arbiter, and a concurrent insert of
// the same candidate still surfaces as a ConflictError from Insert.
func (s *DefaultOrderService) generateOrderCode(ctx context.Context) (string, error) {
	for {
		code := newOrderCode()
		exists, err := s.OrderRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to verify order code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
		utils.OrderCodeRetries.Inc()
	}
}
