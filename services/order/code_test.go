package order

import (
	"context"
	"strings"
	"testing"

	"washex/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code := newOrderCode()
		assert.Regexp(t, orderCodePattern, code)
		assert.True(t, strings.HasPrefix(code, "WX-"))
		seen[code] = true
	}
	// Random hex should not collide in a couple hundred draws.
	assert.Greater(t, len(seen), 190)
}

func TestGenerateOrderCodeSkipsTakenCodes(t *testing.T) {
	svc, repo := newTestService()

	// Fill the store as we go; every draw must land on a free code.
	for i := 0; i < 50; i++ {
		code, err := svc.generateOrderCode(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, orderCodePattern, code)
		_, taken := repo.orders[code]
		assert.False(t, taken)
		repo.orders[code] = models.Order{Code: code}
	}
	assert.Len(t, repo.orders, 50)
}
