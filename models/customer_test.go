package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentAddress(t *testing.T) {
	t.Run("flagged address wins", func(t *testing.T) {
		c := Customer{Addresses: []Address{
			{AddressText: "12 Rose Villa"},
			{AddressText: "44 Lake View", IsCurrent: true},
		}}
		addr, ok := c.CurrentAddress()
		require.True(t, ok)
		assert.Equal(t, "44 Lake View", addr.AddressText)
	})

	t.Run("falls back to first address", func(t *testing.T) {
		c := Customer{Addresses: []Address{
			{AddressText: "12 Rose Villa"},
			{AddressText: "44 Lake View"},
		}}
		addr, ok := c.CurrentAddress()
		require.True(t, ok)
		assert.Equal(t, "12 Rose Villa", addr.AddressText)
	})

	t.Run("no addresses", func(t *testing.T) {
		c := Customer{}
		_, ok := c.CurrentAddress()
		assert.False(t, ok)
	})
}
