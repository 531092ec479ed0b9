package models

import "time"

// Address is one saved customer address. IsCurrent marks the address
// snapshotted onto new orders.
type Address struct {
	AddressText string `bson:"addressText" json:"addressText"`
	Society     string `bson:"society,omitempty" json:"society,omitempty"`
	Pincode     string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	IsCurrent   bool   `bson:"isCurrent" json:"isCurrent"`
}

// Customer is a laundry customer. Phone is the unique human handle.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Addresses []Address `bson:"addresses,omitempty" json:"addresses,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CurrentAddress returns the address flagged current, falling back to
// the first saved address. The second return is false when the customer
// has no address on file.
func (c *Customer) CurrentAddress() (Address, bool) {
	for _, a := range c.Addresses {
		if a.IsCurrent {
			return a, true
		}
	}
	if len(c.Addresses) > 0 {
		return c.Addresses[0], true
	}
	return Address{}, false
}
