package models

import "time"

// Order sources.
const (
	SourceWalkIn = "Walk-in"
	SourcePickup = "Pickup"
)

// Order statuses.
const (
	StatusNew             = "New"
	StatusPickupPending   = "Pick-up Pending"
	StatusInProgress      = "In-Progress"
	StatusDeliveryPending = "Delivery Pending"
	StatusDelivered       = "Delivered"
	StatusCancelled       = "Cancelled"
)

// Payment statuses.
const (
	PaymentPending   = "Pending"
	PaymentConfirmed = "Confirmed"
)

// RawSubItem is one requested garment line within an itemized service.
type RawSubItem struct {
	Name      string   `bson:"name" json:"name"`
	Quantity  int      `bson:"quantity" json:"quantity"`
	UnitPrice *float64 `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"` // caller override
}

// RawLineItem is an unpriced item request. Exactly one of Weight, Pairs
// or SubItems is meaningful, matching the referenced service's pricing
// model. UnitPrice, when set, overrides the catalog rate.
type RawLineItem struct {
	ServiceID string       `bson:"serviceId" json:"serviceId"`
	Tier      string       `bson:"tier" json:"tier"`
	Weight    float64      `bson:"weight,omitempty" json:"weight,omitempty"`
	Pairs     int          `bson:"pairs,omitempty" json:"pairs,omitempty"`
	SubItems  []RawSubItem `bson:"subItems,omitempty" json:"subItems,omitempty"`
	UnitPrice *float64     `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
}

// PricedSubItem is a garment line after price resolution.
type PricedSubItem struct {
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Total     float64 `bson:"total" json:"total"`
}

// PricedLineItem is an item after price resolution. Immutable once
// computed; re-pricing produces a fresh value.
type PricedLineItem struct {
	ServiceID   string          `bson:"serviceId" json:"serviceId"`
	ServiceName string          `bson:"serviceName" json:"serviceName"`
	Tier        string          `bson:"tier" json:"tier"`
	Weight      float64         `bson:"weight,omitempty" json:"weight,omitempty"`
	Pairs       int             `bson:"pairs,omitempty" json:"pairs,omitempty"`
	UnitPrice   float64         `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	SubItems    []PricedSubItem `bson:"subItems,omitempty" json:"subItems,omitempty"`
	ItemTotal   float64         `bson:"itemTotal" json:"itemTotal"`
}

// Order is one persisted order record. A multi-tier submission fans out
// into one Order per tier; each record evolves independently afterwards.
type Order struct {
	Code       string `bson:"code" json:"code"` // WX-XXXXX, unique
	CustomerID string `bson:"customerId" json:"customerId"`
	Source     string `bson:"source" json:"source"`

	// Address snapshot taken from the customer at creation time.
	// Never updated afterwards.
	DeliveryAddress string `bson:"deliveryAddress" json:"deliveryAddress"`
	DeliverySociety string `bson:"deliverySociety" json:"deliverySociety"`
	DeliveryPincode string `bson:"deliveryPincode" json:"deliveryPincode"`

	Items      []PricedLineItem `bson:"items" json:"items"`
	BillAmount float64          `bson:"billAmount" json:"billAmount"`

	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`

	PickupDate      *time.Time `bson:"pickupDate,omitempty" json:"pickupDate,omitempty"`
	PickupSlotID    string     `bson:"pickupSlotId,omitempty" json:"pickupSlotId,omitempty"`
	PickupSlotName  string     `bson:"pickupSlotName,omitempty" json:"pickupSlotName,omitempty"`
	PickupAgentID   string     `bson:"pickupAgentId,omitempty" json:"pickupAgentId,omitempty"`
	PickupAgentName string     `bson:"pickupAgentName,omitempty" json:"pickupAgentName,omitempty"`

	DeliveryDate      *time.Time `bson:"deliveryDate,omitempty" json:"deliveryDate,omitempty"`
	DeliverySlotID    string     `bson:"deliverySlotId,omitempty" json:"deliverySlotId,omitempty"`
	DeliverySlotName  string     `bson:"deliverySlotName,omitempty" json:"deliverySlotName,omitempty"`
	DeliveryAgentID   string     `bson:"deliveryAgentId,omitempty" json:"deliveryAgentId,omitempty"`
	DeliveryAgentName string     `bson:"deliveryAgentName,omitempty" json:"deliveryAgentName,omitempty"`

	ExpectedDeliveryDate *time.Time `bson:"expectedDeliveryDate,omitempty" json:"expectedDeliveryDate,omitempty"`

	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// terminal statuses admit no further transitions.
var terminalStatuses = map[string]bool{
	StatusDelivered: true,
	StatusCancelled: true,
}

// CanTransition reports whether an order may move from one status to
// another. Any non-terminal state may move to any other state (staff
// drive the workflow by hand); terminal states are closed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	return !terminalStatuses[from]
}
