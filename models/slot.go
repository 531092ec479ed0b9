package models

// Slot kinds.
const (
	SlotKindPickup   = "pickup"
	SlotKindDelivery = "delivery"
	SlotKindAny      = "any"
)

// Slot is a pickup/delivery time window. Exactly one delivery slot is
// flagged AllDay; it is the canonical slot assigned whenever an order
// gets a delivery date without an explicit window.
type Slot struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"` // e.g. "10:00 AM - 12:00 PM", "All Day"
	StartMinute int    `bson:"startMinute" json:"startMinute"` // minutes from midnight
	EndMinute   int    `bson:"endMinute" json:"endMinute"`
	Kind        string `bson:"kind" json:"kind"`
	AllDay      bool   `bson:"allDay,omitempty" json:"allDay,omitempty"`
	BookedCount int    `bson:"bookedCount,omitempty" json:"bookedCount,omitempty"`
}
