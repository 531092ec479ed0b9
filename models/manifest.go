package models

// Manifest kinds.
const (
	ManifestPickup   = "pickup"
	ManifestDelivery = "delivery"
)

// ManifestRow is one printable line of a pickup or delivery manifest.
// Summary carries the slot name on pickup manifests and the amount due
// on delivery manifests.
type ManifestRow struct {
	Seq          int    `json:"seq"`
	OrderCode    string `json:"orderCode"` // "WX-1A2B3 (Walk-in)"
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Summary      string `json:"summary"`
	Items        string `json:"items"`
	AgentName    string `json:"agentName"` // "Unassigned" when none
	Notes        string `json:"notes"`     // blank column for handwriting
}
