package handlers

// HandlerBundle groups the per-domain handlers handed to route
// registration.
type HandlerBundle struct {
	Orders    *OrderHandler
	Customers *CustomerHandler
	Staff     *StaffHandler
	Catalog   *CatalogHandler
	Slots     *SlotHandler
	Manifests *ManifestHandler
}
