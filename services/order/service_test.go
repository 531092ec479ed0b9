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
	"washex/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory repository fakes. Each embeds its interface so only the
// methods the order service touches need real implementations.

type fakeCustomerRepo struct {
	customerRepo.CustomerRepository
	customers map[string]models.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "customer", ID: id}
	}
	return &c, nil
}

type fakeCatalogRepo struct {
	catalogRepo.CatalogRepository
	services map[string]models.ServiceDefinition
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*models.ServiceDefinition, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "service", ID: id}
	}
	return &svc, nil
}

type fakeStaffRepo struct {
	staffRepo.StaffRepository
	staff map[string]models.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*models.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "staff member", ID: id}
	}
	return &s, nil
}

type fakeSlotRepo struct {
	slotRepo.SlotRepository
	slots      map[string]models.Slot
	allDay     *models.Slot
	allDayErr  error // overrides the all-day lookup when set
	increments map[string]int
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id string) (*models.Slot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "slot", ID: id}
	}
	return &s, nil
}

func (f *fakeSlotRepo) GetAllDaySlot(_ context.Context) (*models.Slot, error) {
	if f.allDayErr != nil {
		return nil, f.allDayErr
	}
	if f.allDay == nil {
		return nil, utils.NotFoundError{Resource: "all-day delivery slot"}
	}
	return f.allDay, nil
}

func (f *fakeSlotRepo) IncrementBooked(_ context.Context, id string, delta int) error {
	if f.increments == nil {
		f.increments = map[string]int{}
	}
	f.increments[id] += delta
	return nil
}

type fakeOrderRepo struct {
	orderRepo.OrderRepository
	orders      map[string]models.Order
	insertOrder []string
	failAfter   int // fail inserts once this many orders exist; 0 disables
}

func (f *fakeOrderRepo) Insert(_ context.Context, ord models.Order) error {
	if f.failAfter > 0 && len(f.orders) >= f.failAfter {
		return utils.DependencyError{Op: "insert order", Err: context.DeadlineExceeded}
	}
	if _, exists := f.orders[ord.Code]; exists {
		return utils.ConflictError{Field: "code", Value: ord.Code}
	}
	f.orders[ord.Code] = ord
	f.insertOrder = append(f.insertOrder, ord.Code)
	return nil
}

func (f *fakeOrderRepo) GetByCode(_ context.Context, code string) (*models.Order, error) {
	ord, ok := f.orders[code]
	if !ok {
		return nil, utils.NotFoundError{Resource: "order", ID: code}
	}
	return &ord, nil
}

func (f *fakeOrderRepo) CodeExists(_ context.Context, code string) (bool, error) {
	_, ok := f.orders[code]
	return ok, nil
}

// UpdateByCode mimics Mongo's $set/$unset through a bson round trip so
// the service sees exactly what the driver would persist.
func (f *fakeOrderRepo) UpdateByCode(_ context.Context, code string, set, unset bson.M) error {
	ord, ok := f.orders[code]
	if !ok {
		return utils.NotFoundError{Resource: "order", ID: code}
	}

	raw, err := bson.Marshal(ord)
	if err != nil {
		return err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}
	for k, v := range set {
		doc[k] = v
	}
	for k := range unset {
		delete(doc, k)
	}
	raw, err = bson.Marshal(doc)
	if err != nil {
		return err
	}
	var updated models.Order
	if err := bson.Unmarshal(raw, &updated); err != nil {
		return err
	}
	f.orders[code] = updated
	return nil
}

// newTestService builds a DefaultOrderService over in-memory fakes
// seeded with a small laundry catalog.
func newTestService() (*DefaultOrderService, *fakeOrderRepo) {
	customers := &fakeCustomerRepo{customers: map[string]models.Customer{
		"cust-1": {
			ID: "cust-1", Name: "Asha Rao", Phone: "9811111111",
			Addresses: []models.Address{
				{AddressText: "12 Rose Villa", Society: "Green Park", Pincode: "560038", IsCurrent: false},
				{AddressText: "44 Lake View", Society: "Sunrise Towers", Pincode: "560001", IsCurrent: true},
			},
		},
		"cust-noaddr": {ID: "cust-noaddr", Name: "Walkin Joe", Phone: "9822222222"},
	}}

	catalog := &fakeCatalogRepo{services: map[string]models.ServiceDefinition{
		"svc-wf": {
			ID: "svc-wf", Name: "Wash & Fold", PricingModel: models.PricingPerWeight,
			Weight:      &models.WeightPricing{RatePerKg: 80},
			StandardTAT: "48", ExpressTAT: "24", SuperfastTAT: "8",
		},
		"svc-shoe": {
			ID: "svc-shoe", Name: "Shoe Cleaning", PricingModel: models.PricingPerPair,
			Pair:        &models.PairPricing{RatePerPair: 250},
			StandardTAT: "72", ExpressTAT: "48", SuperfastTAT: "24",
		},
		"svc-dc": {
			ID: "svc-dc", Name: "Dry Cleaning", PricingModel: models.PricingPerItem,
			Itemized: &models.ItemizedPricing{Subcategories: []models.Subcategory{
				{Name: "Shirt", Price: 60},
				{Name: "Trousers", Price: 80},
			}},
			StandardTAT: "96", ExpressTAT: "48", SuperfastTAT: "24",
		},
		"svc-notat": {
			ID: "svc-notat", Name: "Alterations", PricingModel: models.PricingPerItem,
			Itemized: &models.ItemizedPricing{Subcategories: []models.Subcategory{
				{Name: "Hemming", Price: 120},
			}},
			StandardTAT: "on request", ExpressTAT: "", SuperfastTAT: "",
		},
	}}

	staff := &fakeStaffRepo{staff: map[string]models.Staff{
		"agent-1": {ID: "agent-1", Name: "Ravi Kumar", Role: models.RoleAgent, Active: true},
		"agent-2": {ID: "agent-2", Name: "Sunita Devi", Role: models.RoleAgent, Active: true},
	}}

	allDay := models.Slot{ID: "slot-allday", Name: "All Day", Kind: models.SlotKindDelivery, AllDay: true}
	slots := &fakeSlotRepo{
		slots: map[string]models.Slot{
			"slot-am":     {ID: "slot-am", Name: "8:00 AM - 10:00 AM", Kind: models.SlotKindAny},
			"slot-allday": allDay,
		},
		allDay: &allDay,
	}

	orders := &fakeOrderRepo{orders: map[string]models.Order{}}

	svc := &DefaultOrderService{
		CustomerRepo: customers,
		CatalogRepo:  catalog,
		StaffRepo:    staff,
		SlotRepo:     slots,
		OrderRepo:    orders,
	}
	return svc, orders
}

func timePtr(t time.Time) *time.Time { return &t }

func floatPtr(f float64) *float64 { return &f }
