package customer

import (
	"context"
	"testing"

	customerRepo "washex/database/repository/customer"
	"washex/models"
	"washex/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeRepo struct {
	customerRepo.CustomerRepository
	byID    map[string]models.Customer
	lastSet bson.M
}

func (f *fakeRepo) Create(_ context.Context, c models.Customer) (string, error) {
	if c.ID == "" {
		c.ID = "cust-new"
	}
	for _, existing := range f.byID {
		if existing.Phone == c.Phone {
			return "", utils.ConflictError{Field: "phone", Value: c.Phone}
		}
	}
	f.byID[c.ID] = c
	return c.ID, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*models.Customer, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, utils.NotFoundError{Resource: "customer", ID: id}
	}
	return &c, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, set bson.M) error {
	c, ok := f.byID[id]
	if !ok {
		return utils.NotFoundError{Resource: "customer", ID: id}
	}
	f.lastSet = set
	if v, ok := set["name"].(string); ok {
		c.Name = v
	}
	if v, ok := set["phone"].(string); ok {
		c.Phone = v
	}
	if v, ok := set["addresses"].([]models.Address); ok {
		c.Addresses = v
	}
	f.byID[id] = c
	return nil
}

func newService() (*DefaultCustomerService, *fakeRepo) {
	repo := &fakeRepo{byID: map[string]models.Customer{
		"cust-1": {ID: "cust-1", Name: "Asha Rao", Phone: "9811111111"},
	}}
	return &DefaultCustomerService{Repo: repo}, repo
}

func TestCreateCustomer(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateCustomer(context.Background(), models.Customer{
		Name:  "  Meera Jain ",
		Phone: " 9833333333 ",
		Addresses: []models.Address{
			{AddressText: "7 Hill Road"},
			{AddressText: "2 Beach Lane"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Meera Jain", created.Name)
	assert.Equal(t, "9833333333", created.Phone)

	// The first address becomes current when none is flagged.
	require.Len(t, created.Addresses, 2)
	assert.True(t, created.Addresses[0].IsCurrent)
	assert.False(t, created.Addresses[1].IsCurrent)
}

func TestCreateCustomerValidation(t *testing.T) {
	svc, _ := newService()
	var verr utils.ValidationError

	_, err := svc.CreateCustomer(context.Background(), models.Customer{Phone: "9833333333"})
	require.ErrorAs(t, err, &verr)

	_, err = svc.CreateCustomer(context.Background(), models.Customer{Name: "Meera", Phone: "   "})
	require.ErrorAs(t, err, &verr)
}

func TestCreateCustomerDuplicatePhone(t *testing.T) {
	svc, _ := newService()
	_, err := svc.CreateCustomer(context.Background(), models.Customer{Name: "Clone", Phone: "9811111111"})
	var cerr utils.ConflictError
	require.ErrorAs(t, err, &cerr)
}

func TestUpdateCustomerAddresses(t *testing.T) {
	svc, repo := newService()

	updated, err := svc.UpdateCustomer(context.Background(), "cust-1", map[string]any{
		"addresses": []map[string]any{
			{"addressText": "7 Hill Road", "isCurrent": true},
			{"addressText": "2 Beach Lane", "isCurrent": true},
		},
	})
	require.NoError(t, err)

	// Only the first flagged address stays current.
	require.Len(t, updated.Addresses, 2)
	assert.True(t, updated.Addresses[0].IsCurrent)
	assert.False(t, updated.Addresses[1].IsCurrent)
	assert.Contains(t, repo.lastSet, "addresses")
}

func TestUpdateCustomerRejectsEmptyPatch(t *testing.T) {
	svc, _ := newService()
	_, err := svc.UpdateCustomer(context.Background(), "cust-1", map[string]any{"nickname": "A"})
	var verr utils.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestNormalizeAddresses(t *testing.T) {
	t.Run("empty list is fine", func(t *testing.T) {
		normalizeAddresses(nil)
	})

	t.Run("single flag preserved", func(t *testing.T) {
		addrs := []models.Address{{AddressText: "a"}, {AddressText: "b", IsCurrent: true}}
		normalizeAddresses(addrs)
		assert.False(t, addrs[0].IsCurrent)
		assert.True(t, addrs[1].IsCurrent)
	})
}
