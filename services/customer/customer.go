package customer

import (
	"context"
	"encoding/json"
	"strings"

	customerRepo "washex/database/repository/customer"
	"washex/models"
	"washex/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// CustomerService owns customer CRUD and address bookkeeping.
type CustomerService interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error)
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, updates map[string]any) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// DefaultCustomerService is the production CustomerService.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func (s *DefaultCustomerService) CreateCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Name == "" || customer.Phone == "" {
		return nil, utils.ValidationError{Message: "customer name and phone are required"}
	}
	normalizeAddresses(customer.Addresses)

	id, err := s.Repo.Create(ctx, customer)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCustomerService) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCustomerService) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	return s.Repo.GetByPhone(ctx, phone)
}

func (s *DefaultCustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultCustomerService) UpdateCustomer(ctx context.Context, id string, updates map[string]any) (*models.Customer, error) {
	set := bson.M{}
	if v, ok := updates["name"].(string); ok && v != "" {
		set["name"] = strings.TrimSpace(v)
	}
	if v, ok := updates["phone"].(string); ok && v != "" {
		set["phone"] = strings.TrimSpace(v)
	}
	if v, ok := updates["email"].(string); ok {
		set["email"] = v
	}
	if v, ok := updates["addresses"]; ok {
		addresses, err := decodeAddresses(v)
		if err != nil {
			return nil, err
		}
		normalizeAddresses(addresses)
		set["addresses"] = addresses
	}
	if len(set) == 0 {
		return nil, utils.ValidationError{Message: "no updatable fields in payload"}
	}

	if err := s.Repo.Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// normalizeAddresses keeps at most one current address, defaulting to
// the first when none is flagged.
func normalizeAddresses(addresses []models.Address) {
	seenCurrent := false
	for i := range addresses {
		if addresses[i].IsCurrent {
			if seenCurrent {
				addresses[i].IsCurrent = false
			}
			seenCurrent = true
		}
	}
	if !seenCurrent && len(addresses) > 0 {
		addresses[0].IsCurrent = true
	}
}

func decodeAddresses(raw any) ([]models.Address, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, utils.ValidationError{Message: "addresses payload is not serializable"}
	}
	var addresses []models.Address
	if err := json.Unmarshal(buf, &addresses); err != nil {
		return nil, utils.ValidationError{Message: "addresses payload is malformed"}
	}
	return addresses, nil
}
