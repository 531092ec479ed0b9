// Package catalog exposes the laundry service catalog: pricing models,
// rates, subcategories and turnaround times.
package catalog

import (
	"context"
	"encoding/json"

	catalogRepo "washex/database/repository/catalog"
	"washex/models"
	"washex/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogService owns service-definition CRUD.
type CatalogService interface {
	CreateService(ctx context.Context, svc models.ServiceDefinition) (*models.ServiceDefinition, error)
	GetService(ctx context.Context, id string) (*models.ServiceDefinition, error)
	ListServices(ctx context.Context, activeOnly bool) ([]models.ServiceDefinition, error)
	UpdateService(ctx context.Context, id string, updates map[string]any) (*models.ServiceDefinition, error)
	DeleteService(ctx context.Context, id string) error
}

// DefaultCatalogService is the production CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) CreateService(ctx context.Context, svc models.ServiceDefinition) (*models.ServiceDefinition, error) {
	id, err := s.Repo.Create(ctx, svc)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) GetService(ctx context.Context, id string) (*models.ServiceDefinition, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) ListServices(ctx context.Context, activeOnly bool) ([]models.ServiceDefinition, error) {
	return s.Repo.GetAll(ctx, activeOnly)
}

// UpdateService merges the allowed update fields onto the stored
// definition, re-validates the result and persists it.
func (s *DefaultCatalogService) UpdateService(ctx context.Context, id string, updates map[string]any) (*models.ServiceDefinition, error) {
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Identity and pricing model are fixed after creation; everything
	// else merges through a JSON round trip.
	delete(updates, "id")
	delete(updates, "pricingModel")

	buf, err := json.Marshal(updates)
	if err != nil {
		return nil, utils.ValidationError{Message: "update payload is not serializable"}
	}
	merged := *existing
	if err := json.Unmarshal(buf, &merged); err != nil {
		return nil, utils.ValidationError{Message: "update payload is malformed"}
	}
	if err := merged.Validate(); err != nil {
		return nil, utils.ValidationError{Message: err.Error()}
	}

	set := bson.M{
		"name":                merged.Name,
		"weight":              merged.Weight,
		"pair":                merged.Pair,
		"itemized":            merged.Itemized,
		"standardTat":         merged.StandardTAT,
		"expressTat":          merged.ExpressTAT,
		"superfastTat":        merged.SuperfastTAT,
		"expressMultiplier":   merged.ExpressMultiplier,
		"superfastMultiplier": merged.SuperfastMultiplier,
		"active":              merged.Active,
	}
	if err := s.Repo.Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) DeleteService(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
