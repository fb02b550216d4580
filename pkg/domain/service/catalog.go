package service

import (
	"context"
	"strings"
	"time"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

// NormalizeServiceName strips all whitespace and lowercases, so that
// "Dry Clean" and " dryclean " address the same service.
func NormalizeServiceName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// NormalizeItemName trims surrounding whitespace and lowercases.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type CatalogService interface {
	CreateService(ctx context.Context, name string) (*model.Service, error)
	GetAllServices(ctx context.Context) ([]model.Service, error)
	GetServiceByID(ctx context.Context, serviceID string) (*model.Service, error)
	UpdateService(ctx context.Context, serviceID string, name *string) (*model.Service, error)
	DeleteService(ctx context.Context, serviceID string) error
}

func NewCatalogService(repo model.ServiceRepository) CatalogService {
	return &catalogService{repo: repo}
}

type catalogService struct {
	repo model.ServiceRepository
}

func (s *catalogService) CreateService(ctx context.Context, name string) (*model.Service, error) {
	normalized := NormalizeServiceName(name)

	if err := s.checkNameFree(ctx, normalized); err != nil {
		return nil, err
	}

	svc := &model.Service{
		ServiceID: s.repo.NextID(),
		Name:      normalized,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) GetAllServices(ctx context.Context) ([]model.Service, error) {
	return s.repo.FindAll(ctx)
}

func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*model.Service, error) {
	return s.repo.Find(ctx, serviceID)
}

// UpdateService renames a service. The uniqueness check does not exclude the
// service being updated, so renaming to the current name conflicts too.
func (s *catalogService) UpdateService(ctx context.Context, serviceID string, name *string) (*model.Service, error) {
	svc, err := s.repo.Find(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		normalized := NormalizeServiceName(*name)
		// The rename conflicts with any holder of the name, the service
		// itself included.
		if err := s.checkNameFree(ctx, normalized); err != nil {
			return nil, err
		}
		svc.Name = normalized
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	if _, err := s.repo.Find(ctx, serviceID); err != nil {
		return err
	}
	// Items referencing the service are left in place, there is no cascade.
	return s.repo.Delete(ctx, serviceID)
}

func (s *catalogService) checkNameFree(ctx context.Context, normalized string) error {
	_, err := s.repo.FindByName(ctx, normalized)
	switch {
	case err == nil:
		return model.ErrServiceNameTaken
	case err == model.ErrServiceNotFound:
		return nil
	default:
		return err
	}
}
