package service

import (
	"context"
	"errors"
	"time"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

// ErrUnknownService marks an item that references a service the catalog does
// not know about.
var ErrUnknownService = errors.New("referenced service does not exist")

type CreateItemInput struct {
	ServiceName string
	Name        string
	Price       float64
}

type ItemService interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*model.Item, error)
	GetAllItems(ctx context.Context) ([]model.Item, error)
	GetItemsByService(ctx context.Context, serviceName string) ([]model.Item, error)
	GetItemByID(ctx context.Context, itemID string) (*model.Item, error)
	UpdateItem(ctx context.Context, itemID string, patch model.ItemPatch) (*model.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

func NewItemService(items model.ItemRepository, services model.ServiceRepository) ItemService {
	return &itemService{items: items, services: services}
}

type itemService struct {
	items    model.ItemRepository
	services model.ServiceRepository
}

func (s *itemService) CreateItem(ctx context.Context, input CreateItemInput) (*model.Item, error) {
	serviceName := NormalizeServiceName(input.ServiceName)
	itemName := NormalizeItemName(input.Name)

	if err := s.checkServiceExists(ctx, serviceName); err != nil {
		return nil, err
	}
	if err := s.checkPairFree(ctx, serviceName, itemName); err != nil {
		return nil, err
	}

	item := &model.Item{
		ItemID:      s.items.NextID(),
		ServiceName: serviceName,
		Name:        itemName,
		Price:       input.Price,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetAllItems(ctx context.Context) ([]model.Item, error) {
	items, err := s.items.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrNoItemsFound
	}
	return items, nil
}

func (s *itemService) GetItemsByService(ctx context.Context, serviceName string) ([]model.Item, error) {
	items, err := s.items.FindByService(ctx, NormalizeServiceName(serviceName))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, model.ErrNoItemsFound
	}
	return items, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*model.Item, error) {
	return s.items.Find(ctx, itemID)
}

func (s *itemService) UpdateItem(ctx context.Context, itemID string, patch model.ItemPatch) (*model.Item, error) {
	item, err := s.items.Find(ctx, itemID)
	if err != nil {
		return nil, err
	}

	serviceName := item.ServiceName
	itemName := item.Name

	if patch.ServiceName != nil {
		serviceName = NormalizeServiceName(*patch.ServiceName)
		if err := s.checkServiceExists(ctx, serviceName); err != nil {
			return nil, err
		}
	}
	if patch.Name != nil {
		itemName = NormalizeItemName(*patch.Name)
	}

	// Uniqueness is only re-checked when the pair actually moves.
	if serviceName != item.ServiceName || itemName != item.Name {
		if err := s.checkPairFree(ctx, serviceName, itemName); err != nil {
			return nil, err
		}
	}

	item.ServiceName = serviceName
	item.Name = itemName
	if patch.Price != nil {
		item.Price = *patch.Price
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	if _, err := s.items.Find(ctx, itemID); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}

func (s *itemService) checkServiceExists(ctx context.Context, serviceName string) error {
	_, err := s.services.FindByName(ctx, serviceName)
	if err == model.ErrServiceNotFound {
		return ErrUnknownService
	}
	return err
}

func (s *itemService) checkPairFree(ctx context.Context, serviceName, itemName string) error {
	_, err := s.items.FindByServiceAndName(ctx, serviceName, itemName)
	switch {
	case err == nil:
		return model.ErrItemExists
	case err == model.ErrItemNotFound:
		return nil
	default:
		return err
	}
}
