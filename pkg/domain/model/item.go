package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrItemExists   = errors.New("item already exists in this service")
	ErrNoItemsFound = errors.New("no items found")
)

type Item struct {
	ItemID      string    `firestore:"itemId" json:"itemId"`
	ServiceName string    `firestore:"serviceName" json:"serviceName"`
	Name        string    `firestore:"name" json:"name"`
	Price       float64   `firestore:"price" json:"price"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

// ItemPatch carries the optional fields of a partial item update. Nil means
// the field was not supplied and keeps its stored value.
type ItemPatch struct {
	ServiceName *string
	Name        *string
	Price       *float64
}

type ItemRepository interface {
	NextID() string
	Create(ctx context.Context, item *Item) error
	Find(ctx context.Context, itemID string) (*Item, error)
	FindAll(ctx context.Context) ([]Item, error)
	FindByService(ctx context.Context, serviceName string) ([]Item, error)
	FindByServiceAndName(ctx context.Context, serviceName, name string) (*Item, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID string) error
}
