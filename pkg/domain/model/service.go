package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrServiceNameTaken = errors.New("service name is already in use")
)

type Service struct {
	ServiceID string    `firestore:"serviceId" json:"serviceId"`
	Name      string    `firestore:"name" json:"name"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type ServiceRepository interface {
	NextID() string
	Create(ctx context.Context, service *Service) error
	Find(ctx context.Context, serviceID string) (*Service, error)
	FindByName(ctx context.Context, name string) (*Service, error)
	FindAll(ctx context.Context) ([]Service, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, serviceID string) error
}
