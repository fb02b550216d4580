package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

type serviceRepository struct {
	col *firestore.CollectionRef
}

func NewServiceRepository(client *firestore.Client) model.ServiceRepository {
	return &serviceRepository{col: client.Collection(servicesCollection)}
}

func (r *serviceRepository) NextID() string {
	return uuid.NewString()
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	_, err := r.col.Doc(service.ServiceID).Set(ctx, service)
	return errors.Wrap(err, "create service document")
}

func (r *serviceRepository) Find(ctx context.Context, serviceID string) (*model.Service, error) {
	doc, err := r.col.Doc(serviceID).Get(ctx)
	if isNotFound(err) {
		return nil, model.ErrServiceNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get service %s", serviceID)
	}

	var svc model.Service
	if err := doc.DataTo(&svc); err != nil {
		return nil, errors.Wrapf(err, "decode service %s", serviceID)
	}
	return &svc, nil
}

func (r *serviceRepository) FindByName(ctx context.Context, name string) (*model.Service, error) {
	iter := r.col.Where("name", "==", name).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, model.ErrServiceNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query service by name %q", name)
	}

	var svc model.Service
	if err := doc.DataTo(&svc); err != nil {
		return nil, errors.Wrapf(err, "decode service %q", name)
	}
	return &svc, nil
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]model.Service, error) {
	docs, err := r.col.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "list services")
	}

	services := make([]model.Service, 0, len(docs))
	for _, doc := range docs {
		var svc model.Service
		if err := doc.DataTo(&svc); err != nil {
			return nil, errors.Wrap(err, "decode service")
		}
		services = append(services, svc)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	_, err := r.col.Doc(service.ServiceID).Set(ctx, service)
	return errors.Wrapf(err, "update service %s", service.ServiceID)
}

func (r *serviceRepository) Delete(ctx context.Context, serviceID string) error {
	_, err := r.col.Doc(serviceID).Delete(ctx)
	return errors.Wrapf(err, "delete service %s", serviceID)
}
