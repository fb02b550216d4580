package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

type itemRepository struct {
	col *firestore.CollectionRef
}

func NewItemRepository(client *firestore.Client) model.ItemRepository {
	return &itemRepository{col: client.Collection(itemsCollection)}
}

func (r *itemRepository) NextID() string {
	return uuid.NewString()
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	_, err := r.col.Doc(item.ItemID).Set(ctx, item)
	return errors.Wrap(err, "create item document")
}

func (r *itemRepository) Find(ctx context.Context, itemID string) (*model.Item, error) {
	doc, err := r.col.Doc(itemID).Get(ctx)
	if isNotFound(err) {
		return nil, model.ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get item %s", itemID)
	}
	return decodeItem(doc)
}

func (r *itemRepository) FindAll(ctx context.Context) ([]model.Item, error) {
	return r.collect(r.col.Documents(ctx))
}

func (r *itemRepository) FindByService(ctx context.Context, serviceName string) ([]model.Item, error) {
	return r.collect(r.col.Where("serviceName", "==", serviceName).Documents(ctx))
}

func (r *itemRepository) FindByServiceAndName(ctx context.Context, serviceName, name string) (*model.Item, error) {
	iter := r.col.
		Where("serviceName", "==", serviceName).
		Where("name", "==", name).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, model.ErrItemNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query item %q in service %q", name, serviceName)
	}
	return decodeItem(doc)
}

func (r *itemRepository) Update(ctx context.Context, item *model.Item) error {
	_, err := r.col.Doc(item.ItemID).Set(ctx, item)
	return errors.Wrapf(err, "update item %s", item.ItemID)
}

func (r *itemRepository) Delete(ctx context.Context, itemID string) error {
	_, err := r.col.Doc(itemID).Delete(ctx)
	return errors.Wrapf(err, "delete item %s", itemID)
}

func (r *itemRepository) collect(iter *firestore.DocumentIterator) ([]model.Item, error) {
	docs, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "list items")
	}

	items := make([]model.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := decodeItem(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func decodeItem(doc *firestore.DocumentSnapshot) (*model.Item, error) {
	var item model.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Wrapf(err, "decode item %s", doc.Ref.ID)
	}
	return &item, nil
}
