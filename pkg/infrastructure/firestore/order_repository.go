package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

// orderCounterDoc is the singleton document holding the last allocated
// order number.
const orderCounterDoc = "orderCounter"

type orderCounter struct {
	LastOrderNumber int64 `firestore:"lastOrderNumber"`
}

type orderRepository struct {
	client   *firestore.Client
	col      *firestore.CollectionRef
	counters *firestore.CollectionRef
}

func NewOrderRepository(client *firestore.Client) model.OrderRepository {
	return &orderRepository{
		client:   client,
		col:      client.Collection(ordersCollection),
		counters: client.Collection(countersCollection),
	}
}

func (r *orderRepository) NextID() string {
	return uuid.NewString()
}

// NextOrderNumber increments the global counter inside a Firestore
// transaction. Firestore retries the closure on contention, so two
// concurrent callers can never be handed the same number.
func (r *orderRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	ref := r.counters.Doc(orderCounterDoc)

	var next int64
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		switch {
		case isNotFound(err):
			next = 1
		case err != nil:
			return err
		default:
			var counter orderCounter
			if err := doc.DataTo(&counter); err != nil {
				return err
			}
			next = counter.LastOrderNumber + 1
		}
		return tx.Set(ref, orderCounter{LastOrderNumber: next})
	})
	if err != nil {
		return 0, errors.Wrap(err, "allocate order number")
	}
	return next, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	_, err := r.col.Doc(order.OrderID).Set(ctx, order)
	return errors.Wrap(err, "create order document")
}

func (r *orderRepository) Find(ctx context.Context, orderID string) (*model.Order, error) {
	doc, err := r.col.Doc(orderID).Get(ctx)
	if isNotFound(err) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get order %s", orderID)
	}
	return decodeOrder(doc)
}

func (r *orderRepository) FindByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return r.collect(r.col.Where("userId", "==", userID).Documents(ctx))
}

func (r *orderRepository) FindPendingByUser(ctx context.Context, userID string) (*model.Order, error) {
	iter := r.pendingQuery(userID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query pending order of user %s", userID)
	}
	return decodeOrder(doc)
}

func (r *orderRepository) FindByUserAndStatus(ctx context.Context, userID string, status model.OrderStatus) ([]model.Order, error) {
	return r.collect(r.col.
		Where("userId", "==", userID).
		Where("status", "==", string(status)).
		Documents(ctx))
}

func (r *orderRepository) DeletePendingByUser(ctx context.Context, userID string) error {
	docs, err := r.pendingQuery(userID).Documents(ctx).GetAll()
	if err != nil {
		return errors.Wrapf(err, "query pending orders of user %s", userID)
	}
	if len(docs) == 0 {
		return nil
	}

	batch := r.client.Batch()
	for _, doc := range docs {
		batch.Delete(doc.Ref)
	}
	_, err = batch.Commit(ctx)
	return errors.Wrapf(err, "delete pending orders of user %s", userID)
}

func (r *orderRepository) Merge(ctx context.Context, orderID string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := r.col.Doc(orderID).Update(ctx, updates)
	return errors.Wrapf(err, "merge order %s", orderID)
}

func (r *orderRepository) Delete(ctx context.Context, orderID string) error {
	_, err := r.col.Doc(orderID).Delete(ctx)
	return errors.Wrapf(err, "delete order %s", orderID)
}

func (r *orderRepository) pendingQuery(userID string) firestore.Query {
	return r.col.
		Where("userId", "==", userID).
		Where("status", "==", string(model.StatusPending))
}

func (r *orderRepository) collect(iter *firestore.DocumentIterator) ([]model.Order, error) {
	docs, err := iter.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	orders := make([]model.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := decodeOrder(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func decodeOrder(doc *firestore.DocumentSnapshot) (*model.Order, error) {
	var order model.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Wrapf(err, "decode order %s", doc.Ref.ID)
	}
	return &order, nil
}
