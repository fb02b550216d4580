package service

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
)

// DeliveryCharges is the flat delivery fee added to every order total.
const DeliveryCharges float64 = 150

var (
	ErrMissingUserID = errors.New("user id is required to place an order")

	// Store failures inside the order workflow collapse into one generic
	// error per operation; callers never see the underlying cause.
	ErrOrderCreateFailed = errors.New("failed to create order")
	ErrOrderFetchFailed  = errors.New("failed to fetch order")
	ErrOrderUpdateFailed = errors.New("failed to update order")
	ErrOrderDeleteFailed = errors.New("failed to delete order")
)

type CreateOrderInput struct {
	UserEmail     string
	UserName      string
	UserPhoneNo   string
	Address       string
	PaymentMethod string
	PickupDate    string
	PickupTime    string
	OrderItems    []model.OrderItem
}

type CreateOrderResult struct {
	OrderID     string `json:"orderId"`
	OrderNumber int64  `json:"orderNumber"`
}

// UpdateOrderInput carries the optional fields of a partial order update.
type UpdateOrderInput struct {
	UserEmail     *string
	UserName      *string
	UserPhoneNo   *string
	Address       *string
	PaymentMethod *string
	PickupDate    *string
	PickupTime    *string
	OrderItems    []model.OrderItem
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*CreateOrderResult, error)
	GetPendingOrder(ctx context.Context, userID string) (*model.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]model.Order, error)
	GetOrderByID(ctx context.Context, userID, orderID string) (*model.Order, error)
	GetOrdersByStatus(ctx context.Context, userID, status string) ([]model.OrderSummary, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID, status string) error
	UpdateOrder(ctx context.Context, userID, orderID string, input UpdateOrderInput) error
	DeleteOrder(ctx context.Context, userID, orderID string) error
}

func NewOrderService(orders model.OrderRepository, users model.UserRepository, dispatcher EventDispatcher) OrderService {
	return &orderService{orders: orders, users: users, dispatcher: dispatcher}
}

type orderService struct {
	orders     model.OrderRepository
	users      model.UserRepository
	dispatcher EventDispatcher
}

func (s *orderService) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*CreateOrderResult, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	// A user keeps at most one pending order: any previous one is discarded
	// outright, not merged. This cleanup and the counter transaction below
	// are intentionally separate units of work.
	if err := s.orders.DeletePendingByUser(ctx, userID); err != nil {
		log.WithError(err).WithField("userId", userID).Error("cleanup of pending orders failed")
		return nil, ErrOrderCreateFailed
	}

	orderNumber, err := s.orders.NextOrderNumber(ctx)
	if err != nil {
		log.WithError(err).Error("order number allocation failed")
		return nil, ErrOrderCreateFailed
	}

	var total float64
	for _, item := range input.OrderItems {
		total += item.Price * float64(item.Quantity)
	}

	order := &model.Order{
		OrderID:         s.orders.NextID(),
		UserID:          userID,
		UserEmail:       input.UserEmail,
		UserName:        input.UserName,
		UserPhoneNo:     input.UserPhoneNo,
		Status:          model.StatusPending,
		OrderNumber:     orderNumber,
		TotalAmount:     total + DeliveryCharges,
		DeliveryCharges: DeliveryCharges,
		PaymentMethod:   input.PaymentMethod,
		PickupDate:      input.PickupDate,
		PickupTime:      input.PickupTime,
		Address:         input.Address,
		OrderItems:      input.OrderItems,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		log.WithError(err).WithField("orderId", order.OrderID).Error("order persistence failed")
		return nil, ErrOrderCreateFailed
	}

	s.dispatch(model.OrderPlaced{
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		UserID:      userID,
		TotalAmount: order.TotalAmount,
	})

	return &CreateOrderResult{OrderID: order.OrderID, OrderNumber: order.OrderNumber}, nil
}

func (s *orderService) GetPendingOrder(ctx context.Context, userID string) (*model.Order, error) {
	order, err := s.orders.FindPendingByUser(ctx, userID)
	switch {
	case err == nil:
		return order, nil
	case errors.Is(err, model.ErrOrderNotFound):
		return nil, model.ErrNoPendingOrder
	default:
		log.WithError(err).WithField("userId", userID).Error("pending order lookup failed")
		return nil, ErrOrderFetchFailed
	}
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("userId", userID).Error("order listing failed")
		return nil, ErrOrderFetchFailed
	}
	if len(orders) == 0 {
		return nil, model.ErrNoOrdersFound
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, userID, orderID string) (*model.Order, error) {
	return s.fetchOwned(ctx, userID, orderID)
}

func (s *orderService) GetOrdersByStatus(ctx context.Context, userID, status string) ([]model.OrderSummary, error) {
	parsed, err := model.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	// Checked against the stored profile record, not the identity provider.
	// A missing profile means an empty listing, not an error.
	if _, err := s.users.Find(ctx, userID); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return []model.OrderSummary{}, nil
		}
		log.WithError(err).WithField("userId", userID).Error("user profile lookup failed")
		return nil, ErrOrderFetchFailed
	}

	orders, err := s.orders.FindByUserAndStatus(ctx, userID, parsed)
	if err != nil {
		log.WithError(err).WithField("userId", userID).Error("order listing by status failed")
		return nil, ErrOrderFetchFailed
	}

	summaries := make([]model.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, model.OrderSummary{
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
		})
	}
	return summaries, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, userID, orderID, status string) error {
	// Existence and ownership are checked before the payload: a non-owner
	// learns nothing about the order, not even that its status is invalid.
	order, err := s.fetchOwned(ctx, userID, orderID)
	if err != nil {
		return err
	}

	parsed, err := model.ParseOrderStatus(status)
	if err != nil {
		return err
	}

	if err := s.orders.Merge(ctx, orderID, map[string]interface{}{"status": parsed}); err != nil {
		log.WithError(err).WithField("orderId", orderID).Error("status update failed")
		return ErrOrderUpdateFailed
	}

	s.dispatch(model.OrderStatusChanged{
		OrderID:   orderID,
		UserID:    userID,
		OldStatus: order.Status,
		NewStatus: parsed,
	})
	return nil
}

func (s *orderService) UpdateOrder(ctx context.Context, userID, orderID string, input UpdateOrderInput) error {
	if _, err := s.fetchOwned(ctx, userID, orderID); err != nil {
		return err
	}

	fields := mergeFields(input)
	if len(fields) == 0 {
		return nil
	}

	if err := s.orders.Merge(ctx, orderID, fields); err != nil {
		log.WithError(err).WithField("orderId", orderID).Error("order update failed")
		return ErrOrderUpdateFailed
	}
	return nil
}

func (s *orderService) DeleteOrder(ctx context.Context, userID, orderID string) error {
	if _, err := s.fetchOwned(ctx, userID, orderID); err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		log.WithError(err).WithField("orderId", orderID).Error("order deletion failed")
		return ErrOrderDeleteFailed
	}

	s.dispatch(model.OrderDeleted{OrderID: orderID, UserID: userID})
	return nil
}

// fetchOwned loads an order and verifies the caller owns it. Not-found and
// ownership failures propagate as-is, everything else collapses into the
// generic fetch error.
func (s *orderService) fetchOwned(ctx context.Context, userID, orderID string) (*model.Order, error) {
	order, err := s.orders.Find(ctx, orderID)
	switch {
	case err == nil:
	case errors.Is(err, model.ErrOrderNotFound):
		return nil, model.ErrOrderNotFound
	default:
		log.WithError(err).WithField("orderId", orderID).Error("order lookup failed")
		return nil, ErrOrderFetchFailed
	}

	if order.UserID != userID {
		return nil, model.ErrOrderAccessDenied
	}
	return order, nil
}

func (s *orderService) dispatch(event Event) {
	if err := s.dispatcher.Dispatch(event); err != nil {
		log.WithError(err).WithField("event", event.Type()).Error("failed to dispatch event")
	}
}

// mergeFields turns the supplied patch fields into a raw partial merge,
// leaving absent fields untouched. Nested order items are replaced wholesale
// without re-validation.
func mergeFields(input UpdateOrderInput) map[string]interface{} {
	fields := make(map[string]interface{})
	if input.UserEmail != nil {
		fields["userEmail"] = *input.UserEmail
	}
	if input.UserName != nil {
		fields["userName"] = *input.UserName
	}
	if input.UserPhoneNo != nil {
		fields["userPhoneNo"] = *input.UserPhoneNo
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.PaymentMethod != nil {
		fields["paymentMethod"] = *input.PaymentMethod
	}
	if input.PickupDate != nil {
		fields["pickupDate"] = *input.PickupDate
	}
	if input.PickupTime != nil {
		fields["pickupTime"] = *input.PickupTime
	}
	if input.OrderItems != nil {
		fields["orderItems"] = input.OrderItems
	}
	return fields
}
