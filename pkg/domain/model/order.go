package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAccessDenied  = errors.New("order belongs to another user")
	ErrNoOrdersFound      = errors.New("no orders found for this user")
	ErrNoPendingOrder     = errors.New("no pending order found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPlaced    OrderStatus = "Placed"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusCompleted OrderStatus = "Completed"
	StatusCanceled  OrderStatus = "Canceled"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusPlaced, StatusConfirmed, StatusCompleted, StatusCanceled:
		return OrderStatus(s), nil
	}
	return "", ErrInvalidOrderStatus
}

type OrderItem struct {
	ItemName    string  `firestore:"itemName" json:"itemName"`
	ServiceName string  `firestore:"serviceName" json:"serviceName"`
	Quantity    int     `firestore:"quantity" json:"quantity"`
	Price       float64 `firestore:"price" json:"price"`
}

type Order struct {
	OrderID         string      `firestore:"orderId" json:"orderId"`
	UserID          string      `firestore:"userId" json:"userId"`
	UserEmail       string      `firestore:"userEmail" json:"userEmail"`
	UserName        string      `firestore:"userName" json:"userName"`
	UserPhoneNo     string      `firestore:"userPhoneNo" json:"userPhoneNo"`
	Status          OrderStatus `firestore:"status" json:"status"`
	OrderNumber     int64       `firestore:"orderNumber" json:"orderNumber"`
	TotalAmount     float64     `firestore:"totalAmount" json:"totalAmount"`
	DeliveryCharges float64     `firestore:"deliveryCharges" json:"deliveryCharges"`
	PaymentMethod   string      `firestore:"paymentMethod" json:"paymentMethod"`
	PickupDate      string      `firestore:"pickupDate" json:"pickupDate"`
	PickupTime      string      `firestore:"pickupTime" json:"pickupTime"`
	Address         string      `firestore:"address" json:"address"`
	OrderItems      []OrderItem `firestore:"orderItems" json:"orderItems"`
	CreatedAt       time.Time   `firestore:"createdAt" json:"createdAt"`
}

// OrderSummary is the projection returned by status listings.
type OrderSummary struct {
	OrderNumber int64       `json:"orderNumber"`
	Status      OrderStatus `json:"status"`
}

type OrderRepository interface {
	NextID() string
	// NextOrderNumber allocates the next value of the global order counter.
	// The read-increment-write must run inside a single store transaction;
	// an absent counter document starts the sequence at 1.
	NextOrderNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, order *Order) error
	Find(ctx context.Context, orderID string) (*Order, error)
	FindByUser(ctx context.Context, userID string) ([]Order, error)
	FindPendingByUser(ctx context.Context, userID string) (*Order, error)
	FindByUserAndStatus(ctx context.Context, userID string, status OrderStatus) ([]Order, error)
	// DeletePendingByUser removes every pending order of the user in one
	// batched write.
	DeletePendingByUser(ctx context.Context, userID string) error
	// Merge applies a partial field update to an existing order document.
	Merge(ctx context.Context, orderID string, fields map[string]interface{}) error
	Delete(ctx context.Context, orderID string) error
}
