package model

type OrderPlaced struct {
	OrderID     string  `json:"orderId"`
	OrderNumber int64   `json:"orderNumber"`
	UserID      string  `json:"userId"`
	TotalAmount float64 `json:"totalAmount"`
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OrderStatusChanged struct {
	OrderID   string      `json:"orderId"`
	UserID    string      `json:"userId"`
	OldStatus OrderStatus `json:"oldStatus"`
	NewStatus OrderStatus `json:"newStatus"`
}

func (e OrderStatusChanged) Type() string { return "OrderStatusChanged" }

type OrderDeleted struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
}

func (e OrderDeleted) Type() string { return "OrderDeleted" }

type UserRegistered struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

func (e UserRegistered) Type() string { return "UserRegistered" }
