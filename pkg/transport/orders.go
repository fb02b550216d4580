package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
)

type createOrderRequest struct {
	UserEmail     string            `json:"userEmail"`
	UserName      string            `json:"userName"`
	UserPhoneNo   string            `json:"userPhoneNo"`
	Address       string            `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
	PickupDate    string            `json:"pickupDate"`
	PickupTime    string            `json:"pickupTime"`
	OrderItems    []model.OrderItem `json:"orderItems"`
}

type updateOrderRequest struct {
	UserEmail     *string           `json:"userEmail"`
	UserName      *string           `json:"userName"`
	UserPhoneNo   *string           `json:"userPhoneNo"`
	Address       *string           `json:"address"`
	PaymentMethod *string           `json:"paymentMethod"`
	PickupDate    *string           `json:"pickupDate"`
	PickupTime    *string           `json:"pickupTime"`
	OrderItems    []model.OrderItem `json:"orderItems"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (r createOrderRequest) validate() string {
	switch {
	case r.UserEmail == "":
		return "userEmail is required"
	case r.UserName == "":
		return "userName is required"
	case r.UserPhoneNo == "":
		return "userPhoneNo is required"
	case r.Address == "":
		return "address is required"
	case r.PaymentMethod == "":
		return "paymentMethod is required"
	case r.PickupDate == "":
		return "pickupDate is required"
	case r.PickupTime == "":
		return "pickupTime is required"
	case len(r.OrderItems) == 0:
		return "orderItems must not be empty"
	}
	for _, item := range r.OrderItems {
		if item.ItemName == "" || item.ServiceName == "" {
			return "every order item needs itemName and serviceName"
		}
	}
	return ""
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	result, err := h.orders.CreateOrder(r.Context(), callerID(r), service.CreateOrderInput{
		UserEmail:     req.UserEmail,
		UserName:      req.UserName,
		UserPhoneNo:   req.UserPhoneNo,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		PickupDate:    req.PickupDate,
		PickupTime:    req.PickupTime,
		OrderItems:    req.OrderItems,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) getPendingOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetPendingOrder(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetUserOrders(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderByID(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.GetOrderByID(r.Context(), callerID(r), mux.Vars(r)["orderId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.orders.GetOrdersByStatus(r.Context(), callerID(r), mux.Vars(r)["status"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Status == "" {
		writeBadRequest(w, "status is required")
		return
	}

	if err := h.orders.UpdateOrderStatus(r.Context(), callerID(r), mux.Vars(r)["orderId"], req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Order status updated successfully")
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var req updateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	err := h.orders.UpdateOrder(r.Context(), callerID(r), mux.Vars(r)["orderId"], service.UpdateOrderInput{
		UserEmail:     req.UserEmail,
		UserName:      req.UserName,
		UserPhoneNo:   req.UserPhoneNo,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		PickupDate:    req.PickupDate,
		PickupTime:    req.PickupTime,
		OrderItems:    req.OrderItems,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Order updated successfully")
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.DeleteOrder(r.Context(), callerID(r), mux.Vars(r)["orderId"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Order deleted successfully")
}
