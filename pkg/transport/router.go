// Package transport exposes the HTTP surface of the laundry backend.
package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
)

type Handler struct {
	catalog  service.CatalogService
	items    service.ItemService
	orders   service.OrderService
	users    service.UserService
	provider model.IdentityProvider
}

func NewHandler(
	catalog service.CatalogService,
	items service.ItemService,
	orders service.OrderService,
	users service.UserService,
	provider model.IdentityProvider,
) *Handler {
	return &Handler{
		catalog:  catalog,
		items:    items,
		orders:   orders,
		users:    users,
		provider: provider,
	}
}

func Router(h *Handler) http.Handler {
	r := mux.NewRouter()
	auth := authMiddleware(h.provider)

	// Catalog: services.
	r.HandleFunc("/services", h.createService).Methods(http.MethodPost)
	r.HandleFunc("/services", h.getAllServices).Methods(http.MethodGet)
	r.HandleFunc("/services/{id}", h.getServiceByID).Methods(http.MethodGet)
	r.HandleFunc("/services/{id}", h.updateService).Methods(http.MethodPatch)
	r.HandleFunc("/services/{id}", h.deleteService).Methods(http.MethodDelete)

	// Catalog: items.
	r.HandleFunc("/items", h.createItem).Methods(http.MethodPost)
	r.HandleFunc("/items", h.getAllItems).Methods(http.MethodGet)
	r.HandleFunc("/items/service/{serviceName}", h.getItemsByService).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", h.getItemByID).Methods(http.MethodGet)
	r.HandleFunc("/items/{id}", h.updateItem).Methods(http.MethodPatch)
	r.HandleFunc("/items/{id}", h.deleteItem).Methods(http.MethodDelete)

	// Orders, all behind bearer auth. Fixed segments are registered before
	// the {orderId} routes so mux does not swallow them.
	orders := r.PathPrefix("/orders").Subrouter()
	orders.Use(auth)
	orders.HandleFunc("", h.createOrder).Methods(http.MethodPost)
	orders.HandleFunc("", h.getUserOrders).Methods(http.MethodGet)
	orders.HandleFunc("/pending", h.getPendingOrder).Methods(http.MethodGet)
	orders.HandleFunc("/status/{status}", h.getOrdersByStatus).Methods(http.MethodGet)
	orders.HandleFunc("/{orderId}/status", h.updateOrderStatus).Methods(http.MethodPatch)
	orders.HandleFunc("/{orderId}", h.getOrderByID).Methods(http.MethodGet)
	orders.HandleFunc("/{orderId}", h.updateOrder).Methods(http.MethodPatch)
	orders.HandleFunc("/{orderId}", h.deleteOrder).Methods(http.MethodDelete)

	// User and auth.
	r.HandleFunc("/user/register", h.register).Methods(http.MethodPost)
	r.HandleFunc("/user/login", h.login).Methods(http.MethodPost)
	r.HandleFunc("/user/refresh-token", h.refreshToken).Methods(http.MethodPost)
	r.Handle("/user/me", auth(http.HandlerFunc(h.me))).Methods(http.MethodGet)
	r.Handle("/user", auth(http.HandlerFunc(h.updateUser))).Methods(http.MethodPatch)
	r.Handle("/user", auth(http.HandlerFunc(h.deleteUser))).Methods(http.MethodDelete)
	r.Handle("/user/logout", auth(http.HandlerFunc(h.logout))).Methods(http.MethodPost)

	return logMiddleware(r)
}
