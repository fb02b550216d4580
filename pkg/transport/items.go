package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
)

type createItemRequest struct {
	ServiceName string   `json:"serviceName"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
}

type updateItemRequest struct {
	ServiceName *string  `json:"serviceName"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	switch {
	case req.ServiceName == "":
		writeBadRequest(w, "serviceName is required")
		return
	case req.Name == "":
		writeBadRequest(w, "name is required")
		return
	case req.Price == nil:
		writeBadRequest(w, "price is required")
		return
	}

	item, err := h.items.CreateItem(r.Context(), service.CreateItemInput{
		ServiceName: req.ServiceName,
		Name:        req.Name,
		Price:       *req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getAllItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.GetAllItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItemsByService(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.GetItemsByService(r.Context(), mux.Vars(r)["serviceName"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItemByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetItemByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	item, err := h.items.UpdateItem(r.Context(), mux.Vars(r)["id"], model.ItemPatch{
		ServiceName: req.ServiceName,
		Name:        req.Name,
		Price:       req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.items.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Item deleted successfully")
}
