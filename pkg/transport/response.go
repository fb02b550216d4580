package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/model"
	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("write response")
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusOf(err), errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}

// statusOf maps domain errors onto HTTP status classes. Anything
// unclassified is an upstream failure.
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownService),
		errors.Is(err, model.ErrInvalidOrderStatus):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrInvalidRefreshToken),
		errors.Is(err, model.ErrInvalidBearerToken):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrOrderAccessDenied),
		errors.Is(err, service.ErrMissingUserID):
		return http.StatusForbidden
	case errors.Is(err, model.ErrServiceNotFound),
		errors.Is(err, model.ErrItemNotFound),
		errors.Is(err, model.ErrNoItemsFound),
		errors.Is(err, model.ErrOrderNotFound),
		errors.Is(err, model.ErrNoOrdersFound),
		errors.Is(err, model.ErrNoPendingOrder),
		errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrServiceNameTaken),
		errors.Is(err, model.ErrItemExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
