package transport

import (
	"encoding/json"
	"net/http"

	"github.com/itsmzaid/OLS-Backend/pkg/domain/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	PhoneNo  string `json:"phoneNo"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type updateUserRequest struct {
	Name    *string `json:"name"`
	PhoneNo *string `json:"phoneNo"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	switch {
	case req.Name == "":
		writeBadRequest(w, "name is required")
		return
	case req.Email == "":
		writeBadRequest(w, "email is required")
		return
	case req.Password == "":
		writeBadRequest(w, "password is required")
		return
	case req.PhoneNo == "":
		writeBadRequest(w, "phoneNo is required")
		return
	}

	profile, err := h.users.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		PhoneNo:  req.PhoneNo,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	creds, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creds)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.RefreshToken == "" {
		writeBadRequest(w, "refreshToken is required")
		return
	}

	creds, err := h.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, creds)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.GetProfile(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	profile, err := h.users.UpdateProfile(r.Context(), callerID(r), service.ProfilePatch{
		Name:    req.Name,
		PhoneNo: req.PhoneNo,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteAccount(r.Context(), callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Account deleted successfully")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Logout(r.Context(), callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
