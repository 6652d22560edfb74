package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialhub/internal/repository"
)

type CreateUserBody struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	Role           string `json:"role" validate:"omitempty,oneof=admin hr user"`
	ProfilePicture string `json:"profilePicture"`
}

type UpdateUserBody struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required,oneof=admin hr user"`
	ProfilePicture string `json:"profilePicture"`
}

type PatchUserBody struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Role           *string `json:"role" validate:"omitempty,oneof=admin hr user"`
	ProfilePicture *string `json:"profilePicture"`
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Services.User.GetUsers(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пользователи получены", users)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.Services.User.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пользователь получен", user)
}

func (h *Handlers) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.Services.User.GetUserByEmail(r.Context(), email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пользователь получен", user)
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	user, err := h.Services.User.CreateUser(r.Context(), repository.CreateUserRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Пользователь успешно создан", user)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var req UpdateUserBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	user, err := h.Services.User.UpdateUser(r.Context(), repository.UpdateUserRequest{
		UserID:         userID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пользователь успешно обновлен", user)
}

func (h *Handlers) PatchUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	var req PatchUserBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	user, err := h.Services.User.PatchUser(r.Context(), repository.PatchUserRequest{
		UserID:         userID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пользователь успешно обновлен", user)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	if err := h.Services.User.DeleteUser(r.Context(), userID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Пользователь успешно удален", nil)
}

func (h *Handlers) GetUserMentions(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	mentions, err := h.Services.User.GetUserMentions(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Упоминания пользователя получены", mentions)
}
