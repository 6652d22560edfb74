package handlers

import (
	"encoding/json"
	"net/http"

	"socialhub/internal/models"
	"socialhub/internal/repository"
)

type SignupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"omitempty,oneof=admin hr user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	serviceReq := repository.CreateUserRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	}

	if _, err := h.Services.Auth.Signup(r.Context(), serviceReq); err != nil {
		h.handleError(w, err)
		return
	}

	// сразу логиним, чтобы отдать токены одной операцией
	user, accessToken, refreshToken, err := h.Services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.setAuthCookies(w, accessToken, refreshToken)
	WriteSuccess(w, http.StatusCreated, "Пользователь успешно зарегистрирован", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	user, accessToken, refreshToken, err := h.Services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.setAuthCookies(w, accessToken, refreshToken)
	WriteSuccess(w, http.StatusOK, "Успешный вход", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""

	// токен берём из cookie, тело запроса - запасной вариант
	if cookie, err := r.Cookie("refreshToken"); err == nil {
		refreshToken = cookie.Value
	} else {
		var req struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	if refreshToken == "" {
		WriteError(w, "Отсутствует refreshToken", http.StatusBadRequest)
		return
	}

	user, accessToken, newRefreshToken, err := h.Services.Auth.RefreshTokens(r.Context(), refreshToken)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.setAuthCookies(w, accessToken, newRefreshToken)
	WriteSuccess(w, http.StatusOK, "Токены обновлены", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	})
}

// токены уходят клиенту httpOnly-cookie; Secure включается вне development
func (h *Handlers) setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	secure := h.Cfg.Env == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.Cfg.AccessTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refreshToken",
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.Cfg.RefreshTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
