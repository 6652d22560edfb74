package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"socialhub/internal/repository"
)

type CreateNominationBody struct {
	NominationType         string    `json:"nominationType" validate:"required,oneof=BestEmployee BestTeam"`
	Description            string    `json:"description"`
	LastNominationDay      time.Time `json:"lastNominationDay" validate:"required"`
	WinnerAnnouncementDate time.Time `json:"winnerAnnouncementDate" validate:"required"`
}

type VoteBody struct {
	NominatedUserID string `json:"nominatedUserId" validate:"required"`
	NominationID    string `json:"nominationId" validate:"required"`
}

func (h *Handlers) GetNominations(w http.ResponseWriter, r *http.Request) {
	nominations, err := h.Services.Nomination.GetNominations(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Номинации получены", nominations)
}

// CreateNomination доступен только администратору (роль проверяет middleware)
func (h *Handlers) CreateNomination(w http.ResponseWriter, r *http.Request) {
	var req CreateNominationBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	nomination, err := h.Services.Nomination.CreateNomination(r.Context(), repository.CreateNominationRequest{
		NominationType:         req.NominationType,
		Description:            req.Description,
		LastNominationDay:      req.LastNominationDay,
		WinnerAnnouncementDate: req.WinnerAnnouncementDate,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Номинация успешно создана", nomination)
}

func (h *Handlers) Vote(w http.ResponseWriter, r *http.Request) {
	userID := contextUserID(r)
	if userID == "" {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req VoteBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		h.validationError(w, err)
		return
	}

	vote, err := h.Services.Nomination.Vote(r.Context(), repository.VoteRequest{
		UserID:          userID,
		NominatedUserID: req.NominatedUserID,
		NominationID:    req.NominationID,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, "Голос учтен", vote)
}

func (h *Handlers) TopNominatedUser(w http.ResponseWriter, r *http.Request) {
	top, err := h.Services.Nomination.TopNominatedUser(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, "Лидер голосования получен", top)
}
