package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"socialhub/internal/apperrors"
)

// Envelope - единый формат ответа API
type Envelope struct {
	InternalStatusCode int         `json:"internalStatusCode"`
	Message            string      `json:"message"`
	Data               interface{} `json:"data,omitempty"`
	Errors             []string    `json:"errors,omitempty"`
	Dev                string      `json:"dev,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, envelope Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(envelope)
}

// WriteError - универсальная функция для отправки ошибок, используется и в middleware
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, statusCode, Envelope{
		InternalStatusCode: statusCode,
		Message:            message,
	})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, Envelope{
		InternalStatusCode: statusCode,
		Message:            message,
		Data:               data,
	})
}

// handleError переводит типизированную ошибку приложения в ответ;
// поле dev с исходной ошибкой отдаём только вне production
func (h *Handlers) handleError(w http.ResponseWriter, err error) {
	appErr := apperrors.FromError(err)

	envelope := Envelope{
		InternalStatusCode: appErr.Status,
		Message:            appErr.Message,
		Errors:             appErr.Fields,
	}

	if h.Cfg.Env != "production" && appErr.Err != nil {
		envelope.Dev = appErr.Err.Error()
	}

	if appErr.Status >= http.StatusInternalServerError && h.Log != nil {
		h.Log.Error("Внутренняя ошибка запроса", zap.Error(err))
	}

	writeJSON(w, appErr.Status, envelope)
}

// validationError собирает список сообщений по каждому полю вместо первой попавшейся ошибки
func (h *Handlers) validationError(w http.ResponseWriter, err error) {
	var fields []string

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			fields = append(fields, fmt.Sprintf("поле %s не прошло проверку: %s", fe.Field(), fe.Tag()))
		}
	}

	writeJSON(w, http.StatusBadRequest, Envelope{
		InternalStatusCode: http.StatusBadRequest,
		Message:            "Ошибка валидации",
		Errors:             fields,
	})
}
