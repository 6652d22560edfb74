package handlers

import "net/http"

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, "socialhub API", nil)
}

// Health отвечает состоянием сервиса и соединения с БД
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"service":  "ok",
		"database": "ok",
	}

	if h.DB == nil || h.DB.HealthCheck() != nil {
		status["database"] = "unavailable"
		writeJSON(w, http.StatusServiceUnavailable, Envelope{
			InternalStatusCode: http.StatusServiceUnavailable,
			Message:            "Сервис недоступен",
			Data:               status,
		})
		return
	}

	WriteSuccess(w, http.StatusOK, "Сервис работает", status)
}
