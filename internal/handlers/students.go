package handlers

import (
	"errors"
	"strconv"
	"time"

	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/bubtcse/retakewizard/internal/app"
	"github.com/bubtcse/retakewizard/internal/metrics"
	"github.com/bubtcse/retakewizard/internal/models"
)

type StudentHandler struct {
	service *app.Service
}

func NewStudentHandler(service *app.Service) *StudentHandler {
	return &StudentHandler{
		service: service,
	}
}

func (h *StudentHandler) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	// Degrades to an empty list on a store fault, the form stays usable.
	courses := h.service.ListCourses(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"courses": courses,
	})
}

func (h *StudentHandler) HandleSearchStudent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Invalid student id", http.StatusBadRequest)
		return
	}

	sub := h.service.SearchStudent(r.Context(), id)
	if sub == nil {
		http.Error(w, "Submission not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"student": sub,
	})
}

func (h *StudentHandler) HandleSaveStudent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := "200"
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			status,
		).Observe(time.Since(start).Seconds())
	}()

	var input models.StudentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		status = "400"
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	sub, err := h.service.SaveStudent(r.Context(), input)
	if errors.Is(err, app.ErrValidation) {
		status = "400"
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sub == nil {
		status = "500"
		http.Error(w, "Failed to save submission", http.StatusInternalServerError)
		return
	}

	metrics.SubmissionsTotal.WithLabelValues(strconv.Itoa(sub.Intake)).Inc()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"student": sub,
	})
}

func (h *StudentHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(time.Since(start).Seconds())
	}()

	// The capability, not the client, decides whether phones show up.
	access := h.service.Auth.Grant(app.TokenFromRequest(r))
	report := h.service.CourseRankings(r.Context(), access)

	metrics.RankingRequestsTotal.WithLabelValues(
		strconv.FormatBool(access.PhoneVisible()),
	).Inc()

	writeJSON(w, http.StatusOK, report)
}

func (h *StudentHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, ok := h.service.Auth.Authenticate(body.Password)
	if !ok {
		logger.Debug.Println("Rejected staff login attempt")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, app.SessionCookie(token))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
	})
}

func (h *StudentHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": h.service.Auth.Verify(app.TokenFromRequest(r)),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
	}
}
