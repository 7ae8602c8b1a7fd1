package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"teamsort/internal/engine"
	"teamsort/internal/model"
	"teamsort/internal/service"

	"github.com/gorilla/mux"
)

// InterviewHandler handles interview endpoints
type InterviewHandler struct {
	interviewSvc *service.InterviewService
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviewSvc *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewSvc: interviewSvc}
}

// Start handles POST /v1/sessions
func (h *InterviewHandler) Start(w http.ResponseWriter, r *http.Request) {
	resp, err := h.interviewSvc.Start(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// SubmitAnswer handles POST /v1/sessions/{sessionId}/answers
func (h *InterviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req model.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.interviewSvc.SubmitAnswer(r.Context(), sessionID, req.Answer)
	switch {
	case errors.Is(err, model.ErrInvalidAnswer):
		writeError(w, http.StatusBadRequest, "invalid answer")
	case errors.Is(err, service.ErrUnknownSession):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, engine.ErrSessionEnded):
		writeError(w, http.StatusConflict, "session already ended")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
