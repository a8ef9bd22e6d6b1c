package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/service"
	"github.com/Hawkpraveen/Survey-BE/internal/transport/rest/middleware"
)

// AnswerHandler handles answer submission
type AnswerHandler struct {
	answerSvc *service.AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerSvc *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc}
}

// SubmitRequest is the request body for submitting answers
type SubmitRequest struct {
	Answers []model.AnswerEntry `json:"answers"`
}

// Submit handles POST /api/surveys/{surveyId}/answers
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.answerSvc.Submit(r.Context(), surveyID, middleware.GetUserID(r.Context()), req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Answers submitted successfully",
		"answer":  receipt,
	})
}
