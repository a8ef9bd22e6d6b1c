package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/service"
	"github.com/Hawkpraveen/Survey-BE/internal/transport/rest/middleware"
)

// SurveyHandler handles survey CRUD endpoints
type SurveyHandler struct {
	surveySvc *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveySvc *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveySvc: surveySvc}
}

// SurveyRequest is the request body for creating or updating a survey
type SurveyRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Questions   []model.Question `json:"questions"`
}

// Create handles POST /api/surveys
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey, err := h.surveySvc.Create(r.Context(), middleware.GetUserID(r.Context()), req.Title, req.Description, req.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Survey created successfully",
		"survey":  survey,
	})
}

// List handles GET /api/surveys
func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveySvc.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, surveys)
}

// Get handles GET /api/surveys/{surveyId}
func (h *SurveyHandler) Get(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	survey, err := h.surveySvc.GetByID(r.Context(), surveyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, survey)
}

// Mine handles GET /api/surveys/mine
func (h *SurveyHandler) Mine(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveySvc.GetByOwner(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"surveys": surveys})
}

// Answered handles GET /api/surveys/answered
func (h *SurveyHandler) Answered(w http.ResponseWriter, r *http.Request) {
	answered, err := h.surveySvc.AnsweredByUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answered)
}

// Update handles PUT /api/surveys/{surveyId}
func (h *SurveyHandler) Update(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	var req SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	survey, err := h.surveySvc.Update(r.Context(), surveyID, middleware.GetUserID(r.Context()), req.Title, req.Description, req.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Survey updated successfully",
		"survey":  survey,
	})
}

// Delete handles DELETE /api/surveys/{surveyId}
func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.surveySvc.Delete(r.Context(), surveyID, middleware.GetUserID(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func surveyIDFromRequest(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	surveyID, err := primitive.ObjectIDFromHex(mux.Vars(r)["surveyId"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid survey id")
		return primitive.NilObjectID, false
	}
	return surveyID, true
}
