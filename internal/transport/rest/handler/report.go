package handler

import (
	"net/http"

	"github.com/Hawkpraveen/Survey-BE/internal/service"
	"github.com/Hawkpraveen/Survey-BE/internal/transport/rest/middleware"
)

// ReportHandler handles the aggregated answer views of a survey
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Listing handles GET /api/surveys/{surveyId}/answers
func (h *ReportHandler) Listing(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	listing, err := h.reportSvc.AnswerListing(r.Context(), surveyID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// Histogram handles GET /api/surveys/{surveyId}/ratings/histogram
func (h *ReportHandler) Histogram(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	histograms, err := h.reportSvc.RatingHistogram(r.Context(), surveyID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, histograms)
}

// Rollup handles GET /api/surveys/{surveyId}/ratings/rollup
func (h *ReportHandler) Rollup(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	rollup, err := h.reportSvc.RatingRollup(r.Context(), surveyID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rollup)
}

// Respondents handles GET /api/surveys/{surveyId}/ratings/respondents
func (h *ReportHandler) Respondents(w http.ResponseWriter, r *http.Request) {
	surveyID, ok := surveyIDFromRequest(w, r)
	if !ok {
		return
	}

	rollups, err := h.reportSvc.RespondentRollup(r.Context(), surveyID, middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rollups)
}
