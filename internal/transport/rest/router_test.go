package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hawkpraveen/Survey-BE/internal/cache"
	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/repository"
	"github.com/Hawkpraveen/Survey-BE/internal/service"
)

type apiFixture struct {
	server     *httptest.Server
	users      *repository.MemoryUserRepo
	adminToken string
	userToken  string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	users := repository.NewMemoryUserRepo()
	surveys := repository.NewMemorySurveyRepo()
	answers := repository.NewMemoryAnswerRepo()
	reports := cache.NewMemoryReportCache()

	authSvc := service.NewAuthService(users, "test-secret", time.Hour)
	surveySvc := service.NewSurveyService(surveys, answers)
	answerSvc := service.NewAnswerService(answers, surveys, reports)
	reportSvc := service.NewReportService(surveys, answers, users, reports)

	router := NewRouter(&Container{
		AuthService:   authSvc,
		SurveyService: surveySvc,
		AnswerService: answerSvc,
		ReportService: reportSvc,
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	// Registration never grants admin, so the admin account is seeded
	// directly and logged in through the API.
	hash, err := bcrypt.GenerateFromPassword([]byte("adminpw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = users.Create(context.Background(), &model.User{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hash),
		IsAdmin:  true,
	})
	require.NoError(t, err)

	f := &apiFixture{server: server, users: users}

	var login model.AuthResponse
	resp := f.do(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "admin@example.com",
		"password": "adminpw",
	}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	f.adminToken = login.Token

	var registered model.AuthResponse
	resp = f.do(t, http.MethodPost, "/api/users/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "alicepw",
	}, &registered)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	f.userToken = registered.Token

	return f
}

func (f *apiFixture) do(t *testing.T, method, path, token string, body any, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, f.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (f *apiFixture) createSurvey(t *testing.T) *model.Survey {
	t.Helper()

	var created struct {
		Survey *model.Survey `json:"survey"`
	}
	resp := f.do(t, http.MethodPost, "/api/surveys", f.adminToken, map[string]any{
		"title": "Feedback",
		"questions": []map[string]any{
			{"question": "Rate us", "type": "rating", "maxRating": 5},
			{"question": "Any comments?", "type": "long_text"},
		},
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created.Survey)
	return created.Survey
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/health", "", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSurveyLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	survey := f.createSurvey(t)

	// public listing needs no token
	var listed []*model.Survey
	resp := f.do(t, http.MethodGet, "/api/surveys", "", nil, &listed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, listed, 1)
	assert.Equal(t, "Description", listed[0].Description)

	var fetched model.Survey
	resp = f.do(t, http.MethodGet, "/api/surveys/"+survey.ID.Hex(), f.userToken, nil, &fetched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Feedback", fetched.Title)

	var updated struct {
		Survey *model.Survey `json:"survey"`
	}
	resp = f.do(t, http.MethodPut, "/api/surveys/"+survey.ID.Hex(), f.adminToken, map[string]any{
		"title": "Feedback v2",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Feedback v2", updated.Survey.Title)
	assert.Len(t, updated.Survey.Questions, 2)

	var mine struct {
		Surveys []*model.Survey `json:"surveys"`
	}
	resp = f.do(t, http.MethodGet, "/api/surveys/mine", f.adminToken, nil, &mine)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, mine.Surveys, 1)

	resp = f.do(t, http.MethodDelete, "/api/surveys/"+survey.ID.Hex(), f.adminToken, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/surveys/"+survey.ID.Hex(), f.userToken, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodPost, "/api/surveys", f.userToken, map[string]any{"title": "X"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/surveys/mine", f.userToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthRequired(t *testing.T) {
	f := newAPIFixture(t)
	survey := f.createSurvey(t)

	resp := f.do(t, http.MethodGet, "/api/surveys/"+survey.ID.Hex(), "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/surveys/answered", "garbage-token", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSubmitAndReportFlow(t *testing.T) {
	f := newAPIFixture(t)
	survey := f.createSurvey(t)

	submit := func(token string) *http.Response {
		return f.do(t, http.MethodPost, fmt.Sprintf("/api/surveys/%s/answers", survey.ID.Hex()), token, map[string]any{
			"answers": []map[string]any{
				{"questionId": survey.Questions[0].ID.Hex(), "answer": 4},
				{"questionId": survey.Questions[1].ID.Hex(), "answer": "all good"},
			},
		}, nil)
	}

	resp := submit(f.userToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// one submission per user per survey
	resp = submit(f.userToken)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var histograms []model.RatingHistogram
	resp = f.do(t, http.MethodGet, fmt.Sprintf("/api/surveys/%s/ratings/histogram", survey.ID.Hex()), f.adminToken, nil, &histograms)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, histograms, 1)
	assert.Equal(t, 1, histograms[0].Ratings[4])

	var rollup model.RatingRollup
	resp = f.do(t, http.MethodGet, fmt.Sprintf("/api/surveys/%s/ratings/rollup", survey.ID.Hex()), f.adminToken, nil, &rollup)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4.0, rollup.OverallTotalRatings)
	assert.Equal(t, 5, rollup.OverallMaxRatings)

	var listing []model.QuestionAnswers
	resp = f.do(t, http.MethodGet, fmt.Sprintf("/api/surveys/%s/answers", survey.ID.Hex()), f.adminToken, nil, &listing)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, listing, 2)
	require.Len(t, listing[0].Answers, 1)
	assert.Equal(t, "Alice", listing[0].Answers[0].User)

	var respondents []model.RespondentRollup
	resp = f.do(t, http.MethodGet, fmt.Sprintf("/api/surveys/%s/ratings/respondents", survey.ID.Hex()), f.adminToken, nil, &respondents)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, respondents, 1)
	assert.Equal(t, "Alice", respondents[0].UserName)
	assert.Equal(t, 4.0, respondents[0].TotalRating)

	var answered []model.AnsweredSurvey
	resp = f.do(t, http.MethodGet, "/api/surveys/answered", f.userToken, nil, &answered)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, answered, 1)
	assert.Equal(t, survey.ID, answered[0].SurveyID)
	require.Len(t, answered[0].Answers, 2)
	assert.Equal(t, 5, answered[0].Answers[0].MaxRating)
}

func TestSubmitValidation(t *testing.T) {
	f := newAPIFixture(t)
	survey := f.createSurvey(t)
	path := fmt.Sprintf("/api/surveys/%s/answers", survey.ID.Hex())

	resp := f.do(t, http.MethodPost, path, f.userToken, map[string]any{"answers": []any{}}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = f.do(t, http.MethodPost, path, f.userToken, map[string]any{
		"answers": []map[string]any{
			{"questionId": survey.Questions[0].ID.Hex(), "answer": "four"},
		},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReportsForbiddenForNonOwningAdmin(t *testing.T) {
	f := newAPIFixture(t)
	survey := f.createSurvey(t)

	// a second admin who does not own the survey
	hash, err := bcrypt.GenerateFromPassword([]byte("otherpw"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = f.users.Create(context.Background(), &model.User{
		Name:     "Other Admin",
		Email:    "other@example.com",
		Password: string(hash),
		IsAdmin:  true,
	})
	require.NoError(t, err)

	var login model.AuthResponse
	resp := f.do(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "other@example.com",
		"password": "otherpw",
	}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = f.do(t, http.MethodGet, fmt.Sprintf("/api/surveys/%s/ratings/rollup", survey.ID.Hex()), login.Token, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestInvalidSurveyID(t *testing.T) {
	f := newAPIFixture(t)

	resp := f.do(t, http.MethodGet, "/api/surveys/not-a-hex-id", f.userToken, nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
