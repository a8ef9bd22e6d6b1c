package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/cache"
	"github.com/Hawkpraveen/Survey-BE/internal/log"
	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/repository"
)

// ReportService produces the aggregated views over a survey's answers.
// All views are owner-only reads; a survey with no answers yields empty or
// zeroed structures, never an error.
type ReportService struct {
	surveys repository.SurveyRepo
	answers repository.AnswerRepo
	users   repository.UserRepo
	reports cache.ReportCache
}

// NewReportService creates a new report service
func NewReportService(surveys repository.SurveyRepo, answers repository.AnswerRepo, users repository.UserRepo, reports cache.ReportCache) *ReportService {
	return &ReportService{
		surveys: surveys,
		answers: answers,
		users:   users,
		reports: reports,
	}
}

// AnswerListing returns the per-question answer listing of a survey.
func (s *ReportService) AnswerListing(ctx context.Context, surveyID, callerID primitive.ObjectID) ([]model.QuestionAnswers, error) {
	survey, answers, err := s.load(ctx, surveyID, callerID)
	if err != nil {
		return nil, err
	}
	names, err := s.respondentNames(ctx, answers)
	if err != nil {
		return nil, err
	}
	return BuildAnswerListing(survey, answers, names), nil
}

// RatingHistogram returns the per-question rating histogram of a survey.
func (s *ReportService) RatingHistogram(ctx context.Context, surveyID, callerID primitive.ObjectID) ([]model.RatingHistogram, error) {
	survey, answers, err := s.load(ctx, surveyID, callerID)
	if err != nil {
		return nil, err
	}

	if s.reports != nil {
		cached, err := s.reports.GetHistogram(ctx, surveyID)
		if err != nil {
			log.Warnf("read histogram cache for survey %s: %v", surveyID.Hex(), err)
		} else if cached != nil {
			return cached, nil
		}
	}

	histograms := BuildRatingHistogram(survey, answers)

	if s.reports != nil {
		if err := s.reports.SetHistogram(ctx, surveyID, histograms); err != nil {
			log.Warnf("write histogram cache for survey %s: %v", surveyID.Hex(), err)
		}
	}
	return histograms, nil
}

// RatingRollup returns the per-question and overall total/max rating summary.
func (s *ReportService) RatingRollup(ctx context.Context, surveyID, callerID primitive.ObjectID) (*model.RatingRollup, error) {
	survey, answers, err := s.load(ctx, surveyID, callerID)
	if err != nil {
		return nil, err
	}

	if s.reports != nil {
		cached, err := s.reports.GetRollup(ctx, surveyID)
		if err != nil {
			log.Warnf("read rollup cache for survey %s: %v", surveyID.Hex(), err)
		} else if cached != nil {
			return cached, nil
		}
	}

	rollup := BuildRatingRollup(survey, answers)

	if s.reports != nil {
		if err := s.reports.SetRollup(ctx, surveyID, rollup); err != nil {
			log.Warnf("write rollup cache for survey %s: %v", surveyID.Hex(), err)
		}
	}
	return rollup, nil
}

// RespondentRollup returns one total/max rating row per distinct respondent.
func (s *ReportService) RespondentRollup(ctx context.Context, surveyID, callerID primitive.ObjectID) ([]model.RespondentRollup, error) {
	survey, answers, err := s.load(ctx, surveyID, callerID)
	if err != nil {
		return nil, err
	}
	names, err := s.respondentNames(ctx, answers)
	if err != nil {
		return nil, err
	}
	return BuildRespondentRollup(survey, answers, names), nil
}

// load fetches the survey and its answers, enforcing ownership.
func (s *ReportService) load(ctx context.Context, surveyID, callerID primitive.ObjectID) (*model.Survey, []*model.Answer, error) {
	survey, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		return nil, nil, fmt.Errorf("get survey: %w", err)
	}
	if survey == nil {
		return nil, nil, ErrSurveyNotFound
	}
	if survey.User != callerID {
		return nil, nil, ErrForbidden
	}

	answers, err := s.answers.GetBySurveyID(ctx, surveyID)
	if err != nil {
		return nil, nil, fmt.Errorf("get answers: %w", err)
	}
	return survey, answers, nil
}

func (s *ReportService) respondentNames(ctx context.Context, answers []*model.Answer) (map[primitive.ObjectID]string, error) {
	seen := make(map[primitive.ObjectID]bool, len(answers))
	ids := make([]primitive.ObjectID, 0, len(answers))
	for _, answer := range answers {
		if !seen[answer.User] {
			seen[answer.User] = true
			ids = append(ids, answer.User)
		}
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get respondents: %w", err)
	}

	names := make(map[primitive.ObjectID]string, len(users))
	for id, user := range users {
		names[id] = user.Name
	}
	return names, nil
}
