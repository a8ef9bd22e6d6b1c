package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/cache"
	"github.com/Hawkpraveen/Survey-BE/internal/log"
	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/repository"
)

// AnswerService guards answer submission: it validates entries against the
// survey's question set and enforces one submission per user per survey.
type AnswerService struct {
	answers repository.AnswerRepo
	surveys repository.SurveyRepo
	reports cache.ReportCache
}

// NewAnswerService creates a new answer service
func NewAnswerService(answers repository.AnswerRepo, surveys repository.SurveyRepo, reports cache.ReportCache) *AnswerService {
	return &AnswerService{
		answers: answers,
		surveys: surveys,
		reports: reports,
	}
}

// Submit persists a user's answer set for a survey. Every entry must
// reference a question of the survey and carry a value matching the declared
// question type. A second submission for the same (survey, user) pair fails
// with ErrAlreadySubmitted; the unique index catches concurrent submitters
// that pass the existence check together.
func (s *AnswerService) Submit(ctx context.Context, surveyID, userID primitive.ObjectID, entries []model.AnswerEntry) (*model.SubmissionReceipt, error) {
	survey, err := s.surveys.GetByID(ctx, surveyID)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}

	if len(entries) == 0 {
		return nil, invalidInput("answers must be a non-empty array")
	}
	for i, entry := range entries {
		question, ok := survey.QuestionByID(entry.QuestionID)
		if !ok {
			return nil, invalidInput("answer %d references unknown question %s", i+1, entry.QuestionID.Hex())
		}
		if !entry.Answer.MatchesQuestionType(question.Type) {
			return nil, invalidInput("answer %d does not match question type %q", i+1, question.Type)
		}
	}

	existing, err := s.answers.GetBySurveyAndUser(ctx, surveyID, userID)
	if err != nil {
		return nil, fmt.Errorf("check prior submission: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadySubmitted
	}

	answer := &model.Answer{
		Survey:      surveyID,
		User:        userID,
		Answers:     entries,
		SubmittedAt: time.Now(),
	}
	if _, err := s.answers.Create(ctx, answer); err != nil {
		if err == repository.ErrDuplicate {
			return nil, ErrAlreadySubmitted
		}
		return nil, fmt.Errorf("store answers: %w", err)
	}

	if s.reports != nil {
		if err := s.reports.Invalidate(ctx, surveyID); err != nil {
			log.Warnf("invalidate report cache for survey %s: %v", surveyID.Hex(), err)
		}
	}

	return &model.SubmissionReceipt{
		ID:          answer.ID,
		SurveyID:    answer.Survey,
		SubmittedAt: answer.SubmittedAt,
	}, nil
}
