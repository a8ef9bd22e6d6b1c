package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/repository"
)

const defaultDescription = "Description"

// SurveyService handles survey CRUD. Mutations are restricted to the owner.
type SurveyService struct {
	surveys repository.SurveyRepo
	answers repository.AnswerRepo
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveys repository.SurveyRepo, answers repository.AnswerRepo) *SurveyService {
	return &SurveyService{
		surveys: surveys,
		answers: answers,
	}
}

// Create validates and persists a new survey owned by ownerID.
func (s *SurveyService) Create(ctx context.Context, ownerID primitive.ObjectID, title, description string, questions []model.Question) (*model.Survey, error) {
	if title == "" {
		return nil, invalidInput("title is required")
	}
	if description == "" {
		description = defaultDescription
	}
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	survey := &model.Survey{
		Title:       title,
		Description: description,
		Questions:   assignQuestionIDs(questions),
		User:        ownerID,
	}
	if _, err := s.surveys.Create(ctx, survey); err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}
	return survey, nil
}

// GetAll lists every survey.
func (s *SurveyService) GetAll(ctx context.Context) ([]*model.Survey, error) {
	return s.surveys.GetAll(ctx)
}

// GetByID fetches one survey.
func (s *SurveyService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Survey, error) {
	survey, err := s.surveys.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get survey: %w", err)
	}
	if survey == nil {
		return nil, ErrSurveyNotFound
	}
	return survey, nil
}

// GetByOwner lists the surveys owned by the caller.
func (s *SurveyService) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Survey, error) {
	return s.surveys.GetByOwnerID(ctx, ownerID)
}

// Update replaces title, description and questions of an owned survey. Empty
// incoming fields keep the stored value.
func (s *SurveyService) Update(ctx context.Context, id, callerID primitive.ObjectID, title, description string, questions []model.Question) (*model.Survey, error) {
	survey, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey.User != callerID {
		return nil, ErrForbidden
	}

	if title != "" {
		survey.Title = title
	}
	if description != "" {
		survey.Description = description
	}
	if len(questions) > 0 {
		if err := validateQuestions(questions); err != nil {
			return nil, err
		}
		survey.Questions = assignQuestionIDs(questions)
	}

	if err := s.surveys.Update(ctx, survey); err != nil {
		return nil, fmt.Errorf("update survey: %w", err)
	}
	return survey, nil
}

// Delete removes an owned survey together with its answers.
func (s *SurveyService) Delete(ctx context.Context, id, callerID primitive.ObjectID) error {
	survey, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if survey.User != callerID {
		return ErrForbidden
	}

	if err := s.answers.DeleteBySurveyID(ctx, id); err != nil {
		return fmt.Errorf("delete survey answers: %w", err)
	}
	if _, err := s.surveys.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}
	return nil
}

// AnsweredByUser lists the surveys the user has submitted answers for, each
// answer joined with the maxRating of the question it references. Users with
// no submissions get an empty list.
func (s *SurveyService) AnsweredByUser(ctx context.Context, userID primitive.ObjectID) ([]model.AnsweredSurvey, error) {
	submissions, err := s.answers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	answered := []model.AnsweredSurvey{}
	for _, submission := range submissions {
		survey, err := s.surveys.GetByID(ctx, submission.Survey)
		if err != nil {
			return nil, fmt.Errorf("get survey: %w", err)
		}
		if survey == nil {
			// Survey deleted after submission; nothing to join against.
			continue
		}

		maxRatings := make(map[primitive.ObjectID]int, len(survey.Questions))
		for _, q := range survey.Questions {
			maxRatings[q.ID] = q.MaxRating
		}

		entries := make([]model.AnsweredEntry, 0, len(submission.Answers))
		for _, entry := range submission.Answers {
			entries = append(entries, model.AnsweredEntry{
				QuestionID: entry.QuestionID,
				Answer:     entry.Answer,
				MaxRating:  maxRatings[entry.QuestionID],
			})
		}

		answered = append(answered, model.AnsweredSurvey{
			SurveyID:    survey.ID,
			Title:       survey.Title,
			Description: survey.Description,
			SubmittedAt: submission.SubmittedAt,
			Answers:     entries,
		})
	}
	return answered, nil
}

func validateQuestions(questions []model.Question) error {
	for i, q := range questions {
		if q.Question == "" {
			return invalidInput("question %d: text is required", i+1)
		}
		if !q.Type.Valid() {
			return invalidInput("question %d: unknown type %q", i+1, q.Type)
		}
		if q.Type == model.QuestionRating && q.MaxRating < 1 {
			return invalidInput("question %d: maxRating must be a positive integer", i+1)
		}
		if q.Type.HasOptions() && len(q.Options) == 0 {
			return invalidInput("question %d: options are required for type %q", i+1, q.Type)
		}
	}
	return nil
}

// assignQuestionIDs gives fresh ids to questions that arrive without one,
// keeping ids supplied by the caller so existing answers stay linked.
func assignQuestionIDs(questions []model.Question) []model.Question {
	assigned := make([]model.Question, len(questions))
	copy(assigned, questions)
	for i := range assigned {
		if assigned[i].ID.IsZero() {
			assigned[i].ID = primitive.NewObjectID()
		}
	}
	return assigned
}
