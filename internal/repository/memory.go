package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Hawkpraveen/Survey-BE/internal/model"
)

// In-memory implementations of the repository interfaces, used by tests.
// They mirror the MongoDB behavior callers depend on: nil results for missing
// documents and ErrDuplicate for unique-index violations.

type MemoryUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *MemoryUserRepo) Create(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, ErrDuplicate
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.ID = primitive.NewObjectID()
	clone := *user
	r.users[user.ID] = &clone
	return user.ID, nil
}

func (r *MemoryUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *MemoryUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepo) GetByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := make(map[primitive.ObjectID]*model.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			clone := *u
			users[id] = &clone
		}
	}
	return users, nil
}

func (r *MemoryUserRepo) RecordLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastLoginAt = at
		u.UpdatedAt = at
	}
	return nil
}

type MemorySurveyRepo struct {
	mu      sync.Mutex
	order   []primitive.ObjectID
	surveys map[primitive.ObjectID]*model.Survey
}

func NewMemorySurveyRepo() *MemorySurveyRepo {
	return &MemorySurveyRepo{surveys: make(map[primitive.ObjectID]*model.Survey)}
}

func (r *MemorySurveyRepo) Create(ctx context.Context, survey *model.Survey) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if survey.CreatedAt.IsZero() {
		survey.CreatedAt = time.Now()
	}
	if survey.ID.IsZero() {
		survey.ID = primitive.NewObjectID()
	}
	clone := *survey
	r.surveys[survey.ID] = &clone
	r.order = append(r.order, survey.ID)
	return survey.ID, nil
}

func (r *MemorySurveyRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.surveys[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *MemorySurveyRepo) GetAll(ctx context.Context) ([]*model.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	surveys := []*model.Survey{}
	for _, id := range r.order {
		if s, ok := r.surveys[id]; ok {
			clone := *s
			surveys = append(surveys, &clone)
		}
	}
	return surveys, nil
}

func (r *MemorySurveyRepo) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Survey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	surveys := []*model.Survey{}
	for _, id := range r.order {
		if s, ok := r.surveys[id]; ok && s.User == ownerID {
			clone := *s
			surveys = append(surveys, &clone)
		}
	}
	return surveys, nil
}

func (r *MemorySurveyRepo) Update(ctx context.Context, survey *model.Survey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.surveys[survey.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	clone := *survey
	r.surveys[survey.ID] = &clone
	return nil
}

func (r *MemorySurveyRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.surveys[id]; !ok {
		return false, nil
	}
	delete(r.surveys, id)
	return true, nil
}

type MemoryAnswerRepo struct {
	mu      sync.Mutex
	answers []*model.Answer
}

func NewMemoryAnswerRepo() *MemoryAnswerRepo {
	return &MemoryAnswerRepo{}
}

func (r *MemoryAnswerRepo) Create(ctx context.Context, answer *model.Answer) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.answers {
		if a.Survey == answer.Survey && a.User == answer.User {
			return primitive.NilObjectID, ErrDuplicate
		}
	}
	if answer.SubmittedAt.IsZero() {
		answer.SubmittedAt = time.Now()
	}
	answer.ID = primitive.NewObjectID()
	clone := *answer
	r.answers = append(r.answers, &clone)
	return answer.ID, nil
}

func (r *MemoryAnswerRepo) GetBySurveyID(ctx context.Context, surveyID primitive.ObjectID) ([]*model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := []*model.Answer{}
	for _, a := range r.answers {
		if a.Survey == surveyID {
			clone := *a
			matches = append(matches, &clone)
		}
	}
	return matches, nil
}

func (r *MemoryAnswerRepo) GetBySurveyAndUser(ctx context.Context, surveyID, userID primitive.ObjectID) (*model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.answers {
		if a.Survey == surveyID && a.User == userID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *MemoryAnswerRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches := []*model.Answer{}
	for _, a := range r.answers {
		if a.User == userID {
			clone := *a
			matches = append(matches, &clone)
		}
	}
	return matches, nil
}

func (r *MemoryAnswerRepo) DeleteBySurveyID(ctx context.Context, surveyID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.answers[:0]
	for _, a := range r.answers {
		if a.Survey != surveyID {
			kept = append(kept, a)
		}
	}
	r.answers = kept
	return nil
}
