package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hawkpraveen/Survey-BE/internal/log"
	"github.com/Hawkpraveen/Survey-BE/internal/model"
)

// AnswerRepo handles MongoDB operations for submitted answer sets
type AnswerRepo interface {
	Create(ctx context.Context, answer *model.Answer) (primitive.ObjectID, error)
	GetBySurveyID(ctx context.Context, surveyID primitive.ObjectID) ([]*model.Answer, error)
	GetBySurveyAndUser(ctx context.Context, surveyID, userID primitive.ObjectID) (*model.Answer, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Answer, error)
	DeleteBySurveyID(ctx context.Context, surveyID primitive.ObjectID) error
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository and ensures the unique
// (survey, user) index that enforces one submission per user per survey.
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	repo := &answerRepo{
		collection: db.Collection("answers"),
	}
	repo.ensureIndexes(context.Background())
	return repo
}

func (r *answerRepo) ensureIndexes(ctx context.Context) {
	keys := bson.D{
		{Key: "survey", Value: 1},
		{Key: "user", Value: 1},
	}
	opts := options.Index().SetUnique(true)
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts})
	if err != nil {
		log.Warnf("failed to create index on %s: %v", r.collection.Name(), err)
	}
}

func (r *answerRepo) Create(ctx context.Context, answer *model.Answer) (primitive.ObjectID, error) {
	if answer.SubmittedAt.IsZero() {
		answer.SubmittedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, answer)
	if mongo.IsDuplicateKeyError(err) {
		return primitive.NilObjectID, ErrDuplicate
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	oid, _ := result.InsertedID.(primitive.ObjectID)
	answer.ID = oid
	return oid, nil
}

func (r *answerRepo) GetBySurveyID(ctx context.Context, surveyID primitive.ObjectID) ([]*model.Answer, error) {
	return r.find(ctx, bson.M{"survey": surveyID})
}

func (r *answerRepo) GetBySurveyAndUser(ctx context.Context, surveyID, userID primitive.ObjectID) (*model.Answer, error) {
	var answer model.Answer
	err := r.collection.FindOne(ctx, bson.M{"survey": surveyID, "user": userID}).Decode(&answer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *answerRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Answer, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *answerRepo) DeleteBySurveyID(ctx context.Context, surveyID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"survey": surveyID})
	return err
}

func (r *answerRepo) find(ctx context.Context, filter bson.M) ([]*model.Answer, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	answers := []*model.Answer{}
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
