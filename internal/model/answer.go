package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerEntry is one respondent's value for one question of the survey.
type AnswerEntry struct {
	QuestionID primitive.ObjectID `json:"questionId" bson:"questionId"`
	Answer     AnswerValue        `json:"answer" bson:"answer"`
}

// Answer is one respondent's complete set of responses to one survey.
// At most one exists per (survey, user) pair, backed by a unique index.
type Answer struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Survey      primitive.ObjectID `json:"survey" bson:"survey"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Answers     []AnswerEntry      `json:"answers" bson:"answers"`
	SubmittedAt time.Time          `json:"submittedAt" bson:"submittedAt"`
}

// EntryFor returns the entry referencing the given question, if any.
func (a *Answer) EntryFor(questionID primitive.ObjectID) (*AnswerEntry, bool) {
	for i := range a.Answers {
		if a.Answers[i].QuestionID == questionID {
			return &a.Answers[i], true
		}
	}
	return nil, false
}

// SubmissionReceipt is returned to the caller after a successful submission.
type SubmissionReceipt struct {
	ID          primitive.ObjectID `json:"id"`
	SurveyID    primitive.ObjectID `json:"surveyId"`
	SubmittedAt time.Time          `json:"submittedAt"`
}
