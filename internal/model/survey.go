package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType is the closed set of answer kinds a question can ask for.
type QuestionType string

const (
	QuestionShortText      QuestionType = "short_text"
	QuestionLongText       QuestionType = "long_text"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionCheckbox       QuestionType = "checkbox"
	QuestionDropdown       QuestionType = "dropdown"
	QuestionRating         QuestionType = "rating"
	QuestionDate           QuestionType = "date"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionShortText, QuestionLongText, QuestionMultipleChoice,
		QuestionCheckbox, QuestionDropdown, QuestionRating, QuestionDate:
		return true
	}
	return false
}

// HasOptions reports whether the type requires a non-empty options list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionMultipleChoice, QuestionCheckbox, QuestionDropdown:
		return true
	}
	return false
}

// Question is one prompt embedded in a survey. Its id is unique within the
// survey and is what answer entries reference.
type Question struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Question  string             `json:"question" bson:"question"`
	Type      QuestionType       `json:"type" bson:"type"`
	Options   []string           `json:"options,omitempty" bson:"options,omitempty"`
	MaxRating int                `json:"maxRating,omitempty" bson:"maxRating,omitempty"`
}

// Survey is a named, ordered collection of questions owned by an admin user.
// Question order is the display and report order.
type Survey struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Questions   []Question         `json:"questions" bson:"questions"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// QuestionByID looks up an embedded question by its id.
func (s *Survey) QuestionByID(id primitive.ObjectID) (*Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i], true
		}
	}
	return nil, false
}
