package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RespondentAnswer is one respondent's value for a question, keyed by
// display name.
type RespondentAnswer struct {
	User   string      `json:"user"`
	Answer AnswerValue `json:"answer"`
}

// QuestionAnswers lists every submitted value for one question, in answer
// retrieval order. Respondents who skipped the question are omitted.
type QuestionAnswers struct {
	Question  string             `json:"question"`
	Type      QuestionType       `json:"type"`
	Options   []string           `json:"options,omitempty"`
	MaxRating int                `json:"maxRating,omitempty"`
	Answers   []RespondentAnswer `json:"answers"`
}

// RatingHistogram buckets the submitted ratings of one rating question from
// 1 to its maxRating.
type RatingHistogram struct {
	Question string      `json:"question"`
	Ratings  map[int]int `json:"ratings"`
}

// QuestionRollup accumulates submitted rating values against the attainable
// maximum for one question.
type QuestionRollup struct {
	Question     string  `json:"question"`
	TotalRatings float64 `json:"totalRatings"`
	MaxRatings   int     `json:"maxRatings"`
}

// RatingRollup is the per-question and overall total/max rating summary of a
// survey.
type RatingRollup struct {
	Questions           []QuestionRollup `json:"questions"`
	OverallTotalRatings float64          `json:"overallTotalRatings"`
	OverallMaxRatings   int              `json:"overallMaxRatings"`
}

// RespondentRollup sums one respondent's numeric answers against the
// maxRating of the questions they answered.
type RespondentRollup struct {
	UserID         primitive.ObjectID `json:"userId"`
	UserName       string             `json:"userName"`
	TotalRating    float64            `json:"totalRating"`
	TotalMaxRating int                `json:"totalMaxRating"`
}

// AnsweredEntry is a submitted answer joined with the maxRating of the
// question it references.
type AnsweredEntry struct {
	QuestionID primitive.ObjectID `json:"questionId"`
	Answer     AnswerValue        `json:"answer"`
	MaxRating  int                `json:"maxRating,omitempty"`
}

// AnsweredSurvey summarizes one survey a user has responded to.
type AnsweredSurvey struct {
	SurveyID    primitive.ObjectID `json:"surveyId"`
	Title       string             `json:"surveyTitle"`
	Description string             `json:"surveyDescription"`
	SubmittedAt time.Time          `json:"submittedAt"`
	Answers     []AnsweredEntry    `json:"answers"`
}
