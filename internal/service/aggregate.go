package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/model"
)

// Pure aggregation builders. They join a survey's question definitions with
// the answer sets submitted for it and never touch the store, so they can be
// exercised directly in tests. Question order in every output follows the
// survey's question order.

// BuildAnswerListing groups submitted values under each question of the
// survey. An answer set without an entry for a question is omitted from that
// question's list. names maps respondent ids to display names; respondents
// missing from the map fall back to their id.
func BuildAnswerListing(survey *model.Survey, answers []*model.Answer, names map[primitive.ObjectID]string) []model.QuestionAnswers {
	listing := make([]model.QuestionAnswers, 0, len(survey.Questions))
	for _, question := range survey.Questions {
		entries := []model.RespondentAnswer{}
		for _, answer := range answers {
			entry, ok := answer.EntryFor(question.ID)
			if !ok {
				continue
			}
			name, ok := names[answer.User]
			if !ok {
				name = answer.User.Hex()
			}
			entries = append(entries, model.RespondentAnswer{
				User:   name,
				Answer: entry.Answer,
			})
		}
		listing = append(listing, model.QuestionAnswers{
			Question:  question.Question,
			Type:      question.Type,
			Options:   question.Options,
			MaxRating: question.MaxRating,
			Answers:   entries,
		})
	}
	return listing
}

// BuildRatingHistogram buckets submitted values of every rating question
// from 1 to the question's maxRating. Values outside that range are ignored,
// as are non-integer ones. Non-rating questions do not appear in the output.
func BuildRatingHistogram(survey *model.Survey, answers []*model.Answer) []model.RatingHistogram {
	histograms := []model.RatingHistogram{}
	for _, question := range survey.Questions {
		if question.Type != model.QuestionRating {
			continue
		}

		buckets := make(map[int]int, question.MaxRating)
		for i := 1; i <= question.MaxRating; i++ {
			buckets[i] = 0
		}

		for _, answer := range answers {
			entry, ok := answer.EntryFor(question.ID)
			if !ok || !entry.Answer.IsNumeric() {
				continue
			}
			rating := int(entry.Answer.Num)
			if float64(rating) != entry.Answer.Num {
				continue
			}
			if _, ok := buckets[rating]; ok {
				buckets[rating]++
			}
		}

		histograms = append(histograms, model.RatingHistogram{
			Question: question.Question,
			Ratings:  buckets,
		})
	}
	return histograms
}

// BuildRatingRollup sums submitted numeric values and attainable maximums per
// question and overall. Every question appears in the output; maxRatings
// accrues the question's maxRating once per answer set that has an entry for
// it, and non-numeric values contribute nothing to totalRatings.
func BuildRatingRollup(survey *model.Survey, answers []*model.Answer) *model.RatingRollup {
	rollup := &model.RatingRollup{
		Questions: make([]model.QuestionRollup, 0, len(survey.Questions)),
	}
	for _, question := range survey.Questions {
		qr := model.QuestionRollup{Question: question.Question}
		for _, answer := range answers {
			entry, ok := answer.EntryFor(question.ID)
			if !ok {
				continue
			}
			if entry.Answer.IsNumeric() {
				qr.TotalRatings += entry.Answer.Num
			}
			qr.MaxRatings += question.MaxRating
		}
		rollup.Questions = append(rollup.Questions, qr)
		rollup.OverallTotalRatings += qr.TotalRatings
		rollup.OverallMaxRatings += qr.MaxRatings
	}
	return rollup
}

// BuildRespondentRollup produces one row per distinct respondent, summing
// their numeric answers and the maxRating of the questions those answers
// reference. Entries whose value is not numeric are excluded from this view.
func BuildRespondentRollup(survey *model.Survey, answers []*model.Answer, names map[primitive.ObjectID]string) []model.RespondentRollup {
	rollups := []model.RespondentRollup{}
	for _, answer := range answers {
		rr := model.RespondentRollup{UserID: answer.User}
		if name, ok := names[answer.User]; ok {
			rr.UserName = name
		} else {
			rr.UserName = answer.User.Hex()
		}

		for _, entry := range answer.Answers {
			if !entry.Answer.IsNumeric() {
				continue
			}
			question, ok := survey.QuestionByID(entry.QuestionID)
			if !ok {
				continue
			}
			rr.TotalRating += entry.Answer.Num
			rr.TotalMaxRating += question.MaxRating
		}
		rollups = append(rollups, rr)
	}
	return rollups
}
