package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/cache"
	"github.com/Hawkpraveen/Survey-BE/internal/model"
	"github.com/Hawkpraveen/Survey-BE/internal/repository"
)

type reportFixture struct {
	svc     *ReportService
	users   *repository.MemoryUserRepo
	surveys *repository.MemorySurveyRepo
	answers *repository.MemoryAnswerRepo
	reports *cache.MemoryReportCache
	owner   primitive.ObjectID
	survey  *model.Survey
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	users := repository.NewMemoryUserRepo()
	surveys := repository.NewMemorySurveyRepo()
	answers := repository.NewMemoryAnswerRepo()
	reports := cache.NewMemoryReportCache()

	owner := primitive.NewObjectID()
	survey := &model.Survey{
		Title: "Feedback",
		User:  owner,
		Questions: []model.Question{
			{ID: primitive.NewObjectID(), Question: "Rate us", Type: model.QuestionRating, MaxRating: 5},
		},
	}
	_, err := surveys.Create(context.Background(), survey)
	require.NoError(t, err)

	return &reportFixture{
		svc:     NewReportService(surveys, answers, users, reports),
		users:   users,
		surveys: surveys,
		answers: answers,
		reports: reports,
		owner:   owner,
		survey:  survey,
	}
}

func (f *reportFixture) addRespondent(t *testing.T, name string, rating float64) primitive.ObjectID {
	t.Helper()

	user := &model.User{Name: name, Email: name + "@example.com", Password: "x"}
	id, err := f.users.Create(context.Background(), user)
	require.NoError(t, err)

	_, err = f.answers.Create(context.Background(), &model.Answer{
		Survey: f.survey.ID,
		User:   id,
		Answers: []model.AnswerEntry{
			{QuestionID: f.survey.Questions[0].ID, Answer: model.NumberValue(rating)},
		},
	})
	require.NoError(t, err)
	return id
}

func TestReportsForbiddenForNonOwner(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	stranger := primitive.NewObjectID()

	_, err := f.svc.AnswerListing(ctx, f.survey.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.svc.RatingHistogram(ctx, f.survey.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.svc.RatingRollup(ctx, f.survey.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.svc.RespondentRollup(ctx, f.survey.ID, stranger)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestReportsSurveyNotFound(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.svc.RatingHistogram(context.Background(), primitive.NewObjectID(), f.owner)
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestReportsWithNoAnswers(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	listing, err := f.svc.AnswerListing(ctx, f.survey.ID, f.owner)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Empty(t, listing[0].Answers)

	histograms, err := f.svc.RatingHistogram(ctx, f.survey.ID, f.owner)
	require.NoError(t, err)
	require.Len(t, histograms, 1)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, histograms[0].Ratings)

	rollup, err := f.svc.RatingRollup(ctx, f.survey.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rollup.OverallTotalRatings)
	assert.Equal(t, 0, rollup.OverallMaxRatings)

	respondents, err := f.svc.RespondentRollup(ctx, f.survey.ID, f.owner)
	require.NoError(t, err)
	assert.Empty(t, respondents)
}

func TestAnswerListingJoinsRespondentNames(t *testing.T) {
	f := newReportFixture(t)
	f.addRespondent(t, "Alice", 4)
	f.addRespondent(t, "Bob", 2)

	listing, err := f.svc.AnswerListing(context.Background(), f.survey.ID, f.owner)
	require.NoError(t, err)
	require.Len(t, listing, 1)
	require.Len(t, listing[0].Answers, 2)

	names := []string{listing[0].Answers[0].User, listing[0].Answers[1].User}
	assert.ElementsMatch(t, []string{"Alice", "Bob"}, names)
}

func TestRatingHistogramServedFromCache(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	f.addRespondent(t, "Alice", 4)

	first, err := f.svc.RatingHistogram(ctx, f.survey.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 1, first[0].Ratings[4])

	// later answers are invisible until the cache entry is dropped
	f.addRespondent(t, "Bob", 4)
	second, err := f.svc.RatingHistogram(ctx, f.survey.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 1, second[0].Ratings[4])

	require.NoError(t, f.reports.Invalidate(ctx, f.survey.ID))
	third, err := f.svc.RatingHistogram(ctx, f.survey.ID, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 2, third[0].Ratings[4])
}

func TestRatingRollupOverallMatchesQuestionSums(t *testing.T) {
	f := newReportFixture(t)
	f.addRespondent(t, "Alice", 4)
	f.addRespondent(t, "Bob", 2)

	rollup, err := f.svc.RatingRollup(context.Background(), f.survey.ID, f.owner)
	require.NoError(t, err)
	require.Len(t, rollup.Questions, 1)
	assert.Equal(t, rollup.Questions[0].TotalRatings, rollup.OverallTotalRatings)
	assert.Equal(t, rollup.Questions[0].MaxRatings, rollup.OverallMaxRatings)
	assert.Equal(t, 6.0, rollup.OverallTotalRatings)
	assert.Equal(t, 10, rollup.OverallMaxRatings)
}

func TestRespondentRollupOneRowPerUser(t *testing.T) {
	f := newReportFixture(t)
	alice := f.addRespondent(t, "Alice", 4)
	bob := f.addRespondent(t, "Bob", 2)

	respondents, err := f.svc.RespondentRollup(context.Background(), f.survey.ID, f.owner)
	require.NoError(t, err)
	require.Len(t, respondents, 2)

	byID := make(map[primitive.ObjectID]model.RespondentRollup, len(respondents))
	for _, r := range respondents {
		byID[r.UserID] = r
	}
	assert.Equal(t, 4.0, byID[alice].TotalRating)
	assert.Equal(t, "Alice", byID[alice].UserName)
	assert.Equal(t, 2.0, byID[bob].TotalRating)
	assert.Equal(t, 5, byID[bob].TotalMaxRating)
}
