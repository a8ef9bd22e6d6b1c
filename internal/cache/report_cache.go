package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/model"
)

// ReportCache memoizes the rating views of a survey. Entries are invalidated
// whenever a new answer set is accepted for the survey.
type ReportCache interface {
	GetHistogram(ctx context.Context, surveyID primitive.ObjectID) ([]model.RatingHistogram, error)
	SetHistogram(ctx context.Context, surveyID primitive.ObjectID, data []model.RatingHistogram) error
	GetRollup(ctx context.Context, surveyID primitive.ObjectID) (*model.RatingRollup, error)
	SetRollup(ctx context.Context, surveyID primitive.ObjectID, data *model.RatingRollup) error
	Invalidate(ctx context.Context, surveyID primitive.ObjectID) error
}

type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new Redis-backed report cache
func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
		ttl:    10 * time.Minute,
	}
}

func (c *reportCache) histogramKey(surveyID primitive.ObjectID) string {
	return fmt.Sprintf("survey:%s:histogram", surveyID.Hex())
}

func (c *reportCache) rollupKey(surveyID primitive.ObjectID) string {
	return fmt.Sprintf("survey:%s:rollup", surveyID.Hex())
}

func (c *reportCache) GetHistogram(ctx context.Context, surveyID primitive.ObjectID) ([]model.RatingHistogram, error) {
	data, err := c.client.Get(ctx, c.histogramKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var histograms []model.RatingHistogram
	if err := json.Unmarshal([]byte(data), &histograms); err != nil {
		return nil, err
	}
	return histograms, nil
}

func (c *reportCache) SetHistogram(ctx context.Context, surveyID primitive.ObjectID, histograms []model.RatingHistogram) error {
	data, err := json.Marshal(histograms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.histogramKey(surveyID), data, c.ttl).Err()
}

func (c *reportCache) GetRollup(ctx context.Context, surveyID primitive.ObjectID) (*model.RatingRollup, error) {
	data, err := c.client.Get(ctx, c.rollupKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rollup model.RatingRollup
	if err := json.Unmarshal([]byte(data), &rollup); err != nil {
		return nil, err
	}
	return &rollup, nil
}

func (c *reportCache) SetRollup(ctx context.Context, surveyID primitive.ObjectID, rollup *model.RatingRollup) error {
	data, err := json.Marshal(rollup)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.rollupKey(surveyID), data, c.ttl).Err()
}

func (c *reportCache) Invalidate(ctx context.Context, surveyID primitive.ObjectID) error {
	return c.client.Del(ctx, c.histogramKey(surveyID), c.rollupKey(surveyID)).Err()
}
