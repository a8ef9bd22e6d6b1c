package cache

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hawkpraveen/Survey-BE/internal/model"
)

// MemoryReportCache is an in-process ReportCache used by tests.
type MemoryReportCache struct {
	mu         sync.Mutex
	histograms map[primitive.ObjectID][]model.RatingHistogram
	rollups    map[primitive.ObjectID]*model.RatingRollup

	Invalidations int
}

func NewMemoryReportCache() *MemoryReportCache {
	return &MemoryReportCache{
		histograms: make(map[primitive.ObjectID][]model.RatingHistogram),
		rollups:    make(map[primitive.ObjectID]*model.RatingRollup),
	}
}

func (c *MemoryReportCache) GetHistogram(ctx context.Context, surveyID primitive.ObjectID) ([]model.RatingHistogram, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.histograms[surveyID], nil
}

func (c *MemoryReportCache) SetHistogram(ctx context.Context, surveyID primitive.ObjectID, data []model.RatingHistogram) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.histograms[surveyID] = data
	return nil
}

func (c *MemoryReportCache) GetRollup(ctx context.Context, surveyID primitive.ObjectID) (*model.RatingRollup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rollups[surveyID], nil
}

func (c *MemoryReportCache) SetRollup(ctx context.Context, surveyID primitive.ObjectID, data *model.RatingRollup) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollups[surveyID] = data
	return nil
}

func (c *MemoryReportCache) Invalidate(ctx context.Context, surveyID primitive.ObjectID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.histograms, surveyID)
	delete(c.rollups, surveyID)
	c.Invalidations++
	return nil
}
