package store

import (
	"context"
	"sort"

	"jobboard-backend/internal/database"
	"jobboard-backend/internal/model"
)

// FilterAggregator computes the distinct facet values of non-deleted jobs
type FilterAggregator struct {
	DB *database.DBinstanceStruct
}

// NewFilterAggregator creates a new instance of FilterAggregator
func NewFilterAggregator(db *database.DBinstanceStruct) *FilterAggregator {
	return &FilterAggregator{DB: db}
}

// DistinctPositions returns every position used by a job, ascending
func (f *FilterAggregator) DistinctPositions(ctx context.Context) ([]int, error) {
	positions := []int{}
	if err := f.DB.WithContext(ctx).
		Model(&model.Job{}).
		Distinct().
		Pluck("position", &positions).Error; err != nil {
		return nil, translate(err, "Position", "fetch")
	}
	sort.Ints(positions)
	return positions, nil
}

// DistinctLocations returns every non-empty job location, ascending
func (f *FilterAggregator) DistinctLocations(ctx context.Context) ([]string, error) {
	locations := []string{}
	if err := f.DB.WithContext(ctx).
		Model(&model.Job{}).
		Where("location <> ''").
		Distinct().
		Pluck("location", &locations).Error; err != nil {
		return nil, translate(err, "Location", "fetch")
	}
	sort.Strings(locations)
	return locations, nil
}
