package services

import (
	"context"

	"github.com/Serdar-Sara/FitnessTracker/models"

	"gorm.io/gorm"
)

type DashboardSummary struct {
	TotalExercises       int64 `json:"total_exercises"`
	TotalProgressEntries int64 `json:"total_progress_entries"`
	TotalCaloriesBurned  int64 `json:"total_calories_burned"`
}

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

// Summarize recomputes the global figures on every call; no filtering,
// no cache.
func (s *DashboardService) Summarize(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary

	if err := s.db.WithContext(ctx).
		Model(&models.Exercise{}).
		Count(&out.TotalExercises).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Progress{}).
		Count(&out.TotalProgressEntries).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).
		Model(&models.Exercise{}).
		Select("COALESCE(SUM(calories_burned), 0)").
		Scan(&out.TotalCaloriesBurned).Error; err != nil {
		return nil, err
	}

	return &out, nil
}
