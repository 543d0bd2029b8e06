package repositories

import (
	"context"

	"github.com/Serdar-Sara/FitnessTracker/models"

	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Insert(ctx context.Context, exercise *models.Exercise) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Exercise, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Exercise, error)
	Replace(ctx context.Context, exercise *models.Exercise) error
	Delete(ctx context.Context, exercise *models.Exercise) error
}

type exerciseRepository struct{ db *gorm.DB }

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Insert(ctx context.Context, exercise *models.Exercise) error {
	return r.db.WithContext(ctx).Create(exercise).Error
}

func (r *exerciseRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Exercise, error) {
	var exercise models.Exercise
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepository) Replace(ctx context.Context, exercise *models.Exercise) error {
	return r.db.WithContext(ctx).Save(exercise).Error
}

func (r *exerciseRepository) Delete(ctx context.Context, exercise *models.Exercise) error {
	return r.db.WithContext(ctx).Delete(exercise).Error
}
