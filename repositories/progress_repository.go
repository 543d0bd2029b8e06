package repositories

import (
	"context"

	"github.com/Serdar-Sara/FitnessTracker/models"

	"gorm.io/gorm"
)

type ProgressRepository interface {
	Insert(ctx context.Context, progress *models.Progress) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Progress, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Progress, error)
	Replace(ctx context.Context, progress *models.Progress) error
	Delete(ctx context.Context, progress *models.Progress) error
}

type progressRepository struct{ db *gorm.DB }

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Insert(ctx context.Context, progress *models.Progress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *progressRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Progress, error) {
	var progress models.Progress
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Progress, error) {
	var progresses []models.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&progresses).Error
	return progresses, err
}

func (r *progressRepository) Replace(ctx context.Context, progress *models.Progress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

func (r *progressRepository) Delete(ctx context.Context, progress *models.Progress) error {
	return r.db.WithContext(ctx).Delete(progress).Error
}
