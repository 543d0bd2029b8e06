package repositories

import (
	"context"

	"github.com/Serdar-Sara/FitnessTracker/models"

	"gorm.io/gorm"
)

// DietRepository is the record-store capability for diet entries. The
// ownership filter is part of every read; a caller can never reach
// another user's rows through it.
type DietRepository interface {
	Insert(ctx context.Context, diet *models.Diet) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Diet, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Diet, error)
	Replace(ctx context.Context, diet *models.Diet) error
	Delete(ctx context.Context, diet *models.Diet) error
}

type dietRepository struct{ db *gorm.DB }

func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{db: db}
}

func (r *dietRepository) Insert(ctx context.Context, diet *models.Diet) error {
	return r.db.WithContext(ctx).Create(diet).Error
}

func (r *dietRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*models.Diet, error) {
	var diet models.Diet
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&diet).Error
	if err != nil {
		return nil, err
	}
	return &diet, nil
}

func (r *dietRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Diet, error) {
	var diets []models.Diet
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Find(&diets).Error
	return diets, err
}

func (r *dietRepository) Replace(ctx context.Context, diet *models.Diet) error {
	return r.db.WithContext(ctx).Save(diet).Error
}

func (r *dietRepository) Delete(ctx context.Context, diet *models.Diet) error {
	return r.db.WithContext(ctx).Delete(diet).Error
}
