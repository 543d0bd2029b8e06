package models

import "time"

// Diet is one logged meal. UserID is nullable so entries can outlive a
// deleted account.
type Diet struct {
	ID               uint      `gorm:"primaryKey" json:"id" form:"id"`
	MealType         string    `gorm:"not null" json:"meal_type" form:"meal_type" binding:"required"`
	CaloriesConsumed int       `gorm:"not null" json:"calories_consumed" form:"calories_consumed" binding:"required"`
	Description      string    `json:"description" form:"description"`
	Date             time.Time `gorm:"not null" json:"date" form:"date" time_format:"2006-01-02" time_utc:"1"`
	UserID           *uint     `gorm:"index" json:"user_id" form:"user_id"`
}
