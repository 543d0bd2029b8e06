package models

import "time"

type Progress struct {
	ID                uint      `gorm:"primaryKey" json:"id" form:"id"`
	Weight            float64   `gorm:"not null" json:"weight" form:"weight" binding:"required"` // kg
	BodyFatPercentage float64   `gorm:"not null" json:"body_fat_percentage" form:"body_fat_percentage" binding:"required"`
	Date              time.Time `gorm:"not null" json:"date" form:"date" time_format:"2006-01-02" time_utc:"1" binding:"required"`
	UserID            uint      `gorm:"index" json:"user_id" form:"user_id"`
}

func (Progress) TableName() string {
	return "progresses"
}
