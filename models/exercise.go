package models

import "time"

type Exercise struct {
	ID             uint      `gorm:"primaryKey" json:"id" form:"id"`
	Name           string    `gorm:"not null" json:"name" form:"name" binding:"required"`
	Duration       int       `gorm:"not null" json:"duration" form:"duration" binding:"required"` // minutes
	CaloriesBurned int       `json:"calories_burned" form:"calories_burned"`
	Date           time.Time `gorm:"not null" json:"date" form:"date" time_format:"2006-01-02" time_utc:"1" binding:"required"`
	UserID         uint      `gorm:"index" json:"user_id" form:"user_id"`
}
