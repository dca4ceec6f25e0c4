package models

import "time"

type UserProfile struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Email         string    `gorm:"unique;not null" json:"email"`
	UserName      string    `json:"user_name"`
	LicenseNumber string    `json:"license_number"`
}
