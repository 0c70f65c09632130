package models

import "time"

// AppSetting stores one persisted key/value pair
type AppSetting struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for AppSetting
func (AppSetting) TableName() string {
	return "app_settings"
}
