package models

// Bounds for the announcement display duration, in seconds
const (
	MinAnnouncementDuration     = 5
	MaxAnnouncementDuration     = 60
	DefaultAnnouncementDuration = 15
)

// AnnouncementState is the broadcast banner shown to every viewer
type AnnouncementState struct {
	Message  string `json:"message"`
	IsActive bool   `json:"isActive"`
	Duration int    `json:"duration"`
}
