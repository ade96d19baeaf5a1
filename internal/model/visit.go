package model

import (
	"time"
)

// Visit represents one recorded redirect
type Visit struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	LinkID    int64     `json:"link_id" gorm:"index;not null"`
	VisitedAt time.Time `json:"visited_at" gorm:"index;not null"`
	IPAddress string    `json:"ip_address" gorm:"type:varchar(255)"`
	UserAgent string    `json:"user_agent" gorm:"type:text"`

	Link *Link `json:"-" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Visit
func (Visit) TableName() string {
	return "visits"
}

// OwnerVisit is a visit joined with the short code of its link
type OwnerVisit struct {
	ID        int64
	LinkID    int64
	ShortCode string
	VisitedAt time.Time
	IPAddress string
	UserAgent string
}

// DateRangeRequest represents an inclusive date range filter
type DateRangeRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// VisitView is the API representation of a visit
type VisitView struct {
	ID        int64     `json:"id"`
	ShortCode string    `json:"shortCode,omitempty"`
	VisitDate time.Time `json:"visitDate"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
}

// LinkStats is the response of the per-link statistics endpoints
type LinkStats struct {
	ShortCode  string      `json:"shortCode"`
	VisitCount int64       `json:"visitCount"`
	Visits     []VisitView `json:"visits"`
}

// AccountStats is the response of the account statistics endpoint
type AccountStats struct {
	VisitCount           int64            `json:"visitCount"`
	VisitDetailedCounter map[string]int64 `json:"visitDetailedCounter"`
	Visits               []VisitView      `json:"visits"`
}

// LastVisit describes the visit that triggered a notification
type LastVisit struct {
	VisitDate time.Time `json:"visitDate"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
}

// VisitEvent is published on the link's topic after every redirect
type VisitEvent struct {
	ShortCode  string    `json:"shortCode"`
	VisitCount int64     `json:"visitCount"`
	LastVisit  LastVisit `json:"lastVisit"`
}

// TopicPrefix prefixes the per-link notification topic
const TopicPrefix = "url/"

// LinkTopic returns the notification topic of a short code
func LinkTopic(shortCode string) string {
	return TopicPrefix + shortCode
}
