package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActivityType string

const (
	ActivityQuiz                   ActivityType = "quiz"
	ActivityPhishingIdentification ActivityType = "phishing_identification"
	ActivityCaseStudy              ActivityType = "case_study"
	ActivityThreatDecision         ActivityType = "threat_decision"
	ActivityRiskAssessment         ActivityType = "risk_assessment"
	ActivitySecureComparison       ActivityType = "secure_comparison"
)

var ActivityTypes = []ActivityType{
	ActivityQuiz,
	ActivityPhishingIdentification,
	ActivityCaseStudy,
	ActivityThreatDecision,
	ActivityRiskAssessment,
	ActivitySecureComparison,
}

func (t ActivityType) Valid() bool {
	for _, v := range ActivityTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Activity is an append-only ledger row: one per submission, never updated.
type Activity struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID       string         `gorm:"type:varchar(36);not null;index:idx_activity_user_time,priority:1" json:"userId"`
	ModuleID     string         `gorm:"type:varchar(36);not null;index" json:"moduleId"`
	ActivityType ActivityType   `gorm:"size:40;not null" json:"activityType"`
	Score        float64        `gorm:"not null;default:0" json:"score"`
	Result       datatypes.JSON `json:"result"`
	SubmittedAt  time.Time      `gorm:"not null;index:idx_activity_user_time,priority:2" json:"submittedAt"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Module Module `gorm:"foreignKey:ModuleID" json:"-"`
}

func (Activity) TableName() string {
	return "activities"
}

// RecentActivity is a ledger row joined with its module for the dashboard.
type RecentActivity struct {
	ID           string         `json:"id"`
	ModuleID     string         `json:"moduleId"`
	Module       ModuleRef      `json:"module"`
	ActivityType ActivityType   `json:"activityType"`
	Score        float64        `json:"score"`
	Result       datatypes.JSON `json:"result"`
	SubmittedAt  time.Time      `json:"submittedAt"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = GenerateUUID()
	}
	return
}
