package model

import (
	"time"
)

type UserRole string

const (
	Member UserRole = "member"
	Admin  UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Username string   `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;not null;default:'member'" json:"role"`
	Points   int      `gorm:"not null;default:0" json:"points"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary is the public projection returned by the auth endpoints.
type UserSummary struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Points   int      `json:"points"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Points:   u.Points,
	}
}

// UserModuleCompletion is one member of a user's completed-module set. The
// composite primary key is what keeps the set free of duplicates.
type UserModuleCompletion struct {
	UserID        string    `gorm:"primaryKey;type:varchar(36)"`
	ModuleID      string    `gorm:"primaryKey;type:varchar(36)"`
	PointsAwarded int       `gorm:"not null;default:0"`
	CompletedAt   time.Time `gorm:"not null"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Module Module `gorm:"foreignKey:ModuleID"`
}

func (UserModuleCompletion) TableName() string {
	return "user_module_completions"
}

type UserBadge struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)"`
	BadgeID   string    `gorm:"primaryKey;size:64"`
	AwardedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
