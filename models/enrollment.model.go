package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment is a per-user denormalized snapshot of a course, taken once at
// enrollment time and never re-synced from the catalog. It is the single
// mutable source of truth for the user's chapter completion state.
type Enrollment struct {
	gorm.Model
	UserID       uint           `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_course"`
	CourseTitle  string         `json:"courseTitle" gorm:"not null;uniqueIndex:idx_user_course"`
	Description  string         `json:"description"`
	Type         string         `json:"type"`
	Category     string         `json:"category"`
	Image        string         `json:"image"`
	ChapterCount int            `json:"noOfChapter" gorm:"default:0"`
	Chapters     datatypes.JSON `json:"chapters"`
	EnrolledAt   time.Time      `json:"enrolledAt"`
	IsDeleted    bool           `json:"-" gorm:"default:false"`
}
