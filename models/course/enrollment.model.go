package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses
const (
	StatusEnrolled   = "ENROLLED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

// Enrollment tracks a user's enrollment in a course with progress.
// At most one row exists per (user, course); enrolling again is a no-op
// that returns the existing record.
type Enrollment struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID         uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Course           Course     `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Status           string     `json:"status" gorm:"default:'ENROLLED'"` // ENROLLED, IN_PROGRESS, COMPLETED
	Progress         float64    `json:"progress" gorm:"default:0"`        // Completion percentage (0-100)
	CompletedLessons int        `json:"completed_lessons" gorm:"default:0"`
	TotalLessons     int        `json:"total_lessons" gorm:"default:0"`
	LastAccessedAt   *time.Time `json:"last_accessed_at"`
	CompletedAt      *time.Time `json:"completed_at"`
	IsDeleted        bool       `json:"-" gorm:"default:false"`
}
