package course

import "gorm.io/gorm"

// Course levels
const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

// Course represents a published learning course. Learner actions never
// mutate it; only the admin authoring surface does.
type Course struct {
	gorm.Model
	Title         string  `json:"title"`
	Description   string  `json:"description" gorm:"type:text"`
	Category      string  `json:"category"`
	Level         string  `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED
	Duration      string  `json:"duration"`                        // e.g. "8 weeks"
	PriceCents    int64   `json:"price_cents" gorm:"default:0"`
	InstructorID  uint    `json:"instructor_id" gorm:"index"`
	Rating        float64 `json:"rating" gorm:"default:0"`
	StudentsCount int64   `json:"students_count" gorm:"default:0"`
	ThumbnailURL  string  `json:"thumbnail_url"`
	IsPublished   bool    `json:"is_published" gorm:"default:false"`
	IsDeleted     bool    `json:"-" gorm:"default:false"`
}
