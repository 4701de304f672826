package course

import "gorm.io/gorm"

// Instructor holds the bio shown on the course detail instructor tab
type Instructor struct {
	gorm.Model
	Name      string `json:"name"`
	Title     string `json:"title"` // e.g. "Dr.", "Prof."
	Bio       string `json:"bio" gorm:"type:text"`
	Rating    float64 `json:"rating" gorm:"default:0"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
