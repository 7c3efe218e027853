package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is the root aggregate. The entire module/section/lesson tree lives
// in the Modules JSON column, so every save writes the full hierarchy in one
// record and every load returns it in one piece.
type Course struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	Status       string `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	ThumbnailURL string `json:"thumbnail_url"`
	IsPublished  bool   `json:"is_published" gorm:"default:false"`

	// Version is checked and incremented on every save; a stale copy gets a
	// conflict instead of silently overwriting another writer.
	Version uint `json:"version" gorm:"default:0"`

	// Cached totals, recomputed after every structural mutation
	TotalModules  int `json:"total_modules" gorm:"default:0"`
	TotalSections int `json:"total_sections" gorm:"default:0"`
	TotalLessons  int `json:"total_lessons" gorm:"default:0"`
	TotalDuration int `json:"total_duration" gorm:"default:0"` // minutes, rounded up

	Modules datatypes.JSONSlice[Module] `json:"modules"`

	IsDeleted bool `gorm:"default:false"`
}
