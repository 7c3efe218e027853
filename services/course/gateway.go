package courseService

import (
	"errors"
	"fmt"
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// Gateway is the only component that talks to persistence. A course is
// always loaded and saved as one aggregate; there are no partial writes.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// CreateCourse inserts a fresh aggregate
func (g *Gateway) CreateCourse(course *courseModels.Course) (*courseModels.Course, error) {
	RecomputeTotals(course)
	if err := g.db.Create(course).Error; err != nil {
		return nil, &PersistenceError{Op: "create", Err: err}
	}
	return course, nil
}

// LoadCourse fetches the whole aggregate by id
func (g *Gateway) LoadCourse(id uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := g.db.Where("id = ? AND is_deleted = ?", id, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "course", ID: fmt.Sprint(id)}
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return &course, nil
}

// SaveCourse writes the whole aggregate back. The version is checked and
// incremented inside the same UPDATE, so a caller holding a stale copy gets
// a ConflictError instead of silently overwriting a concurrent save.
func (g *Gateway) SaveCourse(course *courseModels.Course) (*courseModels.Course, error) {
	expected := course.Version

	res := g.db.Model(&courseModels.Course{}).
		Where("id = ? AND version = ?", course.ID, expected).
		Updates(map[string]interface{}{
			"title":          course.Title,
			"description":    course.Description,
			"author":         course.Author,
			"status":         course.Status,
			"thumbnail_url":  course.ThumbnailURL,
			"is_published":   course.IsPublished,
			"total_modules":  course.TotalModules,
			"total_sections": course.TotalSections,
			"total_lessons":  course.TotalLessons,
			"total_duration": course.TotalDuration,
			"modules":        course.Modules,
			"is_deleted":     course.IsDeleted,
			"version":        expected + 1,
		})
	if res.Error != nil {
		return nil, &PersistenceError{Op: "save", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &ConflictError{CourseID: course.ID, Expected: expected}
	}

	course.Version = expected + 1
	return course, nil
}
