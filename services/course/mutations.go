package courseService

import (
	courseModels "lms/models/course"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ModuleInput carries the caller-supplied fields for a new module
type ModuleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SectionInput carries the caller-supplied fields for a new section
type SectionInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LessonInput carries the caller-supplied fields for a new lesson
type LessonInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	Duration    int    `json:"duration"` // seconds
	IsPublished bool   `json:"is_published"`
}

// ModuleUpdate is a partial update; nil fields are left untouched
type ModuleUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// SectionUpdate is a partial update; nil fields are left untouched
type SectionUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// LessonUpdate is a partial update; nil fields are left untouched
type LessonUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MediaURL    *string `json:"media_url"`
	Duration    *int    `json:"duration"`
	IsPublished *bool   `json:"is_published"`
}

// CreateModule appends a module at the end of the course's module list
func CreateModule(course *courseModels.Course, in ModuleInput) (*courseModels.Module, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, newValidationError("title", "Title is required!")
	}

	now := time.Now()
	module := courseModels.Module{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Order:       len(course.Modules) + 1,
		Sections:    []courseModels.Section{},
		Lessons:     []courseModels.Lesson{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	course.Modules = append(course.Modules, module)
	RecomputeTotals(course)
	return &course.Modules[len(course.Modules)-1], nil
}

// CreateSection appends a section at the end of the module's section list
func CreateSection(course *courseModels.Course, moduleID string, in SectionInput) (*courseModels.Section, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, newValidationError("title", "Title is required!")
	}

	module, err := FindModule(course, moduleID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	section := courseModels.Section{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Order:       len(module.Sections) + 1,
		Lessons:     []courseModels.Lesson{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	module.Sections = append(module.Sections, section)
	module.UpdatedAt = now
	RecomputeTotals(course)
	return &module.Sections[len(module.Sections)-1], nil
}

// CreateLesson appends a lesson at the end of its owning list: the module's
// direct lessons when sectionID is empty, otherwise that section's lessons.
func CreateLesson(course *courseModels.Course, moduleID, sectionID string, in LessonInput) (*courseModels.Lesson, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, newValidationError("title", "Title is required!")
	}

	module, err := FindModule(course, moduleID)
	if err != nil {
		return nil, err
	}
	lessons, err := lessonScope(module, sectionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lesson := courseModels.Lesson{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		MediaURL:    in.MediaURL,
		Duration:    in.Duration,
		IsPublished: in.IsPublished,
		Order:       len(*lessons) + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	*lessons = append(*lessons, lesson)
	module.UpdatedAt = now
	RecomputeTotals(course)
	return &(*lessons)[len(*lessons)-1], nil
}

// UpdateModule applies the non-nil fields of the update payload
func UpdateModule(course *courseModels.Course, moduleID string, upd ModuleUpdate) (*courseModels.Module, error) {
	module, err := FindModule(course, moduleID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		module.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		module.Description = strings.TrimSpace(*upd.Description)
	}
	module.UpdatedAt = time.Now()
	return module, nil
}

// UpdateSection applies the non-nil fields of the update payload
func UpdateSection(course *courseModels.Course, moduleID, sectionID string, upd SectionUpdate) (*courseModels.Section, error) {
	module, err := FindModule(course, moduleID)
	if err != nil {
		return nil, err
	}
	section, err := FindSection(module, sectionID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		section.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		section.Description = strings.TrimSpace(*upd.Description)
	}
	now := time.Now()
	section.UpdatedAt = now
	module.UpdatedAt = now
	return section, nil
}

// UpdateLesson applies the non-nil fields of the update payload. Totals are
// recomputed only when the duration actually changes, since duration is the
// only lesson field that feeds the cached totals.
func UpdateLesson(course *courseModels.Course, moduleID, sectionID, lessonID string, upd LessonUpdate) (*courseModels.Lesson, error) {
	lesson, err := FindLesson(course, moduleID, sectionID, lessonID)
	if err != nil {
		return nil, err
	}

	durationChanged := false
	if upd.Title != nil {
		lesson.Title = strings.TrimSpace(*upd.Title)
	}
	if upd.Description != nil {
		lesson.Description = strings.TrimSpace(*upd.Description)
	}
	if upd.MediaURL != nil {
		lesson.MediaURL = *upd.MediaURL
	}
	if upd.Duration != nil && *upd.Duration != lesson.Duration {
		lesson.Duration = *upd.Duration
		durationChanged = true
	}
	if upd.IsPublished != nil {
		lesson.IsPublished = *upd.IsPublished
	}
	lesson.UpdatedAt = time.Now()

	if durationChanged {
		RecomputeTotals(course)
	}
	return lesson, nil
}

// DeleteModule removes a module and renumbers the survivors to 1..N
func DeleteModule(course *courseModels.Course, moduleID string) error {
	idx := -1
	for i := range course.Modules {
		if course.Modules[i].ID == moduleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Resource: "module", ID: moduleID}
	}

	course.Modules = append(course.Modules[:idx], course.Modules[idx+1:]...)
	for i := range course.Modules {
		course.Modules[i].Order = i + 1
	}
	RecomputeTotals(course)
	return nil
}

// DeleteSection removes a section (and the lessons it owns) and renumbers
// the surviving sections to 1..N
func DeleteSection(course *courseModels.Course, moduleID, sectionID string) error {
	module, err := FindModule(course, moduleID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range module.Sections {
		if module.Sections[i].ID == sectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Resource: "section", ID: sectionID}
	}

	module.Sections = append(module.Sections[:idx], module.Sections[idx+1:]...)
	for i := range module.Sections {
		module.Sections[i].Order = i + 1
	}
	module.UpdatedAt = time.Now()
	RecomputeTotals(course)
	return nil
}

// DeleteLesson removes a lesson from its owning list and renumbers the
// surviving lessons to 1..N. The module's other lesson scopes are untouched.
func DeleteLesson(course *courseModels.Course, moduleID, sectionID, lessonID string) error {
	module, err := FindModule(course, moduleID)
	if err != nil {
		return err
	}
	lessons, err := lessonScope(module, sectionID)
	if err != nil {
		return err
	}

	idx := -1
	for i := range *lessons {
		if (*lessons)[i].ID == lessonID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Resource: "lesson", ID: lessonID}
	}

	*lessons = append((*lessons)[:idx], (*lessons)[idx+1:]...)
	for i := range *lessons {
		(*lessons)[i].Order = i + 1
	}
	module.UpdatedAt = time.Now()
	RecomputeTotals(course)
	return nil
}
