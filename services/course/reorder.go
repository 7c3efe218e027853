package courseService

import (
	courseModels "lms/models/course"
	"strings"
	"time"
)

const (
	ChildTypeSection = "section"
	ChildTypeLesson  = "lesson"
)

// ChildRef is one entry of a caller-supplied reorder sequence. For ids that
// already exist in the scope only ID and Type are consulted; an unknown id
// is materialized as a brand-new record from the remaining fields.
type ChildRef struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // section or lesson
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	Duration    int    `json:"duration"`
	IsPublished bool   `json:"is_published"`
}

// ReorderStats summarizes the outcome of a reorder so callers can verify
// the resulting scope sizes against what they sent.
type ReorderStats struct {
	Processed int `json:"processed"`
	Sections  int `json:"sections"`
	Lessons   int `json:"lessons"`
}

// ReorderModuleChildren rebuilds a module's two sibling lists (sections and
// direct lessons) from the caller-supplied sequence. Position in the
// sequence becomes the new order, counted per list from 1. Existing
// children keep every field except order and UpdatedAt. Children whose id
// is missing from the sequence are dropped, and unknown ids become new
// records; both behaviors are kept deliberately for compatibility with the
// original system.
func ReorderModuleChildren(course *courseModels.Course, moduleID string, seq []ChildRef) (*ReorderStats, error) {
	module, err := FindModule(course, moduleID)
	if err != nil {
		return nil, err
	}
	if err := validateSequence(seq, true); err != nil {
		return nil, err
	}

	now := time.Now()

	prevSections := make(map[string]courseModels.Section, len(module.Sections))
	for _, s := range module.Sections {
		prevSections[s.ID] = s
	}
	prevLessons := make(map[string]courseModels.Lesson, len(module.Lessons))
	for _, l := range module.Lessons {
		prevLessons[l.ID] = l
	}

	newSections := make([]courseModels.Section, 0, len(seq))
	newLessons := make([]courseModels.Lesson, 0, len(seq))

	for _, ref := range seq {
		switch ref.Type {
		case ChildTypeSection:
			if prev, ok := prevSections[ref.ID]; ok {
				prev.Order = len(newSections) + 1
				prev.UpdatedAt = now
				newSections = append(newSections, prev)
			} else {
				newSections = append(newSections, synthesizeSection(ref, len(newSections)+1, now))
			}
		default: // lesson; validateSequence already rejected other types
			if prev, ok := prevLessons[ref.ID]; ok {
				prev.Order = len(newLessons) + 1
				prev.UpdatedAt = now
				newLessons = append(newLessons, prev)
			} else {
				newLessons = append(newLessons, synthesizeLesson(ref, len(newLessons)+1, now))
			}
		}
	}

	module.Sections = newSections
	module.Lessons = newLessons
	module.UpdatedAt = now
	RecomputeTotals(course)

	return &ReorderStats{
		Processed: len(seq),
		Sections:  len(newSections),
		Lessons:   len(newLessons),
	}, nil
}

// ReorderSectionLessons rebuilds a section's lesson list from the
// caller-supplied sequence, with the same reconcile-by-id semantics as
// ReorderModuleChildren.
func ReorderSectionLessons(course *courseModels.Course, moduleID, sectionID string, seq []ChildRef) (*ReorderStats, error) {
	module, err := FindModule(course, moduleID)
	if err != nil {
		return nil, err
	}
	section, err := FindSection(module, sectionID)
	if err != nil {
		return nil, err
	}
	if err := validateSequence(seq, false); err != nil {
		return nil, err
	}

	now := time.Now()

	prevLessons := make(map[string]courseModels.Lesson, len(section.Lessons))
	for _, l := range section.Lessons {
		prevLessons[l.ID] = l
	}

	newLessons := make([]courseModels.Lesson, 0, len(seq))
	for i, ref := range seq {
		if prev, ok := prevLessons[ref.ID]; ok {
			prev.Order = i + 1
			prev.UpdatedAt = now
			newLessons = append(newLessons, prev)
		} else {
			newLessons = append(newLessons, synthesizeLesson(ref, i+1, now))
		}
	}

	section.Lessons = newLessons
	section.UpdatedAt = now
	module.UpdatedAt = now
	RecomputeTotals(course)

	return &ReorderStats{
		Processed: len(seq),
		Sections:  len(module.Sections),
		Lessons:   len(newLessons),
	}, nil
}

// validateSequence rejects an empty sequence, entries without an id, and
// (for mixed module children) entries without a recognized type
func validateSequence(seq []ChildRef, mixed bool) error {
	if len(seq) == 0 {
		return newValidationError("children", "Reorder sequence must be a non-empty list!")
	}
	for _, ref := range seq {
		if strings.TrimSpace(ref.ID) == "" {
			return newValidationError("id", "Every entry must carry an id!")
		}
		if mixed && ref.Type != ChildTypeSection && ref.Type != ChildTypeLesson {
			return newValidationError("type", "Entry type must be 'section' or 'lesson'!")
		}
		if !mixed && ref.Type != "" && ref.Type != ChildTypeLesson {
			return newValidationError("type", "Only lessons can be reordered within a section!")
		}
	}
	return nil
}

func synthesizeSection(ref ChildRef, order int, now time.Time) courseModels.Section {
	return courseModels.Section{
		ID:          ref.ID,
		Title:       ref.Title,
		Description: ref.Description,
		Order:       order,
		Lessons:     []courseModels.Lesson{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func synthesizeLesson(ref ChildRef, order int, now time.Time) courseModels.Lesson {
	return courseModels.Lesson{
		ID:          ref.ID,
		Title:       ref.Title,
		Description: ref.Description,
		MediaURL:    ref.MediaURL,
		Duration:    ref.Duration,
		IsPublished: ref.IsPublished,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
