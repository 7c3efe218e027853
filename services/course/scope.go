package courseService

import (
	courseModels "lms/models/course"
)

// FindModule returns a pointer into the course's module list
func FindModule(course *courseModels.Course, moduleID string) (*courseModels.Module, error) {
	for i := range course.Modules {
		if course.Modules[i].ID == moduleID {
			return &course.Modules[i], nil
		}
	}
	return nil, &NotFoundError{Resource: "module", ID: moduleID}
}

// FindSection returns a pointer into the module's section list
func FindSection(module *courseModels.Module, sectionID string) (*courseModels.Section, error) {
	for i := range module.Sections {
		if module.Sections[i].ID == sectionID {
			return &module.Sections[i], nil
		}
	}
	return nil, &NotFoundError{Resource: "section", ID: sectionID}
}

// lessonScope resolves the sibling list a lesson operation targets: the
// module's direct lessons when sectionID is empty, otherwise the lessons of
// that section. The returned pointer addresses the live list so callers can
// replace it in place.
func lessonScope(module *courseModels.Module, sectionID string) (*[]courseModels.Lesson, error) {
	if sectionID == "" {
		return &module.Lessons, nil
	}
	section, err := FindSection(module, sectionID)
	if err != nil {
		return nil, err
	}
	return &section.Lessons, nil
}

// FindLesson resolves a lesson through its full path. An empty sectionID
// means the lesson lives directly under the module.
func FindLesson(course *courseModels.Course, moduleID, sectionID, lessonID string) (*courseModels.Lesson, error) {
	module, err := FindModule(course, moduleID)
	if err != nil {
		return nil, err
	}
	lessons, err := lessonScope(module, sectionID)
	if err != nil {
		return nil, err
	}
	for i := range *lessons {
		if (*lessons)[i].ID == lessonID {
			return &(*lessons)[i], nil
		}
	}
	return nil, &NotFoundError{Resource: "lesson", ID: lessonID}
}
