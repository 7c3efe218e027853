package courseService

import (
	courseModels "lms/models/course"
)

// RecomputeTotals rewrites the cached course counters from an exact walk of
// the tree. It must run after every structural mutation; nothing triggers it
// implicitly.
func RecomputeTotals(course *courseModels.Course) {
	totalSections := 0
	totalLessons := 0
	totalSeconds := 0

	for i := range course.Modules {
		module := &course.Modules[i]
		totalSections += len(module.Sections)
		totalLessons += len(module.Lessons)
		for j := range module.Lessons {
			totalSeconds += module.Lessons[j].Duration
		}
		for j := range module.Sections {
			section := &module.Sections[j]
			totalLessons += len(section.Lessons)
			for k := range section.Lessons {
				totalSeconds += section.Lessons[k].Duration
			}
		}
	}

	course.TotalModules = len(course.Modules)
	course.TotalSections = totalSections
	course.TotalLessons = totalLessons
	course.TotalDuration = (totalSeconds + 59) / 60 // minutes, rounded up
}
