package courseService

import (
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecomputeTotalsWalk(t *testing.T) {
	course := testCourse()
	RecomputeTotals(course)

	assert.Equal(t, 2, course.TotalModules)
	assert.Equal(t, 1, course.TotalSections)
	assert.Equal(t, 5, course.TotalLessons)
	// 60+90+30+45+15 = 240s = exactly 4 minutes
	assert.Equal(t, 4, course.TotalDuration)
}

func TestRecomputeTotalsRoundsDurationUp(t *testing.T) {
	course := testCourse()
	module, _ := FindModule(course, "m1")
	module.Lessons[0].Duration = 61
	module.Lessons[1].Duration = 0
	section, _ := FindSection(module, "s1")
	section.Lessons = section.Lessons[:0]

	RecomputeTotals(course)

	// 61 seconds is 2 minutes on the catalog, never 1
	assert.Equal(t, 2, course.TotalDuration)
	assert.Equal(t, 2, course.TotalLessons)
}

func TestRecomputeTotalsEmptyCourse(t *testing.T) {
	course := &courseModels.Course{Title: "Empty"}
	RecomputeTotals(course)

	assert.Equal(t, 0, course.TotalModules)
	assert.Equal(t, 0, course.TotalSections)
	assert.Equal(t, 0, course.TotalLessons)
	assert.Equal(t, 0, course.TotalDuration)
}

func TestTotalsStaleUntilRecompute(t *testing.T) {
	course := testCourse()
	module, _ := FindModule(course, "m1")

	// Mutating the tree behind the accessors does not move the counters
	module.Lessons = module.Lessons[:1]
	assert.Equal(t, 5, course.TotalLessons)

	RecomputeTotals(course)
	assert.Equal(t, 4, course.TotalLessons)
}
