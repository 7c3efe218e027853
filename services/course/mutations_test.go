package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateModuleAssignsNextOrder(t *testing.T) {
	course := testCourse() // holds m1, m2

	module, err := CreateModule(course, ModuleInput{Title: "  Deployment  ", Description: "ship it"})
	require.NoError(t, err)

	assert.Equal(t, "Deployment", module.Title)
	assert.Equal(t, 3, module.Order)
	assert.NotEmpty(t, module.ID)
	assert.Equal(t, 3, course.TotalModules)
}

func TestCreateBlankTitleRejected(t *testing.T) {
	course := testCourse()
	var validation *ValidationError

	_, err := CreateModule(course, ModuleInput{Title: "   "})
	assert.ErrorAs(t, err, &validation)

	_, err = CreateSection(course, "m1", SectionInput{Title: ""})
	assert.ErrorAs(t, err, &validation)

	_, err = CreateLesson(course, "m1", "", LessonInput{Title: " "})
	assert.ErrorAs(t, err, &validation)

	// Nothing was appended
	assert.Equal(t, 2, course.TotalModules)
	assert.Equal(t, 1, course.TotalSections)
	assert.Equal(t, 5, course.TotalLessons)
}

func TestCreateLessonScopesAreIndependent(t *testing.T) {
	course := testCourse()

	// m2 is empty; its first direct lesson and its first section lesson
	// must both start at order 1
	section, err := CreateSection(course, "m2", SectionInput{Title: "Basics"})
	require.NoError(t, err)
	sectionID := section.ID

	direct, err := CreateLesson(course, "m2", "", LessonInput{Title: "Direct one", Duration: 60})
	require.NoError(t, err)
	nested, err := CreateLesson(course, "m2", sectionID, LessonInput{Title: "Nested one", Duration: 60})
	require.NoError(t, err)

	assert.Equal(t, 1, direct.Order)
	assert.Equal(t, 1, nested.Order)
	assert.Equal(t, 7, course.TotalLessons)
}

func TestCreateLessonUnknownSection(t *testing.T) {
	course := testCourse()
	var notFound *NotFoundError

	_, err := CreateLesson(course, "m1", "missing-section", LessonInput{Title: "Lost"})
	assert.ErrorAs(t, err, &notFound)
}

func TestUpdateLessonPartial(t *testing.T) {
	course := testCourse()
	newTitle := "Intro (revised)"

	lesson, err := UpdateLesson(course, "m1", "", "l1", LessonUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, newTitle, lesson.Title)
	// Absent fields stay untouched
	assert.Equal(t, "about Intro", lesson.Description)
	assert.Equal(t, 60, lesson.Duration)
	assert.True(t, lesson.IsPublished)
}

func TestUpdateLessonDurationRecomputesTotals(t *testing.T) {
	course := testCourse() // 60+90+30+45+15 = 240s = 4min
	require.Equal(t, 4, course.TotalDuration)

	newDuration := 120
	_, err := UpdateLesson(course, "m1", "", "l1", LessonUpdate{Duration: &newDuration})
	require.NoError(t, err)

	// 120+90+30+45+15 = 300s = 5min
	assert.Equal(t, 5, course.TotalDuration)
}

func TestUpdateNotFoundPaths(t *testing.T) {
	course := testCourse()
	var notFound *NotFoundError
	title := "x"

	_, err := UpdateModule(course, "nope", ModuleUpdate{Title: &title})
	assert.ErrorAs(t, err, &notFound)

	_, err = UpdateSection(course, "m1", "nope", SectionUpdate{Title: &title})
	assert.ErrorAs(t, err, &notFound)

	_, err = UpdateLesson(course, "m1", "s1", "nope", LessonUpdate{Title: &title})
	assert.ErrorAs(t, err, &notFound)

	// A lesson id is only visible within its own scope
	_, err = UpdateLesson(course, "m1", "s1", "l1", LessonUpdate{Title: &title})
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteLessonRenumbersSurvivors(t *testing.T) {
	course := testCourse()

	// Grow s1 to five lessons, orders 1..5
	_, err := CreateLesson(course, "m1", "s1", LessonInput{Title: "Interfaces", Duration: 20})
	require.NoError(t, err)
	_, err = CreateLesson(course, "m1", "s1", LessonInput{Title: "Generics", Duration: 25})
	require.NoError(t, err)

	module, _ := FindModule(course, "m1")
	section, _ := FindSection(module, "s1")
	require.Equal(t, []int{1, 2, 3, 4, 5}, lessonOrders(section.Lessons))
	secondID := section.Lessons[1].ID // l4

	require.NoError(t, DeleteLesson(course, "m1", "s1", secondID))

	section, _ = FindSection(module, "s1")
	assert.Equal(t, []int{1, 2, 3, 4}, lessonOrders(section.Lessons))
	// Prior relative order is preserved
	assert.Equal(t, "l3", section.Lessons[0].ID)
	assert.Equal(t, "l5", section.Lessons[1].ID)
}

func TestDeleteDirectLessonLeavesSectionAlone(t *testing.T) {
	course := testCourse()
	before := course.TotalLessons

	require.NoError(t, DeleteLesson(course, "m1", "", "l1"))

	module, _ := FindModule(course, "m1")
	assert.Equal(t, []string{"l2"}, lessonIDs(module.Lessons))
	assert.Equal(t, []int{1}, lessonOrders(module.Lessons))

	section, _ := FindSection(module, "s1")
	assert.Equal(t, []string{"l3", "l4", "l5"}, lessonIDs(section.Lessons))
	assert.Equal(t, before-1, course.TotalLessons)
}

func TestDeleteSectionDropsItsLessons(t *testing.T) {
	course := testCourse()

	require.NoError(t, DeleteSection(course, "m1", "s1"))

	assert.Equal(t, 0, course.TotalSections)
	assert.Equal(t, 2, course.TotalLessons) // only m1's direct lessons remain
	// 60+90 = 150s = 3min rounded up
	assert.Equal(t, 3, course.TotalDuration)
}

func TestDeleteModuleRenumbers(t *testing.T) {
	course := testCourse()
	_, err := CreateModule(course, ModuleInput{Title: "Third"})
	require.NoError(t, err)

	require.NoError(t, DeleteModule(course, "m1"))

	require.Len(t, course.Modules, 2)
	assert.Equal(t, "m2", course.Modules[0].ID)
	assert.Equal(t, 1, course.Modules[0].Order)
	assert.Equal(t, 2, course.Modules[1].Order)
	assert.Equal(t, 0, course.TotalLessons)
}

func TestDeleteNotFound(t *testing.T) {
	course := testCourse()
	var notFound *NotFoundError

	assert.ErrorAs(t, DeleteModule(course, "nope"), &notFound)
	assert.ErrorAs(t, DeleteSection(course, "m1", "nope"), &notFound)
	assert.ErrorAs(t, DeleteLesson(course, "m1", "s1", "l1"), &notFound)
	assert.ErrorAs(t, DeleteLesson(course, "nope", "", "l1"), &notFound)
}
