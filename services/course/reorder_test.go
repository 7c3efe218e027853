package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderModuleChildrenMixed(t *testing.T) {
	course := testCourse()

	// Interleave the section between the two direct lessons, reversed
	stats, err := ReorderModuleChildren(course, "m1", []ChildRef{
		{ID: "l2", Type: ChildTypeLesson},
		{ID: "s1", Type: ChildTypeSection},
		{ID: "l1", Type: ChildTypeLesson},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Processed)
	assert.Equal(t, 1, stats.Sections)
	assert.Equal(t, 2, stats.Lessons)

	module, err := FindModule(course, "m1")
	require.NoError(t, err)

	// Each list is renumbered independently from 1
	assert.Equal(t, []string{"l2", "l1"}, lessonIDs(module.Lessons))
	assert.Equal(t, []int{1, 2}, lessonOrders(module.Lessons))
	require.Len(t, module.Sections, 1)
	assert.Equal(t, "s1", module.Sections[0].ID)
	assert.Equal(t, 1, module.Sections[0].Order)

	// Section contents ride along untouched
	assert.Equal(t, []string{"l3", "l4", "l5"}, lessonIDs(module.Sections[0].Lessons))
}

func TestReorderPreservesFields(t *testing.T) {
	course := testCourse()
	module, _ := FindModule(course, "m1")
	before := module.Lessons[0] // l1

	_, err := ReorderModuleChildren(course, "m1", []ChildRef{
		{ID: "s1", Type: ChildTypeSection},
		{ID: "l1", Type: ChildTypeLesson},
		{ID: "l2", Type: ChildTypeLesson},
	})
	require.NoError(t, err)

	after, err := FindLesson(course, "m1", "", "l1")
	require.NoError(t, err)

	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.MediaURL, after.MediaURL)
	assert.Equal(t, before.Duration, after.Duration)
	assert.Equal(t, before.IsPublished, after.IsPublished)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestReorderSectionLessonsDropsOmitted(t *testing.T) {
	course := testCourse()

	// Section s1 holds l3,l4,l5; submitting only [l5,l3] drops l4 entirely
	stats, err := ReorderSectionLessons(course, "m1", "s1", []ChildRef{
		{ID: "l5"},
		{ID: "l3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 2, stats.Lessons)

	module, _ := FindModule(course, "m1")
	section, err := FindSection(module, "s1")
	require.NoError(t, err)

	assert.Equal(t, []string{"l5", "l3"}, lessonIDs(section.Lessons))
	assert.Equal(t, []int{1, 2}, lessonOrders(section.Lessons))

	_, err = FindLesson(course, "m1", "s1", "l4")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	// Totals reflect the dropped lesson
	assert.Equal(t, 4, course.TotalLessons)
}

func TestReorderSynthesizesUnknownID(t *testing.T) {
	course := testCourse()

	_, err := ReorderSectionLessons(course, "m1", "s1", []ChildRef{
		{ID: "l3"},
		{ID: "l9", Title: "Closures", Description: "new material", Duration: 120, IsPublished: true},
		{ID: "l4"},
		{ID: "l5"},
	})
	require.NoError(t, err)

	lesson, err := FindLesson(course, "m1", "s1", "l9")
	require.NoError(t, err)
	assert.Equal(t, "Closures", lesson.Title)
	assert.Equal(t, 120, lesson.Duration)
	assert.Equal(t, 2, lesson.Order)
	assert.Equal(t, 6, course.TotalLessons)
}

func TestReorderTypeMismatchSynthesizes(t *testing.T) {
	course := testCourse()

	// s1 exists as a section; declaring it a lesson misses the snapshot and
	// materializes a new lesson under that id
	_, err := ReorderModuleChildren(course, "m1", []ChildRef{
		{ID: "s1", Type: ChildTypeLesson, Title: "Was a section"},
		{ID: "l1", Type: ChildTypeLesson},
		{ID: "l2", Type: ChildTypeLesson},
	})
	require.NoError(t, err)

	module, _ := FindModule(course, "m1")
	assert.Empty(t, module.Sections)
	assert.Equal(t, []string{"s1", "l1", "l2"}, lessonIDs(module.Lessons))
	assert.Equal(t, "Was a section", module.Lessons[0].Title)
}

func TestReorderValidation(t *testing.T) {
	course := testCourse()
	var validation *ValidationError

	_, err := ReorderModuleChildren(course, "m1", nil)
	assert.ErrorAs(t, err, &validation)

	_, err = ReorderModuleChildren(course, "m1", []ChildRef{{ID: "  ", Type: ChildTypeLesson}})
	assert.ErrorAs(t, err, &validation)

	_, err = ReorderModuleChildren(course, "m1", []ChildRef{{ID: "l1", Type: "chapter"}})
	assert.ErrorAs(t, err, &validation)

	_, err = ReorderSectionLessons(course, "m1", "s1", []ChildRef{{ID: "l3", Type: ChildTypeSection}})
	assert.ErrorAs(t, err, &validation)

	// A failed reorder leaves the scope untouched
	module, _ := FindModule(course, "m1")
	assert.Equal(t, []string{"l1", "l2"}, lessonIDs(module.Lessons))
}

func TestReorderNotFound(t *testing.T) {
	course := testCourse()
	var notFound *NotFoundError

	_, err := ReorderModuleChildren(course, "nope", []ChildRef{{ID: "l1", Type: ChildTypeLesson}})
	assert.ErrorAs(t, err, &notFound)

	_, err = ReorderSectionLessons(course, "m1", "nope", []ChildRef{{ID: "l3"}})
	assert.ErrorAs(t, err, &notFound)
}

func TestReorderIdempotent(t *testing.T) {
	course := testCourse()

	seq := []ChildRef{
		{ID: "l4"},
		{ID: "l5"},
		{ID: "l3"},
	}

	_, err := ReorderSectionLessons(course, "m1", "s1", seq)
	require.NoError(t, err)

	module, _ := FindModule(course, "m1")
	section, _ := FindSection(module, "s1")
	firstPass := make([]string, 0)
	for _, l := range section.Lessons {
		firstPass = append(firstPass, l.ID+l.Title)
	}

	// Replaying the exact sequence derived from the first result changes
	// nothing but timestamps
	_, err = ReorderSectionLessons(course, "m1", "s1", seq)
	require.NoError(t, err)

	section, _ = FindSection(module, "s1")
	secondPass := make([]string, 0)
	for _, l := range section.Lessons {
		secondPass = append(secondPass, l.ID+l.Title)
	}
	assert.Equal(t, firstPass, secondPass)
	assert.Equal(t, []int{1, 2, 3}, lessonOrders(section.Lessons))
}
