package courseService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLessonAcrossScopes(t *testing.T) {
	course := testCourse()

	// Direct lesson, empty section id
	direct, err := FindLesson(course, "m1", "", "l2")
	require.NoError(t, err)
	assert.Equal(t, "Setup", direct.Title)

	// Nested lesson through its section
	nested, err := FindLesson(course, "m1", "s1", "l4")
	require.NoError(t, err)
	assert.Equal(t, "Types", nested.Title)

	// A nested lesson is invisible from the direct scope and vice versa
	var notFound *NotFoundError
	_, err = FindLesson(course, "m1", "", "l4")
	assert.ErrorAs(t, err, &notFound)
	_, err = FindLesson(course, "m1", "s1", "l2")
	assert.ErrorAs(t, err, &notFound)
}

func TestFindReturnsLivePointers(t *testing.T) {
	course := testCourse()

	module, err := FindModule(course, "m1")
	require.NoError(t, err)
	module.Title = "Renamed"

	assert.Equal(t, "Renamed", course.Modules[0].Title)
}

func TestFindNotFoundAtEachLevel(t *testing.T) {
	course := testCourse()
	var notFound *NotFoundError

	_, err := FindModule(course, "ghost")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "module", notFound.Resource)

	module, _ := FindModule(course, "m1")
	_, err = FindSection(module, "ghost")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "section", notFound.Resource)

	_, err = FindLesson(course, "m1", "ghost", "l3")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "section", notFound.Resource)

	_, err = FindLesson(course, "m1", "s1", "ghost")
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "lesson", notFound.Resource)
}
