package courseService

import (
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&courseModels.Course{}))

	return NewGateway(db)
}

func TestGatewayRoundTrip(t *testing.T) {
	gw := newTestGateway(t)

	created, err := gw.CreateCourse(testCourse())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	loaded, err := gw.LoadCourse(created.ID)
	require.NoError(t, err)

	// The whole tree survives the JSON column round trip
	require.Len(t, loaded.Modules, 2)
	module, err := FindModule(loaded, "m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2"}, lessonIDs(module.Lessons))
	section, err := FindSection(module, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l3", "l4", "l5"}, lessonIDs(section.Lessons))
	assert.Equal(t, 5, loaded.TotalLessons)
}

func TestGatewaySavePersistsMutation(t *testing.T) {
	gw := newTestGateway(t)

	created, err := gw.CreateCourse(testCourse())
	require.NoError(t, err)

	course, err := gw.LoadCourse(created.ID)
	require.NoError(t, err)

	require.NoError(t, DeleteLesson(course, "m1", "", "l1"))
	saved, err := gw.SaveCourse(course)
	require.NoError(t, err)
	assert.Equal(t, uint(1), saved.Version)

	reloaded, err := gw.LoadCourse(created.ID)
	require.NoError(t, err)
	module, err := FindModule(reloaded, "m1")
	require.NoError(t, err)
	assert.Equal(t, []string{"l2"}, lessonIDs(module.Lessons))
	assert.Equal(t, 4, reloaded.TotalLessons)
	assert.Equal(t, uint(1), reloaded.Version)
}

func TestGatewayConflictOnStaleSave(t *testing.T) {
	gw := newTestGateway(t)

	created, err := gw.CreateCourse(testCourse())
	require.NoError(t, err)

	first, err := gw.LoadCourse(created.ID)
	require.NoError(t, err)
	second, err := gw.LoadCourse(created.ID)
	require.NoError(t, err)

	_, err = CreateModule(first, ModuleInput{Title: "Winner"})
	require.NoError(t, err)
	_, err = gw.SaveCourse(first)
	require.NoError(t, err)

	// The second caller still holds the old version and must not clobber
	_, err = CreateModule(second, ModuleInput{Title: "Loser"})
	require.NoError(t, err)
	_, err = gw.SaveCourse(second)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)

	reloaded, err := gw.LoadCourse(created.ID)
	require.NoError(t, err)
	_, err = FindModule(reloaded, first.Modules[len(first.Modules)-1].ID)
	assert.NoError(t, err)
	assert.Equal(t, 3, reloaded.TotalModules)
}

func TestGatewayLoadMissing(t *testing.T) {
	gw := newTestGateway(t)

	_, err := gw.LoadCourse(9999)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGatewaySoftDeletedCourseHidden(t *testing.T) {
	gw := newTestGateway(t)

	created, err := gw.CreateCourse(testCourse())
	require.NoError(t, err)

	created.IsDeleted = true
	_, err = gw.SaveCourse(created)
	require.NoError(t, err)

	_, err = gw.LoadCourse(created.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
