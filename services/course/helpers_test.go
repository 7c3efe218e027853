package courseService

import (
	courseModels "lms/models/course"
	"time"

	"gorm.io/datatypes"
)

// testLesson builds a lesson with a deterministic id and order
func testLesson(id, title string, order, duration int) courseModels.Lesson {
	now := time.Now().Add(-time.Hour)
	return courseModels.Lesson{
		ID:          id,
		Title:       title,
		Description: "about " + title,
		MediaURL:    "https://cdn.example.com/" + id + ".mp4",
		Duration:    duration,
		IsPublished: true,
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testSection(id, title string, order int, lessons ...courseModels.Lesson) courseModels.Section {
	now := time.Now().Add(-time.Hour)
	if lessons == nil {
		lessons = []courseModels.Lesson{}
	}
	return courseModels.Section{
		ID:          id,
		Title:       title,
		Description: "about " + title,
		Order:       order,
		Lessons:     lessons,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testModule(id, title string, order int) courseModels.Module {
	now := time.Now().Add(-time.Hour)
	return courseModels.Module{
		ID:          id,
		Title:       title,
		Description: "about " + title,
		Order:       order,
		Sections:    []courseModels.Section{},
		Lessons:     []courseModels.Lesson{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// testCourse builds the canonical fixture:
//
//	m1: direct lessons l1(60s), l2(90s); section s1 with lessons l3(30s), l4(45s), l5(15s)
//	m2: empty
func testCourse() *courseModels.Course {
	m1 := testModule("m1", "Basics", 1)
	m1.Lessons = []courseModels.Lesson{
		testLesson("l1", "Intro", 1, 60),
		testLesson("l2", "Setup", 2, 90),
	}
	m1.Sections = []courseModels.Section{
		testSection("s1", "Fundamentals", 1,
			testLesson("l3", "Variables", 1, 30),
			testLesson("l4", "Types", 2, 45),
			testLesson("l5", "Functions", 3, 15),
		),
	}
	m2 := testModule("m2", "Advanced", 2)

	course := &courseModels.Course{
		Title:       "Go from scratch",
		Description: "A complete Go course",
		Author:      "Jane Doe",
		Status:      "DRAFT",
		Modules:     datatypes.JSONSlice[courseModels.Module]{m1, m2},
	}
	RecomputeTotals(course)
	return course
}

// orders extracts the order values of a lesson list in slice order
func lessonOrders(lessons []courseModels.Lesson) []int {
	out := make([]int, len(lessons))
	for i, l := range lessons {
		out[i] = l.Order
	}
	return out
}

func lessonIDs(lessons []courseModels.Lesson) []string {
	out := make([]string, len(lessons))
	for i, l := range lessons {
		out[i] = l.ID
	}
	return out
}
