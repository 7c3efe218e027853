package controllers

import (
	"lms/middleware"
	courseService "lms/services/course"

	"github.com/gofiber/fiber/v2"
)

// AdminReorderModuleChildren rebuilds a module's mixed section+lesson
// children from the submitted sequence and returns the refreshed course
// with reorder stats.
func AdminReorderModuleChildren(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	children, ok := c.Locals("validatedChildren").([]courseService.ChildRef)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	stats, err := courseService.ReorderModuleChildren(course, moduleID, children)
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module children reordered successfully!", fiber.Map{
		"course": course,
		"stats":  stats,
	})
}

// AdminReorderSectionLessons rebuilds a section's lesson list from the
// submitted sequence.
func AdminReorderSectionLessons(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	sectionID := c.Locals("sectionID").(string)
	lessons, ok := c.Locals("validatedLessons").([]courseService.ChildRef)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	stats, err := courseService.ReorderSectionLessons(course, moduleID, sectionID, lessons)
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section lessons reordered successfully!", fiber.Map{
		"course": course,
		"stats":  stats,
	})
}
