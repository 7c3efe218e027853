package controllers

import (
	"lms/middleware"
	courseService "lms/services/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateSection appends a new section to a module
func AdminCreateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	reqData, ok := c.Locals("validatedSection").(*courseValidator.NodePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	section, err := courseService.CreateSection(course, moduleID, courseService.SectionInput{
		Title:       reqData.Title,
		Description: reqData.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", fiber.Map{
		"course":  course,
		"section": section,
	})
}

// AdminUpdateSection applies a partial update to a section
func AdminUpdateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	sectionID := c.Locals("sectionID").(string)
	reqData, ok := c.Locals("validatedSectionUpdate").(*courseService.SectionUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	section, err := courseService.UpdateSection(course, moduleID, sectionID, *reqData)
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", fiber.Map{
		"course":  course,
		"section": section,
	})
}

// AdminDeleteSection removes a section and the lessons it owns
func AdminDeleteSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	sectionID := c.Locals("sectionID").(string)

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	if err := courseService.DeleteSection(course, moduleID, sectionID); err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", course)
}
