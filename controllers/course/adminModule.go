package controllers

import (
	"lms/middleware"
	courseService "lms/services/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateModule appends a new module to a course
func AdminCreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedModule").(*courseValidator.NodePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	module, err := courseService.CreateModule(course, courseService.ModuleInput{
		Title:       reqData.Title,
		Description: reqData.Description,
	})
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", fiber.Map{
		"course": course,
		"module": module,
	})
}

// AdminUpdateModule applies a partial update to a module
func AdminUpdateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	reqData, ok := c.Locals("validatedModuleUpdate").(*courseService.ModuleUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	module, err := courseService.UpdateModule(course, moduleID, *reqData)
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", fiber.Map{
		"course": course,
		"module": module,
	})
}

// AdminDeleteModule removes a module; surviving modules are renumbered
func AdminDeleteModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	if err := courseService.DeleteModule(course, moduleID); err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", course)
}
