package controllers

import (
	"lms/middleware"
	courseService "lms/services/course"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateLesson appends a new lesson to a module or one of its sections
func AdminCreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	reqData, ok := c.Locals("validatedLesson").(*courseValidator.LessonCreatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	lesson, err := courseService.CreateLesson(course, moduleID, reqData.SectionID, courseService.LessonInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		MediaURL:    reqData.MediaURL,
		Duration:    reqData.Duration,
		IsPublished: reqData.IsPublished,
	})
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", fiber.Map{
		"course": course,
		"lesson": lesson,
	})
}

// AdminUpdateLesson applies a partial update to a lesson
func AdminUpdateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	sectionID := c.Locals("sectionID").(string)
	lessonID := c.Locals("lessonID").(string)
	reqData, ok := c.Locals("validatedLessonUpdate").(*courseService.LessonUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	lesson, err := courseService.UpdateLesson(course, moduleID, sectionID, lessonID, *reqData)
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", fiber.Map{
		"course": course,
		"lesson": lesson,
	})
}

// AdminDeleteLesson removes a lesson; its scope is renumbered, the other
// lesson scopes of the module stay untouched
func AdminDeleteLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	sectionID := c.Locals("sectionID").(string)
	lessonID := c.Locals("lessonID").(string)

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	if err := courseService.DeleteLesson(course, moduleID, sectionID, lessonID); err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", course)
}

// AdminUploadLessonMedia stores the uploaded media file and attaches the
// resulting URL to the lesson. Only the URL is ever kept on the tree.
func AdminUploadLessonMedia(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(string)
	sectionID := c.Locals("sectionID").(string)
	lessonID := c.Locals("lessonID").(string)

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Media file is required!", nil)
	}

	mediaURL, err := utils.StoreLessonMedia(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store media file!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	lesson, err := courseService.UpdateLesson(course, moduleID, sectionID, lessonID, courseService.LessonUpdate{
		MediaURL: &mediaURL,
	})
	if err != nil {
		return serviceError(c, err)
	}

	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Media uploaded successfully!", fiber.Map{
		"course": course,
		"lesson": lesson,
	})
}
