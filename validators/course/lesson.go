package courseValidator

import (
	"lms/middleware"
	courseService "lms/services/course"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// LessonCreatePayload is the body for lesson creation. SectionID is
// optional; when empty the lesson is attached directly to the module.
type LessonCreatePayload struct {
	SectionID   string `json:"section_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaURL    string `json:"media_url"`
	Duration    int    `json:"duration"`
	IsPublished bool   `json:"is_published"`
}

// CreateLesson validates lesson creation under a module or section
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseCourseID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		moduleID, ok := parseNodeID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		reqData := new(LessonCreatePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Duration < 0 {
			errors["duration"] = "Duration cannot be negative!"
		}
		reqData.SectionID = strings.TrimSpace(reqData.SectionID)
		if reqData.SectionID != "" {
			if _, err := uuid.Parse(reqData.SectionID); err != nil {
				errors["section_id"] = "Invalid Section ID!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// LessonPath validates the full lesson path. The owning section is passed
// as the section_id query parameter and may be absent for direct lessons.
func LessonPath(withBody bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseCourseID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		moduleID, ok := parseNodeID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}
		lessonID, ok := parseNodeID(c, "lesson_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		sectionID := strings.TrimSpace(c.Query("section_id"))
		if sectionID != "" {
			if _, err := uuid.Parse(sectionID); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Section ID!", nil)
			}
		}

		if withBody {
			// Pointer fields keep absent-vs-empty apart for partial updates
			reqData := new(courseService.LessonUpdate)
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			if reqData.Duration != nil && *reqData.Duration < 0 {
				return middleware.ValidationErrorResponse(c, map[string]string{"duration": "Duration cannot be negative!"})
			}
			c.Locals("validatedLessonUpdate", reqData)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("sectionID", sectionID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}
}
