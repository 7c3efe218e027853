package courseValidator

import (
	"lms/middleware"
	courseService "lms/services/course"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// NodePayload is the body for module and section create/update requests
type NodePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// parseNodeID validates a uuid path parameter
func parseNodeID(c *fiber.Ctx, param string) (string, bool) {
	idStr := strings.TrimSpace(c.Params(param))
	if _, err := uuid.Parse(idStr); err != nil {
		return "", false
	}
	return idStr, true
}

// CreateModule validates module creation under a course
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseCourseID(c, "id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(NodePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Title is required!"})
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ModulePath validates the :course_id/:module_id pair and parses an
// optional update body
func ModulePath(withBody bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := parseCourseID(c, "course_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}
		moduleID, ok := parseNodeID(c, "module_id")
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		if withBody {
			// Pointer fields keep absent-vs-empty apart for partial updates
			reqData := new(courseService.ModuleUpdate)
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
			c.Locals("validatedModuleUpdate", reqData)
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
