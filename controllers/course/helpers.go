package controllers

import (
	"lms/database"
	"lms/middleware"
	courseService "lms/services/course"

	"github.com/gofiber/fiber/v2"
)

// gateway builds the aggregate gateway over the shared connection
func gateway() *courseService.Gateway {
	return courseService.NewGateway(database.Database.Db)
}

// serviceError maps the typed service errors onto the response envelope
func serviceError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case *courseService.NotFoundError:
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, e.Error(), nil)
	case *courseService.ValidationError:
		return middleware.ValidationErrorResponse(c, e.Errors)
	case *courseService.ConflictError:
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course was modified by another request. Reload and retry.", nil)
	case *courseService.PersistenceError:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Storage operation failed!", nil)
	default:
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
