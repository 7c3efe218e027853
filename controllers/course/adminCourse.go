package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	courseService "lms/services/course"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminCreateCourse creates an empty course aggregate
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseCreatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		Author:       reqData.Author,
		ThumbnailURL: reqData.ThumbnailURL,
		Status:       "DRAFT",
		Modules:      datatypes.JSONSlice[courseModels.Module]{},
	}

	created, err := gateway().CreateCourse(&course)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", created)
}

// AdminUpdateCourse updates course-level fields; empty fields are skipped
func AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.CourseUpdatePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Author != "" {
		course.Author = reqData.Author
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}

	saved, err := gw.SaveCourse(course)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", saved)
}

// AdminDeleteCourse soft deletes a course
func AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	course.IsDeleted = true
	if _, err := gw.SaveCourse(course); err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// AdminGetCourseDetails returns the full aggregate including the tree
func AdminGetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := gateway().LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", course)
}

// AdminGetAllCourses lists courses with pagination and optional title search
func AdminGetAllCourses(c *fiber.Ctx) error {
	page := c.Locals("page").(int)
	limit := c.Locals("limit").(int)
	search := c.Locals("search").(string)

	db := database.Database.Db
	query := db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var courses []courseModels.Course
	if err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// AdminPublishCourse marks a course as published and notifies the operator
func AdminPublishCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	gw := gateway()
	course, err := gw.LoadCourse(courseID)
	if err != nil {
		return serviceError(c, err)
	}

	// Totals shown on the catalog must match the tree being published
	courseService.RecomputeTotals(course)
	course.IsPublished = true
	course.Status = "ACTIVE"

	saved, err := gw.SaveCourse(course)
	if err != nil {
		return serviceError(c, err)
	}

	if user, ok := c.Locals("user").(models.User); ok {
		go utils.SendCoursePublishedEmail(user.Email, user.Name, saved.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", saved)
}
