package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	// Course CRUD
	adminGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Get("/list", validators.List(), controllers.AdminGetAllCourses)
	adminGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	adminGroup.Get("/:id", validators.CourseID(), controllers.AdminGetCourseDetails)
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)

	// Module Management
	adminGroup.Post("/:id/module", validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Put("/:course_id/module/:module_id", validators.ModulePath(true), controllers.AdminUpdateModule)
	adminGroup.Delete("/:course_id/module/:module_id", validators.ModulePath(false), controllers.AdminDeleteModule)

	// Section Management
	adminGroup.Post("/:course_id/module/:module_id/section", validators.CreateSection(), controllers.AdminCreateSection)
	adminGroup.Put("/:course_id/module/:module_id/section/:section_id", validators.SectionPath(true), controllers.AdminUpdateSection)
	adminGroup.Delete("/:course_id/module/:module_id/section/:section_id", validators.SectionPath(false), controllers.AdminDeleteSection)

	// Lesson Management (section_id travels in the body on create and as a
	// query parameter on update/delete/upload)
	adminGroup.Post("/:course_id/module/:module_id/lesson", validators.CreateLesson(), controllers.AdminCreateLesson)
	adminGroup.Put("/:course_id/module/:module_id/lesson/:lesson_id", validators.LessonPath(true), controllers.AdminUpdateLesson)
	adminGroup.Delete("/:course_id/module/:module_id/lesson/:lesson_id", validators.LessonPath(false), controllers.AdminDeleteLesson)
	adminGroup.Post("/:course_id/module/:module_id/lesson/:lesson_id/media", validators.LessonPath(false), controllers.AdminUploadLessonMedia)

	// Reordering
	adminGroup.Put("/:course_id/module/:module_id/reorder", validators.ReorderModuleChildren(), controllers.AdminReorderModuleChildren)
	adminGroup.Put("/:course_id/module/:module_id/section/:section_id/reorder", validators.ReorderSectionLessons(), controllers.AdminReorderSectionLessons)
}
