package utils

import (
	"lms/config"
	"lms/database"
	courseModels "lms/models/course"
	courseService "lms/services/course"
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// reconcileCourseTotals re-runs the totals walk over every live course and
// repairs rows whose cached counters drifted from the stored tree. Every
// request-path mutation recomputes totals itself; this job only catches
// rows touched outside the application.
func reconcileCourseTotals() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = ?", false).Find(&courses).Error; err != nil {
		logScheduler("Error fetching courses: " + err.Error())
		return
	}

	repaired := 0
	for i := range courses {
		course := &courses[i]

		prevModules := course.TotalModules
		prevSections := course.TotalSections
		prevLessons := course.TotalLessons
		prevDuration := course.TotalDuration

		courseService.RecomputeTotals(course)

		if course.TotalModules == prevModules &&
			course.TotalSections == prevSections &&
			course.TotalLessons == prevLessons &&
			course.TotalDuration == prevDuration {
			continue
		}

		err := db.Model(&courseModels.Course{}).
			Where("id = ?", course.ID).
			Updates(map[string]interface{}{
				"total_modules":  course.TotalModules,
				"total_sections": course.TotalSections,
				"total_lessons":  course.TotalLessons,
				"total_duration": course.TotalDuration,
			}).Error
		if err != nil {
			logScheduler("Error repairing course totals: " + err.Error())
			continue
		}
		repaired++
	}

	if repaired > 0 {
		logScheduler("Repaired totals for " + strconv.Itoa(repaired) + " course(s)")
	}
}

// InitializeStatsScheduler starts the nightly totals reconciler
func InitializeStatsScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.StatsCronSpec, reconcileCourseTotals); err != nil {
		log.Fatalf("Failed to schedule stats reconciler: %v", err)
	}

	c.Start()
	logScheduler("Totals reconciler scheduled: " + config.AppConfig.StatsCronSpec)
	return c
}
