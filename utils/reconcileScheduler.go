package utils

import (
	"byteforge/config"
	"byteforge/database"
	"byteforge/models"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// logReconciler logs reconciler events with timestamp
func logReconciler(message string) {
	log.Printf("[RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileCategoryTopics rebuilds every category's topic list from the
// Topic.category side, repairing drift left by partial writes. Surviving
// slugs keep their stored order; topics missing from the list are appended
// in creation order. Returns the number of categories repaired.
func ReconcileCategoryTopics(db *gorm.DB) (int, error) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return 0, err
	}

	repaired := 0
	for i := range categories {
		category := &categories[i]

		var topics []models.Topic
		if err := db.Where("category = ?", category.Slug).Order("created_at asc").Find(&topics).Error; err != nil {
			return repaired, err
		}

		actual := make(map[models.Slug]bool, len(topics))
		for _, topic := range topics {
			actual[topic.Slug] = true
		}

		rebuilt := make(datatypes.JSONSlice[models.Slug], 0, len(topics))
		seen := make(map[models.Slug]bool, len(topics))
		for _, slug := range category.Topics {
			if actual[slug] && !seen[slug] {
				rebuilt = append(rebuilt, slug)
				seen[slug] = true
			}
		}
		for _, topic := range topics {
			if !seen[topic.Slug] {
				rebuilt = append(rebuilt, topic.Slug)
				seen[topic.Slug] = true
			}
		}

		if slugsEqual(category.Topics, rebuilt) {
			continue
		}
		if err := db.Model(category).Update("topics", rebuilt).Error; err != nil {
			return repaired, err
		}
		repaired++
		logReconciler(fmt.Sprintf("Repaired topic list of category %q", category.Slug))
	}
	return repaired, nil
}

func slugsEqual(a, b datatypes.JSONSlice[models.Slug]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// StartReconcileScheduler schedules the periodic reconcile run
func StartReconcileScheduler(c *cron.Cron) {
	spec := config.AppConfig.ReconcileSpec
	if _, err := c.AddFunc(spec, func() {
		repaired, err := ReconcileCategoryTopics(database.Database.Db)
		if err != nil {
			logReconciler("Error reconciling category topics: " + err.Error())
			return
		}
		if repaired > 0 {
			logReconciler(fmt.Sprintf("Reconcile run repaired %d categories", repaired))
		}
	}); err != nil {
		logReconciler("Invalid cron spec " + spec + ": " + err.Error())
		return
	}
	logReconciler("Category reconciler started with spec " + spec)
}

// InitializeReconcileScheduler initializes and starts the reconcile scheduler
func InitializeReconcileScheduler() *cron.Cron {
	c := cron.New()
	StartReconcileScheduler(c)
	c.Start()
	return c
}
