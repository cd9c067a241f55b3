package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/charlykso/smart-s-sub003/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 1:10 AM, after the nightly enrollment imports
			if now.Hour() == 1 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [01:10]...")
				recountAllSchools(db)
			}
		}
	}()
}

// recountAllSchools refreshes cached class-arm student counts for every
// active school. Per-school partial failures are logged, not fatal.
func recountAllSchools(db *sql.DB) {
	schoolIDs, err := database.GetActiveSchoolIDs(db)
	if err != nil {
		log.Printf("Error listing schools for recount: %v", err)
		return
	}

	counter := NewCounterService(database.NewArmCountStore(db))
	for _, schoolID := range schoolIDs {
		report, err := counter.RecomputeAll(schoolID)
		if err != nil {
			log.Printf("Error recounting school %s: %v", schoolID, err)
			continue
		}
		log.Printf("Recounted school %s: %d of %d class arms updated", schoolID, report.Successful, report.Total)
	}
}
