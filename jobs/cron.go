package jobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"eldercare/services"
)

// warmStatisticsCache primes the global aggregates so the first list
// request of the hour stays fast.
func warmStatisticsCache() {
	if err := services.WarmGlobalStatistics(); err != nil {
		log.Printf("Failed to warm statistics cache: %v", err)
	}
}

// InitCronJobs schedules the hourly cache warm and the nightly search
// reindex.
func InitCronJobs(c *cron.Cron) error {
	if _, err := c.AddFunc("0 * * * *", warmStatisticsCache); err != nil {
		return err
	}

	_, err := c.AddFunc("30 2 * * *", func() {
		if err := services.IndexAllRooms(); err != nil {
			log.Printf("Nightly reindex failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
