package worker

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Start schedules the materialization of recurring incomes and starts the
// scheduler. Stop the returned scheduler to end it.
func Start(db *gorm.DB, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		Run(db, time.Now())
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info().Str("schedule", schedule).Msg("recurring income worker started")

	return c, nil
}

// Run materializes all due recurring incomes once and logs the result.
func Run(db *gorm.DB, now time.Time) {
	created, err := MaterializeIncomes(db, now)
	if err != nil {
		log.Error().Err(err).Int("created", created).Msg("recurring incomes")
		return
	}

	if created > 0 {
		log.Info().Int("created", created).Msg("recurring incomes")
	}
}
