// services/scheduler.go
package services

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// DefaultShutdownDelay leaves time for the shutdown response to flush.
const DefaultShutdownDelay = 500 * time.Millisecond

// SystemService answers version queries and ends the process on request.
type SystemService struct {
	version string
	delay   time.Duration
	exit    func()
	sched   gocron.Scheduler
}

// NewSystemService builds the service. exit runs once, on the scheduler's
// goroutine, after a shutdown request plus delay.
func NewSystemService(version string, delay time.Duration, exit func()) (*SystemService, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	sched.Start()

	if delay <= 0 {
		delay = DefaultShutdownDelay
	}
	return &SystemService{version: version, delay: delay, exit: exit, sched: sched}, nil
}

func (s *SystemService) Version() string {
	return s.version
}

// ScheduleShutdown arranges for exit to run after the delay and returns
// immediately. There is no way to cancel it.
func (s *SystemService) ScheduleShutdown() error {
	at := time.Now().Add(s.delay)
	_, err := s.sched.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(at)),
		gocron.NewTask(func() {
			log.Info().Msg("[SystemService] shutting down")
			s.exit()
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule shutdown: %w", err)
	}
	log.Info().Dur("delay", s.delay).Msg("[SystemService] shutdown requested")
	return nil
}

// Close stops the scheduler. Pending shutdowns are dropped.
func (s *SystemService) Close() error {
	return s.sched.Shutdown()
}
