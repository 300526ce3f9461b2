package scheduler

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/dwitvliet/coffee-chats/internal/domain/contract"
)

// Scheduler fires one scheduling tick per day at a fixed UTC time. The
// tick itself is idempotent by date, so a duplicate fire is harmless.
type Scheduler struct {
	service  contract.SchedulerService
	tickTime string // HH:MM, UTC
	stopChan chan struct{}
	running  bool
}

func New(service contract.SchedulerService, tickTime string) *Scheduler {
	return &Scheduler{
		service:  service,
		tickTime: tickTime,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *Scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *Scheduler) mainLoop() {
	for {
		nextTime, err := s.nextFireTime(time.Now().UTC())
		if err != nil {
			log.Printf("Invalid tick time %q: %v", s.tickTime, err)
			return
		}

		log.Printf("Next scheduling tick at %s", nextTime.Format("2006-01-02 15:04:05 UTC"))

		timer := time.NewTimer(time.Until(nextTime))
		select {
		case <-timer.C:
			if err := s.service.RunTick(time.Now().UTC()); err != nil {
				log.Printf("Scheduling tick failed: %v", err)
			}
			// Wait 1 minute to prevent re-processing the same time
			time.Sleep(1 * time.Minute)

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextFireTime returns today's configured fire time, or tomorrow's when
// it already passed.
func (s *Scheduler) nextFireTime(now time.Time) (time.Time, error) {
	parts := strings.Split(s.tickTime, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("expected HH:MM")
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour: %w", err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute: %w", err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next, nil
}
