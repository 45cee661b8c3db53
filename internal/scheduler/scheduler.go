package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Refresher is anything that can be refreshed on a schedule
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs periodic refresh jobs
type Scheduler struct {
	cron    *cron.Cron
	log     *logrus.Logger
	timeout time.Duration
}

// New creates a scheduler; each job run is bounded by timeout
func New(log *logrus.Logger, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		log:     log,
		timeout: timeout,
	}
}

// Add registers r under the cron spec (standard 5-field or descriptors such as @daily)
func (s *Scheduler) Add(spec, name string, r Refresher) error {
	_, err := s.cron.AddFunc(spec, func() { s.run(name, r) })
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	s.log.Infof("Scheduled %s (%s)", name, spec)
	return nil
}

// RunNow executes r once outside the schedule
func (s *Scheduler) RunNow(name string, r Refresher) {
	s.run(name, r)
}

func (s *Scheduler) run(name string, r Refresher) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := r.Refresh(ctx); err != nil {
		s.log.Errorf("Job %s failed: %v", name, err)
		return
	}
	s.log.Debugf("Job %s completed", name)
}

// Start begins running scheduled jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
