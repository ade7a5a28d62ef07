package job

import (
	"context"
	"sync"
	"time"

	"hud/utils/logger"
)

// Job is a named periodic task. Run receives a context bounded by Timeout;
// long-running work must honor cancellation.
type Job struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs registered jobs on their intervals until the start context
// is cancelled. Each job fires once immediately on Start.
type Scheduler struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Register(j Job) {
	s.jobs = append(s.jobs, j)
}

func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(ctx, j)
	}
}

func (s *Scheduler) loop(ctx context.Context, j Job) {
	defer s.wg.Done()

	s.fire(ctx, j)

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Logger.InfoContext(ctx, "stopping background job", "job", j.Name)
			return
		case <-ticker.C:
			s.fire(ctx, j)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context, j Job) {
	if ctx.Err() != nil {
		return
	}

	jobCtx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	start := time.Now()
	if err := j.Run(jobCtx); err != nil {
		logger.Logger.ErrorContext(ctx, "background job failed",
			"job", j.Name, "duration", time.Since(start), "error", err)
		return
	}
	logger.Logger.InfoContext(ctx, "background job completed",
		"job", j.Name, "duration", time.Since(start))
}

// Shutdown blocks until every job loop has returned. Cancel the context
// passed to Start before calling.
func (s *Scheduler) Shutdown() {
	s.wg.Wait()
}
