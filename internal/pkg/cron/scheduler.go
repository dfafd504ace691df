package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs registered interval jobs until stopped.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job; call before Start.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	s.mu.Unlock()

	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job. Every job runs once
// immediately and then on its interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go func(j job) {
			defer s.wg.Done()
			s.loop(j)
		}(j)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for them to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.run(j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.run(j)
		}
	}
}

func (s *Scheduler) run(j job) {
	start := time.Now()
	if err := j.fn(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
}
