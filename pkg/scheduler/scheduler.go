package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"ads-api/pkg/logger"
)

// EventScheduler งาน background ตาม cron (เช่น janitor ของ memory cache)
type EventScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	RemoveJob(id string) error
	ListJobs() map[string]JobInfo
	IsRunning() bool
}

type JobInfo struct {
	ID       string
	CronExpr string
	LastRun  *time.Time
	NextRun  time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*gocron.Job
	cron      map[string]string
	lastRun   map[string]time.Time
	mu        sync.RWMutex
	running   bool
}

func NewEventScheduler() EventScheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &GocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*gocron.Job),
		cron:      make(map[string]string),
		lastRun:   make(map[string]time.Time),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Event scheduler started", "jobs", len(s.jobs))
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.scheduler.Stop()
	s.running = false
	logger.Info("Event scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Do(func() {
		s.mu.Lock()
		s.lastRun[id] = time.Now()
		s.mu.Unlock()

		task()
	})
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", id, err)
	}

	s.jobs[id] = job
	s.cron[id] = cronExpr
	logger.Info("Job added", "id", id, "cron", cronExpr)
	return nil
}

func (s *GocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job with ID %s not found", id)
	}

	s.scheduler.RemoveByReference(job)
	delete(s.jobs, id)
	delete(s.cron, id)
	delete(s.lastRun, id)
	logger.Info("Job removed", "id", id)
	return nil
}

func (s *GocronScheduler) ListJobs() map[string]JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]JobInfo, len(s.jobs))
	for id, job := range s.jobs {
		info := JobInfo{ID: id, CronExpr: s.cron[id], NextRun: job.NextRun()}
		if t, ok := s.lastRun[id]; ok {
			last := t
			info.LastRun = &last
		}
		out[id] = info
	}
	return out
}

// ValidateCronExpression ตรวจ cron ก่อนใช้จริง
func ValidateCronExpression(cronExpr string) error {
	_, err := gocron.NewScheduler(time.UTC).Cron(cronExpr).Do(func() {})
	if err != nil {
		return fmt.Errorf("invalid cron expression: %w", err)
	}
	return nil
}
