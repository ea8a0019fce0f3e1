package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/booklist/internal/entities"
	"github.com/mrlokans/booklist/internal/exporters"
)

// BookLister provides the snapshot that gets exported.
type BookLister interface {
	ListAll(ctx context.Context) ([]entities.RankedBook, error)
}

// ExportSyncConfig describes where and how often the list is exported.
type ExportSyncConfig struct {
	Enabled  bool
	Path     string
	Format   exporters.Format
	Schedule string // Cron format: "0 * * * *" = hourly
}

// ExportSyncStatus reports the outcome of the most recent export.
type ExportSyncStatus struct {
	LastRunAt   time.Time
	LastStatus  string // "success" or "failed"
	LastMessage string
}

// ExportSyncScheduler periodically writes the book list to a file.
type ExportSyncScheduler struct {
	lister BookLister
	config ExportSyncConfig
	now    func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	statusMu sync.RWMutex
	status   ExportSyncStatus
}

func NewExportSyncScheduler(lister BookLister, config ExportSyncConfig) *ExportSyncScheduler {
	return &ExportSyncScheduler{
		lister: lister,
		config: config,
		now:    time.Now,
		cron:   cron.New(cron.WithParser(newParser())),
	}
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
}

// ValidateCronSchedule checks a 5-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := newParser().Parse(schedule)
	return err
}

// NextRunTime returns the next activation of schedule after from.
func NextRunTime(schedule string, from time.Time) (time.Time, error) {
	sched, err := newParser().Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

// Start begins the scheduler if export sync is enabled
func (s *ExportSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Export sync scheduler: disabled")
		return nil
	}

	if s.config.Path == "" {
		log.Printf("Export sync scheduler: export path not configured, skipping")
		return nil
	}

	if err := ValidateCronSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if err := s.RunNow(ctx); err != nil {
			log.Printf("Export sync: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.config.Schedule, s.now())
	log.Printf("Export sync scheduler: started with schedule '%s'. Next run: %v", s.config.Schedule, nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running export to finish and stops the scheduler.
func (s *ExportSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Export sync scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *ExportSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next export will occur, or nil when stopped.
func (s *ExportSyncScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// Status returns the outcome of the last export.
func (s *ExportSyncScheduler) Status() ExportSyncStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

// RunNow exports the current list synchronously.
func (s *ExportSyncScheduler) RunNow(ctx context.Context) error {
	startTime := s.now()

	if s.config.Path == "" {
		err := fmt.Errorf("export path not configured")
		s.setStatus(startTime, "failed", err.Error())
		return err
	}

	books, err := s.lister.ListAll(ctx)
	if err != nil {
		s.setStatus(startTime, "failed", fmt.Sprintf("Failed to list books: %v", err))
		return fmt.Errorf("failed to list books: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.config.Path), 0755); err != nil {
		s.setStatus(startTime, "failed", err.Error())
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	if err := exporters.WriteFile(s.config.Path, s.config.Format, books, startTime); err != nil {
		s.setStatus(startTime, "failed", err.Error())
		return err
	}

	message := fmt.Sprintf("Exported %d books to %s", len(books), s.config.Path)
	log.Printf("Export sync: %s", message)
	s.setStatus(startTime, "success", message)
	return nil
}

func (s *ExportSyncScheduler) setStatus(at time.Time, status, message string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status = ExportSyncStatus{
		LastRunAt:   at,
		LastStatus:  status,
		LastMessage: message,
	}
}
