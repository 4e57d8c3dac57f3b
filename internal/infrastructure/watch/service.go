// Package watch re-runs audits when a document changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/logging"
)

// AuditFunc runs one audit pass over the document at path.
type AuditFunc func(ctx context.Context, path string) (*entity.Report, error)

// ReportFunc renders a finished report.
type ReportFunc func(*entity.Report)

// Service watches one document and re-audits it on write/create events.
// Reports whose fingerprint matches the previous pass are suppressed: a save
// that changed nothing observable produces no output.
type Service struct {
	path     string
	debounce time.Duration
	audit    AuditFunc
	render   ReportFunc

	mu          sync.Mutex
	timer       *time.Timer
	fingerprint string
}

// NewService creates a watch service for the document at path.
func NewService(path string, debounceMs int, audit AuditFunc, render ReportFunc) *Service {
	if debounceMs <= 0 {
		debounceMs = 400
	}
	return &Service{
		path:     filepath.Clean(path),
		debounce: time.Duration(debounceMs) * time.Millisecond,
		audit:    audit,
		render:   render,
	}
}

// Run audits the document once, then blocks watching for changes until the
// context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors save by writing a temp
	// file and renaming it over the original, which kills a watch on the
	// old inode.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	s.runAudit(ctx)

	log.Info().Str("file", s.path).Dur("debounce", s.debounce).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			s.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("document changed")
			s.schedule(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}

// schedule arms the debounce timer, restarting it if a burst is in progress.
func (s *Service) schedule(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.runAudit(ctx)
	})
}

func (s *Service) stopTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) runAudit(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	report, err := s.audit(ctx, s.path)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("file", s.path).Msg("audit failed")
		return
	}

	fp := report.Fingerprint()
	s.mu.Lock()
	unchanged := s.fingerprint != "" && fp == s.fingerprint
	s.fingerprint = fp
	s.mu.Unlock()

	if unchanged {
		logging.FromContext(ctx).Debug().Str("file", s.path).Msg("no observable change, report suppressed")
		return
	}

	s.render(report)
}
