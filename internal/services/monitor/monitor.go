// Package monitor revalidates the pillar on a fixed interval.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/infrastructure/logger"
)

// ErrAlreadyRunning is returned by Start on a running monitor.
var ErrAlreadyRunning = errors.New("pillar monitor is already running")

// Config holds monitor settings.
type Config struct {
	Interval time.Duration
	Timeout  time.Duration
	Deployed []domain.Node
}

// Stats summarizes the validations run so far.
type Stats struct {
	TotalChecks        int64                    `json:"total_checks"`
	TotalInvalid       int64                    `json:"total_invalid"`
	TotalErrors        int64                    `json:"total_errors"`
	ConsecutiveValid   int                      `json:"consecutive_valid"`
	ConsecutiveInvalid int                      `json:"consecutive_invalid"`
	LastCheckTime      time.Time                `json:"last_check_time"`
	LastError          string                   `json:"last_error,omitempty"`
	LastReport         *domain.ValidationReport `json:"-"`
	Running            bool                     `json:"running"`
}

// Monitor runs pillar validation in the background.
type Monitor struct {
	config   Config
	service  domain.ValidationService
	onChange func(valid bool, report *domain.ValidationReport)
	logger   domain.Logger

	statsMu   sync.RWMutex
	stats     Stats
	lastValid *bool

	runningMu sync.Mutex
	running   bool
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// New creates a monitor. onChange, when set, is called whenever the
// pillar flips between valid and invalid, and after the first check.
func New(
	config Config,
	service domain.ValidationService,
	onChange func(valid bool, report *domain.ValidationReport),
	log domain.Logger,
) *Monitor {
	if config.Interval <= 0 {
		config.Interval = time.Minute
	}
	if config.Timeout <= 0 {
		config.Timeout = domain.DefaultSourceTimeout
	}

	return &Monitor{
		config:   config,
		service:  service,
		onChange: onChange,
		logger:   log.With(logger.Component("pillar_monitor")),
	}
}

// Start begins periodic validation. The first check runs immediately.
func (m *Monitor) Start(ctx context.Context) error {
	m.runningMu.Lock()
	defer m.runningMu.Unlock()

	if m.running {
		return ErrAlreadyRunning
	}
	m.running = true
	m.stopCh = make(chan struct{})
	m.stoppedCh = make(chan struct{})

	m.logger.Info("Starting pillar monitoring",
		logger.Duration("interval", m.config.Interval),
		logger.Int("deployed", len(m.config.Deployed)))

	go m.loop(ctx, m.stopCh, m.stoppedCh)
	return nil
}

// Stop halts periodic validation and waits for the running check.
func (m *Monitor) Stop() {
	m.runningMu.Lock()
	if !m.running {
		m.runningMu.Unlock()
		return
	}
	stopCh, stoppedCh := m.stopCh, m.stoppedCh
	m.running = false
	m.runningMu.Unlock()

	close(stopCh)
	<-stoppedCh

	m.logger.Info("Pillar monitor stopped")
}

func (m *Monitor) loop(ctx context.Context, stopCh <-chan struct{}, stoppedCh chan<- struct{}) {
	defer close(stoppedCh)

	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	m.CheckNow(ctx)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Pillar monitoring stopped due to context cancellation")
			m.runningMu.Lock()
			m.running = false
			m.runningMu.Unlock()
			return
		case <-stopCh:
			return
		case <-ticker.C:
			m.CheckNow(ctx)
		}
	}
}

// CheckNow runs one validation and updates the statistics.
func (m *Monitor) CheckNow(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	report, err := m.service.Validate(checkCtx, m.config.Deployed)
	m.record(report, err)
}

func (m *Monitor) record(report *domain.ValidationReport, err error) {
	m.statsMu.Lock()

	m.stats.TotalChecks++
	m.stats.LastCheckTime = time.Now()

	if err != nil {
		m.stats.TotalErrors++
		m.stats.LastError = err.Error()
		m.statsMu.Unlock()

		m.logger.Warn("Periodic pillar validation failed", logger.Error(err))
		return
	}

	m.stats.LastError = ""
	m.stats.LastReport = report
	if report.Valid {
		m.stats.ConsecutiveValid++
		m.stats.ConsecutiveInvalid = 0
	} else {
		m.stats.TotalInvalid++
		m.stats.ConsecutiveInvalid++
		m.stats.ConsecutiveValid = 0
	}

	changed := m.lastValid == nil || *m.lastValid != report.Valid
	valid := report.Valid
	m.lastValid = &valid
	m.statsMu.Unlock()

	if !changed {
		return
	}

	fields := []domain.Field{logger.Source(report.Source), {Key: "valid", Value: report.Valid}}
	if report.Issue != nil {
		fields = append(fields, logger.Kind(report.Issue.Kind), logger.String("message", report.Issue.Error()))
	}
	m.logger.Info("Pillar validity changed", fields...)

	if m.onChange != nil {
		m.onChange(report.Valid, report)
	}
}

// Stats returns a snapshot of the monitor statistics.
func (m *Monitor) Stats() Stats {
	m.statsMu.RLock()
	stats := m.stats
	m.statsMu.RUnlock()

	m.runningMu.Lock()
	stats.Running = m.running
	m.runningMu.Unlock()

	return stats
}
