package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/cellpad/internal/dispatcher/handler"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	commands map[string]*CommandMetrics

	totalDispatches uint64
	totalErrors     uint64
	totalPanics     uint64
	totalDropped    uint64
	totalDuration   time.Duration
}

// CommandMetrics holds metrics for a specific command.
type CommandMetrics struct {
	Name          string
	DispatchCount uint64
	ErrorCount    uint64
	PanicCount    uint64
	TotalDuration time.Duration
	MaxDuration   time.Duration
	LastStatus    handler.ResultStatus
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	TotalDispatches uint64
	TotalErrors     uint64
	TotalPanics     uint64
	TotalDropped    uint64
	AverageDuration time.Duration
	Commands        []CommandMetrics
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{commands: make(map[string]*CommandMetrics)}
}

func (m *Metrics) command(name string) *CommandMetrics {
	cm := m.commands[name]
	if cm == nil {
		cm = &CommandMetrics{Name: name}
		m.commands[name] = cm
	}
	return cm
}

// RecordDispatch records an applied command.
func (m *Metrics) RecordDispatch(name string, duration time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	cm := m.command(name)
	cm.DispatchCount++
	cm.TotalDuration += duration
	cm.LastStatus = status
	if duration > cm.MaxDuration {
		cm.MaxDuration = duration
	}
	if status == handler.StatusError {
		m.totalErrors++
		cm.ErrorCount++
	}
}

// RecordPanic records a recovered command panic.
func (m *Metrics) RecordPanic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
	m.command(name).PanicCount++
}

// RecordDropped records an event no family accepted.
func (m *Metrics) RecordDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalDropped++
}

// Snapshot returns a copy of the metrics with commands sorted by dispatch
// count, most used first.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		TotalDispatches: m.totalDispatches,
		TotalErrors:     m.totalErrors,
		TotalPanics:     m.totalPanics,
		TotalDropped:    m.totalDropped,
		Commands:        make([]CommandMetrics, 0, len(m.commands)),
	}
	if m.totalDispatches > 0 {
		snap.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	for _, cm := range m.commands {
		snap.Commands = append(snap.Commands, *cm)
	}
	sort.Slice(snap.Commands, func(i, j int) bool {
		a, b := snap.Commands[i], snap.Commands[j]
		if a.DispatchCount != b.DispatchCount {
			return a.DispatchCount > b.DispatchCount
		}
		return a.Name < b.Name
	})
	return snap
}
