package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Monitor tracks the outcome of analysis requests for the health
// endpoints. Generation itself never fails; what can fail is the upstream
// metadata fetch, and that is what health reflects.
type Monitor struct {
	mu            sync.RWMutex
	analyses      int
	failures      int
	lastSuccess   bool
	lastRequestAt time.Time
	lastSummary   string
}

func NewMonitor() *Monitor {
	return &Monitor{lastSuccess: true}
}

func (m *Monitor) RecordAnalysis(summary string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.analyses++
	m.lastSuccess = true
	m.lastRequestAt = time.Now()
	m.lastSummary = summary

	log.Printf("Analysis completed - %s (took %v)", summary, duration)
}

func (m *Monitor) RecordFailure(err error, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failures++
	m.lastSuccess = false
	m.lastRequestAt = time.Now()
	m.lastSummary = err.Error()

	log.Printf("Analysis failed: %v (took %v)", err, duration)
}

func (m *Monitor) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastRequestAt.IsZero() {
		return true // No requests yet, assume healthy
	}
	return m.lastSuccess
}

func (m *Monitor) StatusSummary() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.lastRequestAt.IsZero() {
		return "No analyses yet"
	}

	state := "ok"
	if !m.lastSuccess {
		state = "failed"
	}
	return fmt.Sprintf("%d analyses, %d failures, last %s at %s (%s)",
		m.analyses, m.failures, state, m.lastRequestAt.Format("Jan 2 15:04"), m.lastSummary)
}
