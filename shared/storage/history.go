package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// History keeps a persistent record of analyzed videos so the UI can show
// recent analyses across restarts. Records expire after maxAge.
type History struct {
	filePath string
	records  map[string]Record
	mu       sync.RWMutex
	maxAge   time.Duration
}

// Record is one completed analysis.
type Record struct {
	VideoID    string    `json:"video_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category,omitempty"`
	SEOScore   int       `json:"seo_score"`
	Source     string    `json:"source"` // "model" or "heuristic"
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// NewHistory creates a history store backed by a JSON file in dataDir.
func NewHistory(dataDir string, maxAge time.Duration) (*History, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	h := &History{
		filePath: filepath.Join(dataDir, "analysis_history.json"),
		records:  make(map[string]Record),
		maxAge:   maxAge,
	}

	if err := h.load(); err != nil {
		return nil, fmt.Errorf("failed to load analysis history: %w", err)
	}
	h.prune()

	return h, nil
}

// Add records an analysis, replacing any earlier record for the same video.
func (h *History) Add(rec Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rec.AnalyzedAt.IsZero() {
		rec.AnalyzedAt = time.Now()
	}
	h.records[rec.VideoID] = rec
	return h.save()
}

// Recent returns up to n records, newest first.
func (h *History) Recent(n int) []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Record, 0, len(h.records))
	for _, rec := range h.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AnalyzedAt.After(out[j].AnalyzedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Count returns the number of stored records.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Prune drops records older than maxAge and persists the result. Called
// periodically by the maintenance schedule.
func (h *History) Prune() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.prune()
	return h.save()
}

func (h *History) prune() {
	cutoff := time.Now().Add(-h.maxAge)
	for id, rec := range h.records {
		if rec.AnalyzedAt.Before(cutoff) {
			delete(h.records, id)
		}
	}
}

func (h *History) load() error {
	file, err := os.Open(h.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	var records []Record
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return fmt.Errorf("failed to decode history data: %w", err)
	}
	for _, rec := range records {
		h.records[rec.VideoID] = rec
	}
	return nil
}

func (h *History) save() error {
	records := make([]Record, 0, len(h.records))
	for _, rec := range h.records {
		records = append(records, rec)
	}

	file, err := os.Create(h.filePath)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}
