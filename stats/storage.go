package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MonthlyStats aggregates audit activity for one calendar month.
type MonthlyStats struct {
	AuditsRun     int            `json:"audits_run"`
	AuditErrors   int            `json:"audit_errors"`
	PagesAnalyzed int            `json:"pages_analyzed"`
	Archetypes    map[string]int `json:"archetypes"`
	LastUpdated   time.Time      `json:"last_updated"`
}

// Storage persists audit usage statistics to a JSON file, keyed by month.
type Storage struct {
	mutex       sync.RWMutex
	stats       map[string]*MonthlyStats // key: "YYYY-MM"
	filePath    string
	lastWrite   time.Time
	writeBuffer chan struct{}
	done        chan struct{}
}

// NewStorage creates a statistics store under dataDir, loading any
// previously persisted months.
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{
		stats:       make(map[string]*MonthlyStats),
		filePath:    filepath.Join(dataDir, "stats.json"),
		writeBuffer: make(chan struct{}, 1),
		done:        make(chan struct{}),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	go s.backgroundWriter()

	return s, nil
}

func (s *Storage) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return json.Unmarshal(data, &s.stats)
}

func (s *Storage) save() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.stats)
	s.mutex.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	// Write to a temporary file, then rename for an atomic replace.
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, s.filePath); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

func (s *Storage) backgroundWriter() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.writeBuffer:
			s.save()
		case <-ticker.C:
			s.save()
		case <-s.done:
			return
		}
	}
}

func currentMonth() string {
	return time.Now().Format("2006-01")
}

// requestWrite signals that a write to disk is needed. Non-blocking; a
// pending write already covers the change.
func (s *Storage) requestWrite() {
	select {
	case s.writeBuffer <- struct{}{}:
	default:
	}
}

// RecordAudit tallies one audit run into the current month.
func (s *Storage) RecordAudit(archetype string, pageCount int, failed bool) {
	month := currentMonth()

	s.mutex.Lock()
	stats, exists := s.stats[month]
	if !exists {
		stats = &MonthlyStats{Archetypes: make(map[string]int)}
		s.stats[month] = stats
	}
	if stats.Archetypes == nil {
		stats.Archetypes = make(map[string]int)
	}

	stats.AuditsRun++
	stats.PagesAnalyzed += pageCount
	if failed {
		stats.AuditErrors++
	} else if archetype != "" {
		stats.Archetypes[archetype]++
	}
	stats.LastUpdated = time.Now()

	needsWrite := time.Since(s.lastWrite) > time.Minute
	if needsWrite {
		s.lastWrite = time.Now()
	}
	s.mutex.Unlock()

	if needsWrite {
		s.requestWrite()
	}
}

// GetCurrentStats returns a copy of the current month's statistics.
func (s *Storage) GetCurrentStats() MonthlyStats {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stats, exists := s.stats[currentMonth()]; exists {
		out := *stats
		out.Archetypes = make(map[string]int, len(stats.Archetypes))
		for k, v := range stats.Archetypes {
			out.Archetypes[k] = v
		}
		return out
	}
	return MonthlyStats{Archetypes: map[string]int{}}
}

// GetAllMonths returns the months with recorded statistics, newest first.
func (s *Storage) GetAllMonths() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	months := make([]string, 0, len(s.stats))
	for month := range s.stats {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// Shutdown flushes statistics and stops the background writer.
func (s *Storage) Shutdown() error {
	close(s.done)
	if err := s.save(); err != nil {
		return fmt.Errorf("failed to save stats during shutdown: %w", err)
	}
	return nil
}
