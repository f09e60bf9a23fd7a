package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStorage(t *testing.T) {
	// Create temporary directory for test
	tempDir, err := os.MkdirTemp("", "stats-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	// Create new storage
	storage, err := NewStorage(tempDir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	t.Run("RecordAudit", func(t *testing.T) {
		storage.RecordAudit("saas-api", 12, false)
		storage.RecordAudit("general", 3, false)
		storage.RecordAudit("", 0, true)

		stats := storage.GetCurrentStats()
		if stats.AuditsRun != 3 {
			t.Errorf("Expected 3 audits run, got %d", stats.AuditsRun)
		}
		if stats.AuditErrors != 1 {
			t.Errorf("Expected 1 audit error, got %d", stats.AuditErrors)
		}
		if stats.PagesAnalyzed != 15 {
			t.Errorf("Expected 15 pages analyzed, got %d", stats.PagesAnalyzed)
		}
		if stats.Archetypes["saas-api"] != 1 || stats.Archetypes["general"] != 1 {
			t.Errorf("Unexpected archetype tally: %v", stats.Archetypes)
		}
	})

	t.Run("Persistence", func(t *testing.T) {
		// Force a save
		storage.requestWrite()
		time.Sleep(100 * time.Millisecond) // Give time for the write to complete

		// Create new storage instance pointing to same directory
		storage2, err := NewStorage(tempDir)
		if err != nil {
			t.Fatalf("Failed to create second storage: %v", err)
		}

		stats := storage2.GetCurrentStats()
		if stats.AuditsRun != 3 {
			t.Errorf("Expected 3 audits after reload, got %d", stats.AuditsRun)
		}
		if stats.Archetypes["saas-api"] != 1 {
			t.Errorf("Expected archetype tally to survive reload, got %v", stats.Archetypes)
		}
	})

	t.Run("MonthOrdering", func(t *testing.T) {
		oldMonth := time.Now().AddDate(0, -2, 0).Format("2006-01")
		storage.mutex.Lock()
		storage.stats[oldMonth] = &MonthlyStats{
			AuditsRun:   7,
			Archetypes:  map[string]int{"ecommerce": 7},
			LastUpdated: time.Now().AddDate(0, -2, 0),
		}
		storage.mutex.Unlock()

		months := storage.GetAllMonths()
		if len(months) < 2 {
			t.Fatalf("Expected at least 2 months, got %d", len(months))
		}
		if months[0] != time.Now().Format("2006-01") {
			t.Errorf("Expected newest month first, got %q", months[0])
		}
	})

	t.Run("CurrentStatsIsACopy", func(t *testing.T) {
		stats := storage.GetCurrentStats()
		stats.Archetypes["mutated"] = 99

		again := storage.GetCurrentStats()
		if _, ok := again.Archetypes["mutated"]; ok {
			t.Error("GetCurrentStats returned a shared map")
		}
	})

	t.Run("FileSize", func(t *testing.T) {
		// Force a save
		storage.requestWrite()
		time.Sleep(100 * time.Millisecond) // Give time for the write to complete

		info, err := os.Stat(filepath.Join(tempDir, "stats.json"))
		if err != nil {
			t.Fatalf("Failed to stat file: %v", err)
		}

		// File should be relatively small (< 1KB for this test data)
		if info.Size() > 1024 {
			t.Errorf("File size too large: %d bytes", info.Size())
		}
	})

	t.Run("ConcurrentAccess", func(t *testing.T) {
		done := make(chan bool)
		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					storage.RecordAudit("general", 1, false)
					storage.GetCurrentStats()
				}
				done <- true
			}()
		}

		// Wait for all goroutines to complete
		for i := 0; i < 10; i++ {
			<-done
		}

		stats := storage.GetCurrentStats()
		if stats.Archetypes["general"] < 1000 {
			t.Errorf("Expected at least 1000 general audits tallied, got %d", stats.Archetypes["general"])
		}
	})

	t.Run("Shutdown", func(t *testing.T) {
		if err := storage.Shutdown(); err != nil {
			t.Fatalf("Shutdown failed: %v", err)
		}
	})
}
