package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		level   string
		coins   int
		outcome string
		ticks   int
	}{
		{"meadow", 5, OutcomeLoss, 1200},
		{"meadow", 12, OutcomeWin, 4800},
		{"meadow", 8, OutcomeWin, 3600},
		{"caverns", 20, OutcomeWin, 9000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.level, r.coins, r.outcome, r.ticks); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.TopRuns("meadow", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Sorted by coins descending
	if entries[0].Coins != 12 || entries[1].Coins != 8 || entries[2].Coins != 5 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
	if entries[0].Outcome != OutcomeWin {
		t.Errorf("Expected win outcome, got %q", entries[0].Outcome)
	}

	other, err := store.TopRuns("caverns", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 caverns run, got %d", len(other))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("meadow", (i+1)*10, OutcomeWin, 1000)
	}

	entries, err := store.TopRuns("meadow", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(entries))
	}
	if entries[0].Coins != 50 || entries[1].Coins != 40 || entries[2].Coins != 30 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
}

func TestStoreBestCoins(t *testing.T) {
	store := openTestStore(t)

	// Empty table
	best, err := store.BestCoins("meadow")
	if err != nil {
		t.Fatalf("BestCoins() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty table, got %d", best)
	}

	store.SaveRun("meadow", 7, OutcomeLoss, 500)
	store.SaveRun("meadow", 15, OutcomeWin, 2000)

	best, err = store.BestCoins("meadow")
	if err != nil {
		t.Fatalf("BestCoins() failed: %v", err)
	}
	if best != 15 {
		t.Errorf("Expected best coins 15, got %d", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("summit", 3, OutcomeLoss, 700)
	store.SaveRun("summit", 10, OutcomeWin, 5000)
	store.SaveRun("summit", 6, OutcomeWin, 4200)

	stats, err := store.Stats("summit")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, want 2", stats.Wins)
	}
	if stats.BestCoins != 10 {
		t.Errorf("BestCoins = %d, want 10", stats.BestCoins)
	}
	if stats.BestTicks != 4200 {
		t.Errorf("BestTicks = %d, want 4200 (fastest win)", stats.BestTicks)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("meadow", 5, OutcomeWin, 100)
	store.SaveRun("caverns", 5, OutcomeWin, 100)

	if err := store.ClearRuns("meadow"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	entries, _ := store.TopRuns("meadow", 10)
	if len(entries) != 0 {
		t.Errorf("Expected no meadow runs after clear, got %d", len(entries))
	}

	kept, _ := store.TopRuns("caverns", 10)
	if len(kept) != 1 {
		t.Errorf("Clear must not touch other levels, got %d", len(kept))
	}
}
