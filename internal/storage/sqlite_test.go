package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, sess Session) int64 {
	t.Helper()
	id, err := store.SaveSession(sess)
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	return id
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, Session{GameID: "towers", Outcome: "win", Earned: 40})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("towers")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 40 {
		t.Errorf("HighScore() = %d, expected 40 after reopen", high)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	in := Session{
		GameID:      "towers",
		Outcome:     "win",
		Ticks:       1234,
		Resources:   75,
		Lives:       10,
		TowersBuilt: 2,
		Spawned:     30,
		Defeated:    30,
		Earned:      600,
		Spent:       125,
	}
	first := save(t, store, in)
	second := save(t, store, Session{GameID: "towers", Outcome: "ongoing", Earned: 20})
	save(t, store, Session{GameID: "towers-hard", Outcome: "win", Earned: 80})

	recent, err := store.RecentSessions("towers", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(recent))
	}
	if recent[0].ID != second || recent[1].ID != first {
		t.Errorf("expected newest first, got ids %d, %d", recent[0].ID, recent[1].ID)
	}

	got := recent[1]
	in.ID = first
	in.CreatedAt = got.CreatedAt
	if got != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 sessions across modes, got %d", len(all))
	}
}

func TestStoreBestSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		save(t, store, Session{GameID: "towers", Outcome: "win", Earned: i * 100})
	}

	best, err := store.BestSessions("towers", 3)
	if err != nil {
		t.Fatalf("BestSessions() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("expected 3 sessions with limit, got %d", len(best))
	}
	if best[0].Earned != 500 || best[1].Earned != 400 || best[2].Earned != 300 {
		t.Errorf("sessions not in expected order: %+v", best)
	}

	save(t, store, Session{GameID: "towers-hard", Outcome: "ongoing", Earned: 450})
	overall, err := store.BestSessions("", 2)
	if err != nil {
		t.Fatalf("BestSessions(all) failed: %v", err)
	}
	if len(overall) != 2 || overall[1].GameID != "towers-hard" {
		t.Errorf("expected towers-hard second across modes, got %+v", overall)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("towers")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for an unplayed mode, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Session{GameID: "towers", Outcome: "win", Earned: 100})
	save(t, store, Session{GameID: "towers", Outcome: "win", Earned: 300})
	save(t, store, Session{GameID: "towers", Outcome: "loss", Earned: 50})
	save(t, store, Session{GameID: "towers", Outcome: "ongoing", Earned: 30})
	save(t, store, Session{GameID: "towers-easy", Outcome: "win", Earned: 999})

	stats, err := store.Stats("towers")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Sessions != 4 || stats.Wins != 2 || stats.Losses != 1 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.BestScore != 300 {
		t.Errorf("BestScore = %d, expected 300", stats.BestScore)
	}
	if stats.AvgScore != 120 {
		t.Errorf("AvgScore = %v, expected 120", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("towers-hard")
	if err != nil {
		t.Fatalf("Stats() on empty mode failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty mode: %+v", empty)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	save(t, store, Session{GameID: "towers", Outcome: "win"})
	save(t, store, Session{GameID: "towers-easy", Outcome: "win"})

	if err := store.ClearSessions("towers"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	if got, _ := store.RecentSessions("towers", 10); len(got) != 0 {
		t.Errorf("expected no towers sessions after clear, got %d", len(got))
	}
	if got, _ := store.RecentSessions("towers-easy", 10); len(got) != 1 {
		t.Error("other modes should not be affected by clear")
	}
}
