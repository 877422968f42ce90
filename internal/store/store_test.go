package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.StateRepo().SaveState(context.Background(), []byte(`{"a":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	got, err := second.StateRepo().LoadState(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("payload = %q after reopen", got)
	}
}

func TestStateSaveLoadClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	// Nothing saved yet.
	got, err := repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil payload, got %q", got)
	}

	if err := repo.SaveState(ctx, []byte("first")); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := repo.SaveState(ctx, []byte("second")); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err = repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("payload = %q, want %q", got, "second")
	}

	var rows int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM records").Scan(&rows); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if rows != 1 {
		t.Errorf("records = %d, want a single upserted row", rows)
	}

	if err := repo.ClearState(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err = repo.LoadState(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil payload after clear, got %q", got)
	}
}

func TestAttemptAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{ID: "a1", Score: 1, Total: 3, FinishedAt: base},
		{ID: "a2", Score: 3, Total: 3, FinishedAt: base.Add(time.Minute)},
		{ID: "a3", Score: 2, Total: 3, FinishedAt: base.Add(2 * time.Minute)},
	}
	for _, a := range attempts {
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("append %s: %v", a.ID, err)
		}
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(recent))
	}
	if recent[0].ID != "a3" || recent[1].ID != "a2" {
		t.Errorf("order = [%s %s], want [a3 a2]", recent[0].ID, recent[1].ID)
	}
	if !recent[0].FinishedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("finished_at = %v", recent[0].FinishedAt)
	}
	if recent[0].Score != 2 || recent[0].Total != 3 {
		t.Errorf("score = %d/%d, want 2/3", recent[0].Score, recent[0].Total)
	}

	all, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 attempts, got %d", len(all))
	}
}

func TestAttemptDuplicateID(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	a := Attempt{ID: "dup", Score: 1, Total: 3, FinishedAt: time.Now()}
	if err := repo.Append(ctx, a); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, a); err == nil {
		t.Fatal("expected unique constraint error on duplicate attempt id")
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if stats != (AttemptStats{}) {
		t.Errorf("empty stats = %+v", stats)
	}

	for i, score := range []int{2, 3, 1} {
		a := Attempt{ID: string(rune('a' + i)), Score: score, Total: 3, FinishedAt: time.Now()}
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err = repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Count != 3 || stats.BestScore != 3 {
		t.Errorf("stats = %+v, want count 3 best 3", stats)
	}
}

func TestWithPragmas(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"app.db", "app.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"},
		{"file:app.db?mode=rwc", "file:app.db?mode=rwc&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=synchronous(NORMAL)"},
	}
	for _, tt := range tests {
		if got := withPragmas(tt.in); got != tt.want {
			t.Errorf("withPragmas(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
