package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/deadzone/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(core.RunSummary{
		Map:       "outpost",
		Character: "magician",
		Round:     7,
		Kills:     42,
		Points:    3150,
		Millis:    125500,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a uuid: %v", id, err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() = nil, expected the saved run")
	}
	if run.Map != "outpost" || run.Character != "magician" || run.Round != 7 || run.Kills != 42 || run.Points != 3150 {
		t.Errorf("run = %+v", run)
	}
	if run.Duration != 125500*time.Millisecond {
		t.Errorf("Duration = %v, expected 2m5.5s", run.Duration)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("RunByID() = %+v, expected nil", run)
	}
}

func TestBestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []core.RunSummary{
		{Map: "outpost", Character: "default", Round: 3, Kills: 20},
		{Map: "outpost", Character: "default", Round: 9, Kills: 80},
		{Map: "outpost", Character: "default", Round: 9, Kills: 95},
		{Map: "compound", Character: "default", Round: 15, Kills: 200},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("outpost", 2)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("len(BestRuns) = %d, expected 2", len(best))
	}
	if best[0].Kills != 95 || best[1].Kills != 80 {
		t.Errorf("order = %d, %d kills, expected 95 then 80", best[0].Kills, best[1].Kills)
	}

	recent, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Errorf("len(RecentRuns) = %d, expected 4", len(recent))
	}
	if recent[0].Map != "compound" {
		t.Errorf("most recent run map = %s, expected compound", recent[0].Map)
	}
}

func TestRunStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetRunStats("compound")
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestRound != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(core.RunSummary{Map: "compound", Round: 4, Kills: 30, Millis: 60000})
	store.SaveRun(core.RunSummary{Map: "compound", Round: 6, Kills: 50, Millis: 90000})

	stats, err := store.GetRunStats("compound")
	if err != nil {
		t.Fatalf("GetRunStats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestRound != 6 || stats.TotalKills != 80 {
		t.Errorf("stats = %+v, expected 2 runs, best 6, 80 kills", stats)
	}
	if stats.PlayTime != 150*time.Second {
		t.Errorf("PlayTime = %v, expected 2m30s", stats.PlayTime)
	}
}
