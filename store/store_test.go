package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/HSellappan/railfocus/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "railfocus.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func TestSaveAndGetJourneys(t *testing.T) {
	c := newTestClient(t)

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	records := []models.JourneyRecord{
		{
			StartTime:   base,
			EndTime:     base.Add(25 * time.Minute),
			Origin:      "Paris",
			Destination: "Lyon",
			Duration:    25 * time.Minute,
			StopsPassed: 7,
			StopsTotal:  7,
			Completed:   true,
		},
		{
			StartTime:   base.Add(2 * time.Hour),
			EndTime:     base.Add(2*time.Hour + 10*time.Minute),
			Origin:      "Lyon",
			Destination: "Marseille",
			Duration:    30 * time.Minute,
			StopsPassed: 3,
			StopsTotal:  8,
		},
	}

	for i := range records {
		if err := c.SaveJourney(&records[i]); err != nil {
			t.Fatalf("save journey: %v", err)
		}
	}

	got, err := c.GetJourneys(base.Add(-time.Hour), base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("get journeys: %v", err)
	}

	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("journeys mismatch (-want +got):\n%s", diff)
	}

	// bounds exclude the second record
	got, err = c.GetJourneys(base.Add(-time.Hour), base.Add(time.Hour))
	if err != nil {
		t.Fatalf("get journeys: %v", err)
	}

	if len(got) != 1 {
		t.Errorf("expected 1 journey in narrow bounds, got %d", len(got))
	}
}

func TestSnapshotLifecycle(t *testing.T) {
	c := newTestClient(t)

	if _, err := c.GetSnapshot(); !errors.Is(err, ErrNoSuspendedJourney) {
		t.Fatalf("expected ErrNoSuspendedJourney, got %v", err)
	}

	snap := &models.JourneySnapshot{
		StartTime:   time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
		SuspendedAt: time.Date(2026, time.March, 1, 9, 10, 0, 0, time.UTC),
		Origin:      "Paris",
		Destination: "Lyon",
		Duration:    25 * time.Minute,
		Elapsed:     10 * time.Minute,
		StopNames:   []string{"Riverbend", "Oakhaven"},
	}

	if err := c.SaveSnapshot(snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	got, err := c.GetSnapshot()
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}

	if diff := cmp.Diff(snap, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	if err := c.ClearSnapshot(); err != nil {
		t.Fatalf("clear snapshot: %v", err)
	}

	if _, err := c.GetSnapshot(); !errors.Is(err, ErrNoSuspendedJourney) {
		t.Errorf("expected ErrNoSuspendedJourney after clear, got %v", err)
	}
}
