package sqlitestore

import (
	"testing"

	"github.com/idilsaglam/packsmart/internal/model"
)

func TestSQLiteSlot(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer s.Close()

	t.Run("empty slot loads as empty collection", func(t *testing.T) {
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Load = %d checklists, want 0", len(got))
		}
	})

	sample := []model.Checklist{{
		ID:          "cl-1",
		Name:        "City Break",
		Destination: "London",
		StartDate:   "2026-03-01",
		EndDate:     "2026-03-04",
		Categories: []model.Category{{
			ID:   "cat-1",
			Name: "Essentials",
			Items: []model.Item{
				{ID: "it-1", Name: "Passport", Quantity: 1},
				{ID: "it-2", Name: "Umbrella", IsPacked: true, Quantity: 1, Priority: model.PriorityHigh},
			},
		}},
	}}

	t.Run("save then load round-trips", func(t *testing.T) {
		if err := s.Save(sample); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "cl-1" {
			t.Fatalf("round trip lost data: %+v", got)
		}
		it := got[0].Categories[0].Items[1]
		if !it.IsPacked || it.Priority != model.PriorityHigh {
			t.Errorf("item fields lost: %+v", it)
		}
	})

	t.Run("save overwrites the single slot", func(t *testing.T) {
		if err := s.Save([]model.Checklist{}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Load = %d checklists after overwrite, want 0", len(got))
		}
	})
}
