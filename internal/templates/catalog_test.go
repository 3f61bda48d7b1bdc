package templates

import "testing"

func TestList(t *testing.T) {
	tpls := List()
	if len(tpls) != 4 {
		t.Fatalf("templates = %d, want 4", len(tpls))
	}
	wantOrder := []string{"beach-vacation", "business-trip", "camping-trip", "international-trip"}
	for i, tpl := range tpls {
		if tpl.ID != wantOrder[i] {
			t.Errorf("template %d = %q, want %q", i, tpl.ID, wantOrder[i])
		}
		if tpl.Name == "" || tpl.Description == "" || tpl.ImageURL == "" {
			t.Errorf("template %q missing seed fields", tpl.ID)
		}
		for _, cat := range tpl.Categories {
			for _, it := range cat.Items {
				if it.Quantity < 1 {
					t.Errorf("%s/%s/%s quantity = %d", tpl.ID, cat.Name, it.Name, it.Quantity)
				}
			}
		}
	}
}

func TestBeachVacationShape(t *testing.T) {
	tpl, ok := Find("beach-vacation")
	if !ok {
		t.Fatal("beach-vacation not found")
	}
	wantCounts := []int{7, 6, 5, 4}
	if len(tpl.Categories) != len(wantCounts) {
		t.Fatalf("categories = %d, want %d", len(tpl.Categories), len(wantCounts))
	}
	total := 0
	for i, cat := range tpl.Categories {
		if len(cat.Items) != wantCounts[i] {
			t.Errorf("category %q items = %d, want %d", cat.Name, len(cat.Items), wantCounts[i])
		}
		total += len(cat.Items)
	}
	if total != 22 {
		t.Errorf("total items = %d, want 22", total)
	}
}

func TestFindUnknown(t *testing.T) {
	if _, ok := Find("mars-expedition"); ok {
		t.Error("Find returned ok for an unknown id")
	}
	if _, ok := Find(""); ok {
		t.Error("Find returned ok for empty id")
	}
}
