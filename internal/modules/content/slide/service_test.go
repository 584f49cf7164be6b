package slide

import "testing"

func TestListSortsByOrder(t *testing.T) {
	svc := NewService()

	items := svc.List()
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded slides, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Order > items[i].Order {
			t.Fatalf("slides out of order at %d: %d > %d", i, items[i-1].Order, items[i].Order)
		}
	}
}

func TestCreateAppendsAfterTail(t *testing.T) {
	svc := NewService()

	sl := svc.Create(&CreateSlideDTO{Title: "New offer", ImageURL: "/static/x.jpg"})
	if sl.Order != 4 {
		t.Fatalf("expected order 4 for appended slide, got %d", sl.Order)
	}
	if svc.GetByID(sl.ID) == nil {
		t.Fatal("created slide not retrievable")
	}
}

func TestReorderRewritesPositions(t *testing.T) {
	svc := NewService()
	items := svc.List()

	// Reverse the carousel.
	ids := []string{items[2].ID, items[1].ID, items[0].ID}
	out := svc.Reorder(ids)

	if len(out) != 3 {
		t.Fatalf("expected 3 slides back, got %d", len(out))
	}
	for i, id := range ids {
		sl := svc.GetByID(id)
		if sl == nil {
			t.Fatalf("slide %s lost during reorder", id)
		}
		if sl.Order != i+1 {
			t.Errorf("slide %s order = %d, want %d", id, sl.Order, i+1)
		}
	}
	if out[0].ID != items[2].ID {
		t.Errorf("reordered list head = %s, want %s", out[0].ID, items[2].ID)
	}
}

func TestReorderIgnoresUnknownIDs(t *testing.T) {
	svc := NewService()
	before := svc.List()

	out := svc.Reorder([]string{"not-a-slide", before[0].ID})
	if len(out) != len(before) {
		t.Fatalf("unknown id changed collection size: %d", len(out))
	}
	// The known id lands at position 2 (order 2).
	if sl := svc.GetByID(before[0].ID); sl.Order != 2 {
		t.Errorf("order = %d, want 2", sl.Order)
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	svc := NewService()
	id := svc.List()[0].ID

	title := "Updated headline"
	sl := svc.Update(id, &UpdateSlideDTO{Title: &title})
	if sl == nil {
		t.Fatal("update of existing slide returned nil")
	}
	if sl.Title != title {
		t.Errorf("Title = %q", sl.Title)
	}
	if sl.Description == "" {
		t.Error("untouched field was cleared")
	}

	if svc.Update("missing", &UpdateSlideDTO{Title: &title}) != nil {
		t.Error("update of absent slide should return nil")
	}
}
