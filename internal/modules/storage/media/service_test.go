package media

import (
	"testing"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

func TestListNewestFirst(t *testing.T) {
	svc := NewService()
	items := svc.List("")
	if len(items) != 3 {
		t.Fatalf("expected 3 seeded items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].UploadedAt.Before(items[i].UploadedAt) {
			t.Fatalf("items out of order at %d", i)
		}
	}
}

func TestListFiltersByType(t *testing.T) {
	svc := NewService()
	for _, it := range svc.List(models.MediaImage) {
		if it.Type != models.MediaImage {
			t.Fatalf("filter leaked type %q", it.Type)
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	svc := NewService()

	if got := svc.Search("MARKET REVIEW"); len(got) != 1 {
		t.Fatalf("title search = %d results", len(got))
	}
	// Matches the description of the review deck.
	if got := svc.Search("client briefings"); len(got) != 1 {
		t.Fatalf("description search = %d results", len(got))
	}
	if got := svc.Search("zzz-nothing"); len(got) != 0 {
		t.Fatalf("nonsense query matched %d items", len(got))
	}
}

func TestUpdateKeepsURLAndType(t *testing.T) {
	svc := NewService()
	orig := svc.List("")[0]

	title := "Renamed asset"
	updated := svc.Update(orig.ID, &UpdateMediaDTO{Title: &title})
	if updated == nil {
		t.Fatal("update returned nil for existing item")
	}
	if updated.Title != title {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.URL != orig.URL || updated.Type != orig.Type {
		t.Errorf("immutable fields changed: %q %q", updated.URL, updated.Type)
	}

	if svc.Update("missing", &UpdateMediaDTO{Title: &title}) != nil {
		t.Error("update of absent item should return nil")
	}
}

func TestCreateStampsUploadMetadata(t *testing.T) {
	svc := NewService()
	m := svc.Create(&CreateMediaDTO{
		Title: "Annual report", URL: "/static/media/annual.pdf",
		Type: models.MediaDocument, FileSize: 100,
	}, "editor")
	if m.UploadedAt.IsZero() {
		t.Error("UploadedAt not stamped")
	}
	if m.UploadedBy != "editor" {
		t.Errorf("UploadedBy = %q", m.UploadedBy)
	}
	if svc.Count() != 4 {
		t.Errorf("Count = %d, want 4", svc.Count())
	}
}
