package page

import (
	"strings"
	"testing"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

func TestGetUnknownSlugIsNil(t *testing.T) {
	svc := NewService()
	if svc.Get("no-such-page") != nil {
		t.Fatal("expected nil for unknown slug")
	}
	if p := svc.Get("about"); p == nil || len(p.Blocks) == 0 {
		t.Fatalf("seeded about page missing or empty: %+v", p)
	}
}

func TestListOmitsBlocks(t *testing.T) {
	svc := NewService()
	for _, p := range svc.List() {
		if p.Blocks != nil {
			t.Fatalf("index entry %q carries blocks", p.Slug)
		}
		if p.Slug == "" || p.Title == "" {
			t.Fatalf("index entry incomplete: %+v", p)
		}
	}
}

func TestSaveUpserts(t *testing.T) {
	svc := NewService()

	doc := models.PageDocument{
		Title: "Insights",
		Blocks: []models.PageBlock{
			{Kind: models.BlockText, Text: &models.TextBlock{Markdown: "Research notes."}},
		},
	}
	saved := svc.Save("insights", doc, "editor")
	if saved.Slug != "insights" || saved.UpdatedBy != "editor" || saved.UpdatedAt.IsZero() {
		t.Fatalf("save stamping: %+v", saved)
	}

	// Overwrite keeps the same slug count.
	before := len(svc.List())
	doc.Title = "Insights v2"
	svc.Save("insights", doc, "editor")
	if got := len(svc.List()); got != before {
		t.Errorf("overwrite changed page count %d -> %d", before, got)
	}
	if svc.Get("insights").Title != "Insights v2" {
		t.Error("overwrite did not apply")
	}
}

func TestDelete(t *testing.T) {
	svc := NewService()
	if !svc.Delete("about") {
		t.Fatal("delete of seeded page failed")
	}
	if svc.Delete("about") {
		t.Fatal("second delete should report false")
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("some **bold** text")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %s", html)
	}
}
