package notification

import (
	"testing"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

func TestRecentScopesToUser(t *testing.T) {
	svc := NewService("admin")
	svc.Create("admin", "A", "for admin", models.NotifyInfo)
	svc.Create("intruder", "B", "for someone else", models.NotifyWarning)

	for _, n := range svc.Recent("admin", 0) {
		if n.UserID != "admin" {
			t.Fatalf("foreign notification leaked: %+v", n)
		}
	}
	if got := svc.Recent("intruder", 0); len(got) != 1 {
		t.Errorf("intruder sees %d notifications, want 1", len(got))
	}
}

func TestRecentLimit(t *testing.T) {
	svc := NewService("admin")
	for i := 0; i < 6; i++ {
		svc.Create("admin", "Event", "site event", models.NotifyInfo)
	}
	if got := svc.Recent("admin", 3); len(got) != 3 {
		t.Fatalf("limit ignored: got %d", len(got))
	}
	// Seeded welcome + 6 created.
	if got := svc.Recent("admin", 0); len(got) != 7 {
		t.Errorf("unlimited list = %d, want 7", len(got))
	}
}

func TestBroadcastTargetsAdmin(t *testing.T) {
	svc := NewService("admin")
	n := svc.Broadcast("New application", "someone applied", models.NotifyInfo)
	if n.UserID != "admin" {
		t.Fatalf("broadcast landed on %q", n.UserID)
	}
}

func TestUnreadLifecycle(t *testing.T) {
	svc := NewService("admin")
	n1 := svc.Create("admin", "A", "one", models.NotifyInfo)
	svc.Create("admin", "B", "two", models.NotifyInfo)

	// Seeded welcome plus the two above.
	if got := svc.UnreadCount("admin"); got != 3 {
		t.Fatalf("UnreadCount = %d, want 3", got)
	}

	marked := svc.MarkRead(n1.ID)
	if marked == nil || !marked.IsRead {
		t.Fatalf("MarkRead = %+v", marked)
	}
	if got := svc.UnreadCount("admin"); got != 2 {
		t.Errorf("UnreadCount after one read = %d, want 2", got)
	}

	if svc.MarkRead("missing") != nil {
		t.Error("MarkRead of absent id should return nil")
	}

	if touched := svc.MarkAllRead("admin"); touched != 2 {
		t.Errorf("MarkAllRead touched %d, want 2", touched)
	}
	if got := svc.UnreadCount("admin"); got != 0 {
		t.Errorf("UnreadCount after MarkAllRead = %d", got)
	}
}

func TestDelete(t *testing.T) {
	svc := NewService("admin")
	n := svc.Create("admin", "A", "one", models.NotifyInfo)
	if !svc.Delete(n.ID) {
		t.Fatal("delete of existing notification failed")
	}
	if svc.Delete(n.ID) {
		t.Fatal("second delete should report false")
	}
}
