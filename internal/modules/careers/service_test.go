package careers

import (
	"testing"
	"time"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

func TestCreateJobDerivedFields(t *testing.T) {
	svc := NewService()

	j := svc.CreateJob(&CreateJobDTO{
		Title: "Compliance Officer", Department: "Legal", Location: "Accra",
		Type: models.JobFullTime, Description: "Oversee regulatory filings.",
	})
	if j.PostedDate != time.Now().Format(dateLayout) {
		t.Errorf("PostedDate = %q", j.PostedDate)
	}
	if j.ApplicationsCount != 0 {
		t.Errorf("ApplicationsCount = %d, want 0", j.ApplicationsCount)
	}
	if j.Status != models.JobActive {
		t.Errorf("default status = %q, want active", j.Status)
	}
}

func TestSubmitApplicationResolvesPositionTitle(t *testing.T) {
	svc := NewService()
	job := svc.ListJobs("")[0]

	a := svc.SubmitApplication(&IntakeDTO{
		FullName: "Ama Mensah", Email: "ama@example.com", Phone: "0244000000",
		Position: "investment analyst", Experience: "3-5",
		CoverLetter:    "I have covered GSE equities for four years and would love to join.",
		AdditionalInfo: "Available from October.",
	})
	if a.JobID != job.ID {
		t.Fatalf("JobID = %q, want resolved id %q", a.JobID, job.ID)
	}
	if a.Status != models.ApplicationPending {
		t.Errorf("Status = %q, want pending", a.Status)
	}
	stored := svc.GetApplication(a.ID)
	if stored.Experience != "3-5" {
		t.Errorf("Experience not persisted: %q", stored.Experience)
	}
	if stored.AdditionalInfo != "Available from October." {
		t.Errorf("AdditionalInfo not persisted: %q", stored.AdditionalInfo)
	}
	if got := svc.GetJob(job.ID).ApplicationsCount; got != 1 {
		t.Errorf("ApplicationsCount = %d, want 1", got)
	}
}

func TestSubmitApplicationUnknownPositionKeepsText(t *testing.T) {
	svc := NewService()

	a := svc.SubmitApplication(&IntakeDTO{
		FullName: "Kojo Asante", Email: "kojo@example.com", Phone: "0200111222",
		Position: "Astronaut", Experience: "10+",
		CoverLetter: "Fifteen years of flight experience and a deep interest in finance.",
	})
	if a.JobID != "Astronaut" {
		t.Fatalf("JobID = %q, want verbatim position text", a.JobID)
	}
	// No posting counter may move for a dangling reference.
	for _, j := range svc.ListJobs("") {
		if j.ApplicationsCount != 0 {
			t.Errorf("job %s counter moved to %d", j.Title, j.ApplicationsCount)
		}
	}
}

func TestUpdateApplicationStatusAbsent(t *testing.T) {
	svc := NewService()
	a := svc.SubmitApplication(&IntakeDTO{
		FullName: "Ama Mensah", Email: "ama@example.com", Phone: "0244000000",
		Position: "Investment Analyst", Experience: "3-5",
		CoverLetter: "I have covered GSE equities for four years and would love to join.",
	})

	if got := svc.UpdateApplicationStatus("missing", models.ApplicationInterviewed); got != nil {
		t.Fatalf("expected nil for absent application, got %+v", got)
	}
	// The existing record is untouched.
	if got := svc.GetApplication(a.ID); got.Status != models.ApplicationPending {
		t.Errorf("unrelated application status changed to %q", got.Status)
	}

	if got := svc.UpdateApplicationStatus(a.ID, models.ApplicationInterviewed); got == nil || got.Status != models.ApplicationInterviewed {
		t.Fatalf("status update failed: %+v", got)
	}
}

func TestListApplicationsFilters(t *testing.T) {
	svc := NewService()
	job := svc.ListJobs("")[0]
	a1 := svc.SubmitApplication(&IntakeDTO{
		FullName: "Ama Mensah", Email: "ama@example.com", Phone: "0244000000",
		Position: job.Title, Experience: "3-5",
		CoverLetter: "I have covered GSE equities for four years and would love to join.",
	})
	svc.SubmitApplication(&IntakeDTO{
		FullName: "Kojo Asante", Email: "kojo@example.com", Phone: "0200111222",
		Position: "Unlisted role", Experience: "10+",
		CoverLetter: "Fifteen years of experience in roles adjacent to this opening here.",
	})
	svc.UpdateApplicationStatus(a1.ID, models.ApplicationReviewing)

	if got := svc.ListApplications(job.ID, ""); len(got) != 1 || got[0].ID != a1.ID {
		t.Errorf("filter by jobID: %+v", got)
	}
	if got := svc.ListApplications("", models.ApplicationPending); len(got) != 1 {
		t.Errorf("filter by status returned %d records", len(got))
	}
	if got := svc.ListApplications("", ""); len(got) != 2 {
		t.Errorf("unfiltered list returned %d records", len(got))
	}
}

func TestDashboardCounts(t *testing.T) {
	svc := NewService()

	if got := svc.ActiveJobCount(); got != 2 {
		t.Errorf("ActiveJobCount = %d, want 2", got)
	}
	paused := models.JobPaused
	svc.UpdateJob(svc.ListJobs("")[0].ID, &UpdateJobDTO{Status: &paused})
	if got := svc.ActiveJobCount(); got != 1 {
		t.Errorf("ActiveJobCount after pause = %d, want 1", got)
	}

	if got := svc.PendingApplicationCount(); got != 0 {
		t.Errorf("PendingApplicationCount = %d, want 0", got)
	}
}
