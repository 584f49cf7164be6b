package careers

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/memstore"
)

const dateLayout = "2006-01-02"

// Service owns the job postings and submitted applications. The two
// collections are related only by the soft JobID reference; deleting a job
// leaves its applications orphaned, which callers tolerate.
type Service struct {
	jobs         *memstore.Store[models.Job]
	applications *memstore.Store[models.JobApplication]
}

// NewService seeds the postings the careers page launched with.
func NewService() *Service {
	s := &Service{
		jobs:         memstore.New(func(j models.Job) string { return j.ID }),
		applications: memstore.New(func(a models.JobApplication) string { return a.ID }),
	}
	today := time.Now().Format(dateLayout)
	s.jobs.Seed([]models.Job{
		{
			ID: uuid.NewString(), Title: "Investment Analyst", Department: "Research",
			Location: "Accra", Type: models.JobFullTime,
			Description:      "Cover listed equities and fixed income on the Ghana Stock Exchange.",
			Requirements:     []string{"BSc in Finance or Economics", "2+ years buy-side or sell-side experience"},
			Responsibilities: []string{"Produce daily market notes", "Maintain coverage models"},
			Status:           models.JobActive, PostedDate: today,
		},
		{
			ID: uuid.NewString(), Title: "Client Relationship Officer", Department: "Client Services",
			Location: "Kumasi", Type: models.JobFullTime,
			Description:      "Own the client onboarding journey for pension and mutual fund products.",
			Requirements:     []string{"Excellent written and spoken English", "Experience with CRM tooling"},
			Responsibilities: []string{"Handle client queries", "Run onboarding sessions"},
			Status:           models.JobActive, PostedDate: today,
		},
	})
	return s
}

// ListJobs returns postings in insertion order, optionally filtered by status.
func (s *Service) ListJobs(status models.JobStatus) []models.Job {
	if status == "" {
		return s.jobs.All()
	}
	return s.jobs.Find(func(j models.Job) bool { return j.Status == status })
}

// GetJob returns nil when the posting is absent.
func (s *Service) GetJob(id string) *models.Job {
	j, ok := s.jobs.Get(id)
	if !ok {
		return nil
	}
	return &j
}

// CreateJob derives PostedDate (today) and a zero ApplicationsCount.
func (s *Service) CreateJob(dto *CreateJobDTO) models.Job {
	status := dto.Status
	if status == "" {
		status = models.JobActive
	}
	j := models.Job{
		ID:                  uuid.NewString(),
		Title:               dto.Title,
		Department:          dto.Department,
		Location:            dto.Location,
		Type:                dto.Type,
		Description:         dto.Description,
		Requirements:        append([]string(nil), dto.Requirements...),
		Responsibilities:    append([]string(nil), dto.Responsibilities...),
		Status:              status,
		PostedDate:          time.Now().Format(dateLayout),
		ApplicationDeadline: dto.ApplicationDeadline,
		ApplicationsCount:   0,
	}
	s.jobs.Insert(j)
	return j
}

// UpdateJob merges the partial DTO. PostedDate and ApplicationsCount are
// immutable here. Returns nil when the posting is absent.
func (s *Service) UpdateJob(id string, dto *UpdateJobDTO) *models.Job {
	j, ok := s.jobs.Update(id, func(j *models.Job) {
		if dto.Title != nil {
			j.Title = *dto.Title
		}
		if dto.Department != nil {
			j.Department = *dto.Department
		}
		if dto.Location != nil {
			j.Location = *dto.Location
		}
		if dto.Type != nil {
			j.Type = *dto.Type
		}
		if dto.Description != nil {
			j.Description = *dto.Description
		}
		if dto.Requirements != nil {
			j.Requirements = append([]string(nil), (*dto.Requirements)...)
		}
		if dto.Responsibilities != nil {
			j.Responsibilities = append([]string(nil), (*dto.Responsibilities)...)
		}
		if dto.Status != nil {
			j.Status = *dto.Status
		}
		if dto.ApplicationDeadline != nil {
			j.ApplicationDeadline = *dto.ApplicationDeadline
		}
	})
	if !ok {
		return nil
	}
	return &j
}

// DeleteJob removes a posting; its applications stay behind as orphans.
func (s *Service) DeleteJob(id string) bool {
	return s.jobs.Delete(id)
}

// ListApplications filters by jobID and/or status; empty means all.
func (s *Service) ListApplications(jobID string, status models.ApplicationStatus) []models.JobApplication {
	return s.applications.Find(func(a models.JobApplication) bool {
		if jobID != "" && a.JobID != jobID {
			return false
		}
		if status != "" && a.Status != status {
			return false
		}
		return true
	})
}

// GetApplication returns nil when absent.
func (s *Service) GetApplication(id string) *models.JobApplication {
	a, ok := s.applications.Get(id)
	if !ok {
		return nil
	}
	return &a
}

// SubmitApplication stores a validated intake payload. The position text is
// resolved to a posting id by title when one matches; otherwise it is kept
// verbatim as a dangling reference. The referenced posting's counter is
// incremented only when it exists.
func (s *Service) SubmitApplication(dto *IntakeDTO) models.JobApplication {
	jobID := dto.Position
	for _, j := range s.jobs.All() {
		if strings.EqualFold(j.Title, dto.Position) {
			jobID = j.ID
			break
		}
	}

	a := models.JobApplication{
		ID:             uuid.NewString(),
		JobID:          jobID,
		ApplicantName:  dto.FullName,
		Email:          dto.Email,
		Phone:          dto.Phone,
		Experience:     dto.Experience,
		Resume:         dto.ResumeFile,
		CoverLetter:    dto.CoverLetter,
		AdditionalInfo: dto.AdditionalInfo,
		Status:         models.ApplicationPending,
		AppliedDate:    time.Now().Format(dateLayout),
	}
	s.applications.Insert(a)
	s.jobs.Update(jobID, func(j *models.Job) { j.ApplicationsCount++ })
	return a
}

// UpdateApplicationStatus sets the workflow field directly. Any enum value
// may follow any other. Returns nil when the application is absent.
func (s *Service) UpdateApplicationStatus(id string, status models.ApplicationStatus) *models.JobApplication {
	a, ok := s.applications.Update(id, func(a *models.JobApplication) { a.Status = status })
	if !ok {
		return nil
	}
	return &a
}

// DeleteApplication removes a submission; false when already absent.
func (s *Service) DeleteApplication(id string) bool {
	return s.applications.Delete(id)
}

// ActiveJobCount and PendingApplicationCount feed the dashboard stats.
func (s *Service) ActiveJobCount() int {
	return len(s.jobs.Find(func(j models.Job) bool { return j.Status == models.JobActive }))
}

func (s *Service) PendingApplicationCount() int {
	return len(s.applications.Find(func(a models.JobApplication) bool { return a.Status == models.ApplicationPending }))
}
