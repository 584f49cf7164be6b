package models

// JobType is the employment type of a posting.
type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobActive JobStatus = "active"
	JobPaused JobStatus = "paused"
	JobClosed JobStatus = "closed"
)

// Job is a career posting. PostedDate is set at creation and immutable;
// ApplicationsCount is a derived counter and never goes negative.
type Job struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Department          string    `json:"department"`
	Location            string    `json:"location"`
	Type                JobType   `json:"type"`
	Description         string    `json:"description"`
	Requirements        []string  `json:"requirements"`
	Responsibilities    []string  `json:"responsibilities"`
	Status              JobStatus `json:"status"`
	PostedDate          string    `json:"postedDate"`
	ApplicationDeadline string    `json:"applicationDeadline,omitempty"`
	ApplicationsCount   int       `json:"applicationsCount"`
}

// ApplicationStatus is a loose workflow state; any status may follow any
// other, there is no enforced transition graph.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationHired       ApplicationStatus = "hired"
	ApplicationRejected    ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is a member of the status enum.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationReviewing, ApplicationInterviewed,
		ApplicationHired, ApplicationRejected:
		return true
	}
	return false
}

// JobApplication is a submitted application. JobID is a reference to a Job
// but is not enforced; orphaned references are tolerated.
type JobApplication struct {
	ID             string            `json:"id"`
	JobID          string            `json:"jobId"`
	ApplicantName  string            `json:"applicantName"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Experience     string            `json:"experience"`
	Resume         string            `json:"resume"`
	CoverLetter    string            `json:"coverLetter,omitempty"`
	AdditionalInfo string            `json:"additionalInfo,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedDate    string            `json:"appliedDate"`
}
