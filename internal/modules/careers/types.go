package careers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
)

// CreateJobDTO is the admin payload for a new posting.
type CreateJobDTO struct {
	Title               string         `json:"title" binding:"required"`
	Department          string         `json:"department" binding:"required"`
	Location            string         `json:"location" binding:"required"`
	Type                models.JobType `json:"type" binding:"required,oneof=full-time part-time contract internship"`
	Description         string         `json:"description" binding:"required"`
	Requirements        []string       `json:"requirements"`
	Responsibilities    []string       `json:"responsibilities"`
	Status              models.JobStatus `json:"status" binding:"omitempty,oneof=active paused closed"`
	ApplicationDeadline string         `json:"applicationDeadline"`
}

// UpdateJobDTO carries partial fields; nil fields are preserved.
// PostedDate and ApplicationsCount are not updatable.
type UpdateJobDTO struct {
	Title               *string           `json:"title"`
	Department          *string           `json:"department"`
	Location            *string           `json:"location"`
	Type                *models.JobType   `json:"type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Description         *string           `json:"description"`
	Requirements        *[]string         `json:"requirements"`
	Responsibilities    *[]string         `json:"responsibilities"`
	Status              *models.JobStatus `json:"status" binding:"omitempty,oneof=active paused closed"`
	ApplicationDeadline *string           `json:"applicationDeadline"`
}

// UpdateApplicationStatusDTO sets an application's workflow status. The
// enum is checked; transitions are not.
type UpdateApplicationStatusDTO struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// IntakeDTO is the public job-application payload. The resume file is an
// opaque attachment handled elsewhere; it is deliberately not validated.
type IntakeDTO struct {
	FullName       string `json:"fullName" binding:"required,min=2"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,min=10"`
	Position       string `json:"position" binding:"required"`
	Experience     string `json:"experience" binding:"required"`
	CoverLetter    string `json:"coverLetter" binding:"required,min=50"`
	ResumeFile     string `json:"resumeFile"`
	AdditionalInfo string `json:"additionalInfo"`
}

// intakeFieldMessages maps field+tag to the message shown on the careers
// form. Ordered so the first violated field wins.
var intakeFieldOrder = []string{"FullName", "Email", "Phone", "Position", "Experience", "CoverLetter"}

var intakeMessages = map[string]string{
	"FullName/required":    "full name is required",
	"FullName/min":         "full name must be at least 2 characters",
	"Email/required":       "email is required",
	"Email/email":          "email must be a valid email address",
	"Phone/required":       "phone is required",
	"Phone/min":            "phone must be at least 10 characters",
	"Position/required":    "please select a position",
	"Experience/required":  "please select an experience bracket",
	"CoverLetter/required": "cover letter is required",
	"CoverLetter/min":      "cover letter must be at least 50 characters",
}

// intakeErrorMessage extracts a field-attributed message from a binding
// failure, preferring the first violated field in form order.
func intakeErrorMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request payload"
	}
	byField := map[string]string{}
	for _, fe := range verrs {
		key := fe.StructField() + "/" + fe.Tag()
		if msg, ok := intakeMessages[key]; ok {
			if _, seen := byField[fe.StructField()]; !seen {
				byField[fe.StructField()] = msg
			}
		}
	}
	for _, field := range intakeFieldOrder {
		if msg, ok := byField[field]; ok {
			return msg
		}
	}
	return "invalid request payload"
}

// Normalize trims whitespace from the free-text fields before persistence.
func (d *IntakeDTO) Normalize() {
	d.FullName = strings.TrimSpace(d.FullName)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.Position = strings.TrimSpace(d.Position)
	d.Experience = strings.TrimSpace(d.Experience)
	d.CoverLetter = strings.TrimSpace(d.CoverLetter)
	d.AdditionalInfo = strings.TrimSpace(d.AdditionalInfo)
}

var intakeValidator = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Validate re-runs the field rules on the normalized values. Padding a
// field with whitespace must not carry it past a minimum-length check, so
// the binding-time validation alone is not enough.
func (d *IntakeDTO) Validate() error {
	return intakeValidator.Struct(d)
}
