package application

import (
	"time"

	"gorm.io/gorm"

	"scholarhub-backend/internal/domain/scholarship"
	"scholarhub-backend/internal/domain/student"
)

type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusShortlisted Status = "SHORTLISTED"
	StatusApproved    Status = "APPROVED"
	StatusRejected    Status = "REJECTED"
)

// transitions is the full review lifecycle. This service only ever creates
// SUBMITTED rows; later transitions belong to the review workflow, but the
// table lives here so every owner of an Application agrees on what is legal.
var transitions = map[Status][]Status{
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusShortlisted, StatusRejected},
	StatusShortlisted: {StatusApproved, StatusRejected},
	StatusApproved:    {},
	StatusRejected:    {},
}

// CanTransition reports whether from → to is a legal status move.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further status moves are allowed.
func IsTerminal(s Status) bool { return len(transitions[s]) == 0 }

type Application struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (APP-<millis>-<hex>)
	ApplicationID string `gorm:"column:application_id;size:40;not null;uniqueIndex:ux_applications_application_id" json:"application_id"`
	// One application per (student, scholarship): the composite unique index
	// backs the service-level pre-check so a concurrent double-submit cannot
	// insert two rows.
	StudentID     string `gorm:"column:student_id;size:40;not null;uniqueIndex:ux_applications_student_scholarship" json:"student_id"`
	ScholarshipID string `gorm:"column:scholarship_id;size:40;not null;uniqueIndex:ux_applications_student_scholarship" json:"scholarship_id"`

	Status Status `gorm:"column:status;size:20;not null;default:'SUBMITTED';index" json:"status"`

	// personalInfo + addressInfo + document refs travel together in
	// application_data; the remaining sections are top-level JSON columns.
	ApplicationData JSONMap `gorm:"column:application_data;type:json" json:"application_data"`
	AcademicInfo    JSONMap `gorm:"column:academic_info;type:json" json:"academic_info"`
	FamilyInfo      JSONMap `gorm:"column:family_info;type:json" json:"family_info"`
	FinancialInfo   JSONMap `gorm:"column:financial_info;type:json" json:"financial_info"`
	AdditionalInfo  JSONMap `gorm:"column:additional_info;type:json" json:"additional_info"`

	SubmittedAt     time.Time  `gorm:"column:submitted_at;not null" json:"submitted_at"`
	ReviewedAt      *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	RejectedAt      *time.Time `gorm:"column:rejected_at" json:"rejected_at,omitempty"`
	AwardedAmount   *float64   `gorm:"column:awarded_amount;type:decimal(12,2)" json:"awarded_amount,omitempty"`
	RejectionReason string     `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	Student     *student.Student         `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Scholarship *scholarship.Scholarship `gorm:"foreignKey:ScholarshipID;references:ScholarshipID" json:"scholarship,omitempty"`
}

func (Application) TableName() string { return "applications" }

// ListFilter narrows List queries. Zero values mean "no filter".
type ListFilter struct {
	Status        Status
	ScholarshipID string
	StudentID     string
	Page          int
	Limit         int
}
