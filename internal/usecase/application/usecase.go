package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "scholarhub-backend/internal/domain/application"
	scholarshipDomain "scholarhub-backend/internal/domain/scholarship"
	studentDomain "scholarhub-backend/internal/domain/student"
	"scholarhub-backend/internal/domain/uow"
	userDomain "scholarhub-backend/internal/domain/user"
	"scholarhub-backend/internal/infrastructure/logger"
	"scholarhub-backend/pkg/id"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Usecase struct {
	users        userDomain.Repository
	scholarships scholarshipDomain.Repository
	students     studentDomain.Repository
	apps         domain.Repository
	uow          uow.UnitOfWork
	notifier     Notifier
	log          logger.Logger
}

func NewUsecase(
	users userDomain.Repository,
	scholarships scholarshipDomain.Repository,
	students studentDomain.Repository,
	apps domain.Repository,
	tx uow.UnitOfWork,
	notifier Notifier,
	log logger.Logger,
) *Usecase {
	return &Usecase{
		users:        users,
		scholarships: scholarships,
		students:     students,
		apps:         apps,
		uow:          tx,
		notifier:     notifier,
		log:          log,
	}
}

type ApplicationDTO struct {
	ApplicationID   string                         `json:"application_id"`
	ScholarshipID   string                         `json:"scholarship_id"`
	StudentID       string                         `json:"student_id"`
	Status          string                         `json:"status"`
	ApplicationData domain.JSONMap                 `json:"application_data"`
	AcademicInfo    domain.JSONMap                 `json:"academic_info,omitempty"`
	FamilyInfo      domain.JSONMap                 `json:"family_info,omitempty"`
	FinancialInfo   domain.JSONMap                 `json:"financial_info,omitempty"`
	AdditionalInfo  domain.JSONMap                 `json:"additional_info,omitempty"`
	SubmittedAt     time.Time                      `json:"submitted_at"`
	Student         *studentDomain.Student         `json:"student,omitempty"`
	Scholarship     *scholarshipDomain.Scholarship `json:"scholarship,omitempty"`
}

// Submit turns a validated payload into exactly one Application row,
// bootstrapping a Student profile for first-time applicants. Student creation
// and application insert share one transaction.
func (u *Usecase) Submit(ctx context.Context, actingUserID string, in domain.Payload) (*ApplicationDTO, error) {
	usr, err := u.users.GetByUserID(ctx, actingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, userDomain.ErrNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, &domain.TransientError{Err: err}
	}

	sch, err := u.scholarships.GetByScholarshipID(ctx, in.ScholarshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, scholarshipDomain.ErrNotFound) {
			return nil, domain.ErrScholarshipNotFound
		}
		return nil, &domain.TransientError{Err: err}
	}

	var created *domain.Application
	var stu *studentDomain.Student

	txErr := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		stu, err = r.Students.GetByUserID(ctx, usr.UserID)
		switch {
		case err == nil:
			// existing profile, reuse its id
		case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, studentDomain.ErrNotFound):
			if in.PersonalInfo == nil {
				return domain.ErrPersonalInfoRequired
			}
			stu = buildStudent(usr.UserID, &in)
			if err := r.Students.Create(ctx, stu); err != nil {
				return &domain.TransientError{Err: err}
			}
		default:
			return &domain.TransientError{Err: err}
		}

		// Fast-path duplicate check; the unique index below is the actual guard.
		if existing, err := r.Applications.GetByStudentAndScholarship(ctx, stu.StudentID, in.ScholarshipID); err == nil {
			return &domain.DuplicateError{ApplicationID: existing.ApplicationID}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, domain.ErrNotFound) {
			return &domain.TransientError{Err: err}
		}

		a := &domain.Application{
			ApplicationID:   id.NewApplicationID(),
			StudentID:       stu.StudentID,
			ScholarshipID:   in.ScholarshipID,
			Status:          domain.StatusSubmitted,
			ApplicationData: buildApplicationData(&in),
			AcademicInfo:    toJSONMap(in.AcademicInfo),
			FamilyInfo:      toJSONMap(in.FamilyInfo),
			FinancialInfo:   toJSONMap(in.FinancialInfo),
			AdditionalInfo:  toJSONMap(in.AdditionalInfo),
			SubmittedAt:     time.Now().UTC(),
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the race with a concurrent submit; surface the winner's id.
				if existing, lookupErr := r.Applications.GetByStudentAndScholarship(ctx, stu.StudentID, in.ScholarshipID); lookupErr == nil {
					return &domain.DuplicateError{ApplicationID: existing.ApplicationID}
				}
				return &domain.DuplicateError{}
			}
			return &domain.TransientError{Err: err}
		}
		created = a
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	go u.notifier.ApplicationSubmitted(context.WithoutCancel(ctx), created.ApplicationID, stu.StudentID, in.ScholarshipID)

	u.log.Info("application created", map[string]interface{}{
		"applicationId": created.ApplicationID,
		"studentId":     stu.StudentID,
		"scholarshipId": in.ScholarshipID,
	})

	dto := toDTO(created)
	dto.Student = stu
	dto.Scholarship = sch
	return dto, nil
}

// Get returns one application with student and scholarship joined.
func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.TransientError{Err: err}
	}
	dto := toDTO(a)
	dto.Student = a.Student
	dto.Scholarship = a.Scholarship
	return dto, nil
}

type ListResult struct {
	Items []ApplicationDTO `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int64            `json:"total"`
}

// List is role-sensitive: STUDENT actors only ever see their own
// applications; reviewers and admins see everything, optionally filtered.
func (u *Usecase) List(ctx context.Context, actor *userDomain.User, f domain.ListFilter) (*ListResult, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if actor.Role == userDomain.RoleStudent {
		stu, err := u.students.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, studentDomain.ErrNotFound) {
				// no profile yet means no applications
				return &ListResult{Items: []ApplicationDTO{}, Page: f.Page, Limit: f.Limit}, nil
			}
			return nil, &domain.TransientError{Err: err}
		}
		f.StudentID = stu.StudentID
	}

	items, total, err := u.apps.List(ctx, f)
	if err != nil {
		return nil, &domain.TransientError{Err: err}
	}
	out := make([]ApplicationDTO, 0, len(items))
	for i := range items {
		dto := toDTO(&items[i])
		dto.Student = items[i].Student
		dto.Scholarship = items[i].Scholarship
		out = append(out, *dto)
	}
	return &ListResult{Items: out, Page: f.Page, Limit: f.Limit, Total: total}, nil
}

// buildStudent seeds a profile from personalInfo with best-effort fallbacks
// from the address and family sections; absent sections become zero values so
// an incomplete draft never blocks a first submission.
func buildStudent(userID string, in *domain.Payload) *studentDomain.Student {
	p := in.PersonalInfo
	s := &studentDomain.Student{
		StudentID: id.NewStudentID(),
		UserID:    userID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Gender:    p.Gender,
	}
	if dob, err := time.Parse("2006-01-02", p.DateOfBirth); err == nil {
		s.DateOfBirth = &dob
	}
	if a := in.AddressInfo; a != nil {
		s.AddressLine = a.AddressLine
		s.City = a.City
		s.State = a.State
		s.PinCode = a.PinCode
	}
	if f := in.FamilyInfo; f != nil {
		s.FatherName = f.FatherName
		s.MotherName = f.MotherName
		s.FamilyIncome = f.FamilyIncome
	}
	return s
}

// buildApplicationData assembles the envelope column: personalInfo,
// addressInfo and document refs only. The remaining sections are stored as
// their own columns.
func buildApplicationData(in *domain.Payload) domain.JSONMap {
	data := domain.JSONMap{}
	if m := toJSONMap(in.PersonalInfo); m != nil {
		data["personalInfo"] = map[string]interface{}(m)
	}
	if m := toJSONMap(in.AddressInfo); m != nil {
		data["addressInfo"] = map[string]interface{}(m)
	}
	if len(in.Documents) > 0 {
		docs := make([]interface{}, 0, len(in.Documents))
		for _, d := range in.Documents {
			if m := toJSONMap(d); m != nil {
				docs = append(docs, map[string]interface{}(m))
			}
		}
		data["documents"] = docs
	}
	return data
}

func toJSONMap(v interface{}) domain.JSONMap {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	var m domain.JSONMap
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		ScholarshipID:   a.ScholarshipID,
		StudentID:       a.StudentID,
		Status:          string(a.Status),
		ApplicationData: a.ApplicationData,
		AcademicInfo:    a.AcademicInfo,
		FamilyInfo:      a.FamilyInfo,
		FinancialInfo:   a.FinancialInfo,
		AdditionalInfo:  a.AdditionalInfo,
		SubmittedAt:     a.SubmittedAt,
	}
}
