// Package appmock provides a function-backed mock of the application
// repository. Only the functions a test sets are exercised; the rest return
// gorm.ErrRecordNotFound so lookups default to "absent".
package appmock

import (
	"context"

	"gorm.io/gorm"

	domain "scholarhub-backend/internal/domain/application"
)

type Repo struct {
	CreateFn                     func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn         func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByStudentAndScholarshipFn func(ctx context.Context, studentID, scholarshipID string) (*domain.Application, error)
	ListFn                       func(ctx context.Context, f domain.ListFilter) ([]domain.Application, int64, error)
	SaveFn                       func(ctx context.Context, a *domain.Application) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByStudentAndScholarship(ctx context.Context, studentID, scholarshipID string) (*domain.Application, error) {
	if m.GetByStudentAndScholarshipFn != nil {
		return m.GetByStudentAndScholarshipFn(ctx, studentID, scholarshipID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Application, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
