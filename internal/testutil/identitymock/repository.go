// Package identitymock provides function-backed mocks for the identity
// collaborators (users, students, scholarships).
package identitymock

import (
	"context"

	"gorm.io/gorm"

	scholarshipDomain "scholarhub-backend/internal/domain/scholarship"
	studentDomain "scholarhub-backend/internal/domain/student"
	userDomain "scholarhub-backend/internal/domain/user"
)

type UserRepo struct {
	GetByUserIDFn func(ctx context.Context, userID string) (*userDomain.User, error)
	GetByTokenFn  func(ctx context.Context, token string) (*userDomain.User, error)
}

func (m *UserRepo) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *UserRepo) GetByToken(ctx context.Context, token string) (*userDomain.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}
	return nil, gorm.ErrRecordNotFound
}

type StudentRepo struct {
	CreateFn         func(ctx context.Context, s *studentDomain.Student) error
	GetByStudentIDFn func(ctx context.Context, studentID string) (*studentDomain.Student, error)
	GetByUserIDFn    func(ctx context.Context, userID string) (*studentDomain.Student, error)
}

func (m *StudentRepo) Create(ctx context.Context, s *studentDomain.Student) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *StudentRepo) GetByStudentID(ctx context.Context, studentID string) (*studentDomain.Student, error) {
	if m.GetByStudentIDFn != nil {
		return m.GetByStudentIDFn(ctx, studentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *StudentRepo) GetByUserID(ctx context.Context, userID string) (*studentDomain.Student, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

type ScholarshipRepo struct {
	GetByScholarshipIDFn func(ctx context.Context, scholarshipID string) (*scholarshipDomain.Scholarship, error)
}

func (m *ScholarshipRepo) GetByScholarshipID(ctx context.Context, scholarshipID string) (*scholarshipDomain.Scholarship, error) {
	if m.GetByScholarshipIDFn != nil {
		return m.GetByScholarshipIDFn(ctx, scholarshipID)
	}
	return nil, gorm.ErrRecordNotFound
}
