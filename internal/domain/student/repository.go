package student

import "context"

type Repository interface {
	Create(ctx context.Context, s *Student) error
	GetByStudentID(ctx context.Context, studentID string) (*Student, error)
	GetByUserID(ctx context.Context, userID string) (*Student, error)
}
