package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	GetByStudentAndScholarship(ctx context.Context, studentID, scholarshipID string) (*Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, int64, error)
	Save(ctx context.Context, a *Application) error
}
