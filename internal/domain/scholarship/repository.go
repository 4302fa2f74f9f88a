package scholarship

import "context"

type Repository interface {
	GetByScholarshipID(ctx context.Context, scholarshipID string) (*Scholarship, error)
}
