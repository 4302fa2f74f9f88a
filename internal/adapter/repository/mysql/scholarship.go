package mysql

import (
	"context"

	"gorm.io/gorm"

	scholarshipDomain "scholarhub-backend/internal/domain/scholarship"
)

type ScholarshipRepository struct{ db *gorm.DB }

func NewScholarshipRepository(db *gorm.DB) *ScholarshipRepository {
	return &ScholarshipRepository{db: db}
}

func (r *ScholarshipRepository) GetByScholarshipID(ctx context.Context, scholarshipID string) (*scholarshipDomain.Scholarship, error) {
	var out scholarshipDomain.Scholarship
	res := r.db.WithContext(ctx).Where("scholarship_id = ?", scholarshipID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}
