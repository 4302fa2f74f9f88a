package scholarship

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("scholarship not found")

// Scholarship is the catalog entry an application targets. The submission
// flow only needs existence and amount; catalog management is a separate
// concern.
type Scholarship struct {
	ID            uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ScholarshipID string         `gorm:"column:scholarship_id;size:40;not null;uniqueIndex:ux_scholarships_scholarship_id" json:"scholarship_id"`
	Name          string         `gorm:"column:name;size:255;not null" json:"name"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	Amount        float64        `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Deadline      *time.Time     `gorm:"column:deadline" json:"deadline,omitempty"`
	Active        bool           `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Scholarship) TableName() string { return "scholarships" }
