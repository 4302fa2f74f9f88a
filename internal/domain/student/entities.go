package student

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("student not found")

// Student is the durable profile an Application attaches to. It is created
// lazily the first time a user submits an application, seeded from that
// submission's personalInfo with best-effort fallbacks from the address and
// family sections.
type Student struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (STU-<millis>-<hex>)
	StudentID string `gorm:"column:student_id;size:40;not null;uniqueIndex:ux_students_student_id" json:"student_id"`
	// 1:1 with the owning user
	UserID string `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_students_user_id" json:"user_id"`

	FirstName   string     `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName    string     `gorm:"column:last_name;size:100" json:"last_name"`
	Email       string     `gorm:"column:email;size:255;not null" json:"email"`
	Phone       string     `gorm:"column:phone;size:15" json:"phone"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"column:gender;size:20" json:"gender"`

	AddressLine string `gorm:"column:address_line;type:text" json:"address_line"`
	City        string `gorm:"column:city;size:100" json:"city"`
	State       string `gorm:"column:state;size:100" json:"state"`
	PinCode     string `gorm:"column:pin_code;size:6" json:"pin_code"`

	FatherName   string  `gorm:"column:father_name;size:200" json:"father_name"`
	MotherName   string  `gorm:"column:mother_name;size:200" json:"mother_name"`
	FamilyIncome float64 `gorm:"column:family_income;type:decimal(12,2)" json:"family_income"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Student) TableName() string { return "students" }
