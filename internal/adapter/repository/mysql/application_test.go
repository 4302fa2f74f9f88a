package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appDomain "scholarhub-backend/internal/domain/application"
	scholarshipDomain "scholarhub-backend/internal/domain/scholarship"
	studentDomain "scholarhub-backend/internal/domain/student"
	userDomain "scholarhub-backend/internal/domain/user"
	"scholarhub-backend/pkg/id"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
// TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey, same as MySQL in production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userDomain.User{},
		&studentDomain.Student{},
		&scholarshipDomain.Scholarship{},
		&appDomain.Application{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedStudentAndScholarship(t *testing.T, db *gorm.DB) (string, string) {
	t.Helper()
	stu := &studentDomain.Student{
		StudentID: id.NewStudentID(),
		UserID:    id.NewID32(),
		FirstName: "Asha",
		Email:     "asha@example.com",
	}
	if err := db.Create(stu).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	sch := &scholarshipDomain.Scholarship{
		ScholarshipID: "SCH-1",
		Name:          "Merit Grant",
		Amount:        50000,
		Active:        true,
	}
	if err := db.Create(sch).Error; err != nil {
		t.Fatalf("seed scholarship: %v", err)
	}
	return stu.StudentID, sch.ScholarshipID
}

func makeApplication(studentID, scholarshipID string) *appDomain.Application {
	return &appDomain.Application{
		ApplicationID: id.NewApplicationID(),
		StudentID:     studentID,
		ScholarshipID: scholarshipID,
		Status:        appDomain.StatusSubmitted,
		ApplicationData: appDomain.JSONMap{
			"personalInfo": map[string]interface{}{"firstName": "Asha"},
		},
		AcademicInfo: appDomain.JSONMap{"percentage": 87.5},
		SubmittedAt:  time.Now().UTC(),
	}
}

func TestCreateAndGetByApplicationID(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	studentID, scholarshipID := seedStudentAndScholarship(t, db)

	a := makeApplication(studentID, scholarshipID)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != appDomain.StatusSubmitted {
		t.Fatalf("status = %s, want SUBMITTED", got.Status)
	}
	// JSON column round-trip
	pi, ok := got.ApplicationData["personalInfo"].(map[string]interface{})
	if !ok || pi["firstName"] != "Asha" {
		t.Fatalf("applicationData did not round-trip: %+v", got.ApplicationData)
	}
	// joins preloaded
	if got.Student == nil || got.Student.StudentID != studentID {
		t.Fatalf("student not preloaded: %+v", got.Student)
	}
	if got.Scholarship == nil || got.Scholarship.Name != "Merit Grant" {
		t.Fatalf("scholarship not preloaded: %+v", got.Scholarship)
	}
}

func TestUniqueIndex_RejectsSecondApplication(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	studentID, scholarshipID := seedStudentAndScholarship(t, db)

	if err := repo.Create(ctx, makeApplication(studentID, scholarshipID)); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := repo.Create(ctx, makeApplication(studentID, scholarshipID))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second Create err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestGetByStudentAndScholarship(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	studentID, scholarshipID := seedStudentAndScholarship(t, db)

	if _, err := repo.GetByStudentAndScholarship(ctx, studentID, scholarshipID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("empty table: err = %v, want ErrRecordNotFound", err)
	}

	a := makeApplication(studentID, scholarshipID)
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByStudentAndScholarship(ctx, studentID, scholarshipID)
	if err != nil {
		t.Fatalf("GetByStudentAndScholarship: %v", err)
	}
	if got.ApplicationID != a.ApplicationID {
		t.Fatalf("got %s, want %s", got.ApplicationID, a.ApplicationID)
	}
}

func TestList_FiltersAndPaginates(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	studentID, scholarshipID := seedStudentAndScholarship(t, db)

	// second scholarship so the student can hold two applications
	if err := db.Create(&scholarshipDomain.Scholarship{ScholarshipID: "SCH-2", Name: "Need Grant", Amount: 25000, Active: true}).Error; err != nil {
		t.Fatalf("seed scholarship 2: %v", err)
	}

	a1 := makeApplication(studentID, scholarshipID)
	a1.SubmittedAt = time.Now().UTC().Add(-time.Hour)
	a2 := makeApplication(studentID, "SCH-2")
	a2.Status = appDomain.StatusUnderReview
	for _, a := range []*appDomain.Application{a1, a2} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// status filter
	items, total, err := repo.List(ctx, appDomain.ListFilter{Status: appDomain.StatusUnderReview, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ApplicationID != a2.ApplicationID {
		t.Fatalf("status filter: total=%d items=%d", total, len(items))
	}

	// student scope, newest first
	items, total, err = repo.List(ctx, appDomain.ListFilter{StudentID: studentID, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("student filter: total=%d items=%d", total, len(items))
	}
	if items[0].ApplicationID != a2.ApplicationID {
		t.Fatalf("expected newest first, got %s", items[0].ApplicationID)
	}

	// pagination
	items, total, err = repo.List(ctx, appDomain.ListFilter{StudentID: studentID, Page: 2, Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(items) != 1 || items[0].ApplicationID != a1.ApplicationID {
		t.Fatalf("page 2: total=%d items=%d", total, len(items))
	}
}
