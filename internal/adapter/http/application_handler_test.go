package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/labstack/echo/v4"

	"scholarhub-backend/internal/adapter/middleware"
	appDomain "scholarhub-backend/internal/domain/application"
	scholarshipDomain "scholarhub-backend/internal/domain/scholarship"
	studentDomain "scholarhub-backend/internal/domain/student"
	"scholarhub-backend/internal/domain/uow"
	userDomain "scholarhub-backend/internal/domain/user"
	"scholarhub-backend/internal/infrastructure/logger"
	"scholarhub-backend/internal/testutil/appmock"
	"scholarhub-backend/internal/testutil/identitymock"
	"scholarhub-backend/internal/testutil/uowmock"
	appUsecase "scholarhub-backend/internal/usecase/application"
)

const (
	handlerTestUserID = "cccccccccccccccccccccccccccccccc"
	handlerTestSchID  = "SCH-1"
)

type handlerFixture struct {
	users        *identitymock.UserRepo
	scholarships *identitymock.ScholarshipRepo
	students     *identitymock.StudentRepo
	apps         *appmock.Repo
	actor        *userDomain.User
}

func newHandlerFixture() *handlerFixture {
	actor := &userDomain.User{UserID: handlerTestUserID, Email: "asha@example.com", Role: userDomain.RoleStudent}
	return &handlerFixture{
		users: &identitymock.UserRepo{
			GetByUserIDFn: func(ctx context.Context, userID string) (*userDomain.User, error) {
				if userID != handlerTestUserID {
					return nil, gorm.ErrRecordNotFound
				}
				return actor, nil
			},
		},
		scholarships: &identitymock.ScholarshipRepo{
			GetByScholarshipIDFn: func(ctx context.Context, scholarshipID string) (*scholarshipDomain.Scholarship, error) {
				if scholarshipID != handlerTestSchID {
					return nil, gorm.ErrRecordNotFound
				}
				return &scholarshipDomain.Scholarship{ScholarshipID: handlerTestSchID, Name: "Merit Grant"}, nil
			},
		},
		students: &identitymock.StudentRepo{
			CreateFn: func(ctx context.Context, s *studentDomain.Student) error { return nil },
		},
		apps:  &appmock.Repo{},
		actor: actor,
	}
}

func (f *handlerFixture) handler(t *testing.T) *ApplicationHandler {
	t.Helper()
	u := &uowmock.UoW{Repos: uow.Repos{
		Applications: f.apps,
		Students:     f.students,
		Scholarships: f.scholarships,
		Users:        f.users,
	}}
	uc := appUsecase.NewUsecase(f.users, f.scholarships, f.students, f.apps, u,
		&appUsecase.LogNotifier{Log: logger.NewNop()}, logger.NewNop())
	return NewApplicationHandler(uc)
}

// serve builds an echo context with the acting user injected the way the
// auth middleware would.
func serve(t *testing.T, method, target, body string, actor *userDomain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		middleware.SetActingUser(c, actor)
	}
	return c, rec
}

func submitBody(t *testing.T) string {
	t.Helper()
	p := appDomain.Payload{
		ScholarshipID: handlerTestSchID,
		PersonalInfo: &appDomain.PersonalInfo{
			FirstName:        "Asha",
			LastName:         "Verma",
			Email:            "asha@example.com",
			Phone:            "9876543210",
			DateOfBirth:      "2002-04-15",
			Gender:           "FEMALE",
			AadharNumber:     "123456789012",
			EmergencyContact: "8765432109",
		},
		Documents: []appDomain.DocumentRef{
			{DocumentID: "DOC-1", Name: "marksheet.pdf", Type: "MARKSHEET", URL: "https://files.example.com/DOC-1"},
		},
	}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	return string(b)
}

func TestSubmitHandler_Created(t *testing.T) {
	f := newHandlerFixture()
	h := f.handler(t)

	c, rec := serve(t, http.MethodPost, "/applications", submitBody(t), f.actor)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotEmpty(t, resp["applicationId"])
}

func TestSubmitHandler_MissingAuth(t *testing.T) {
	f := newHandlerFixture()
	h := f.handler(t)

	c, rec := serve(t, http.MethodPost, "/applications", submitBody(t), nil)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, appDomain.CodeAuthRequired, resp.Error)
}

func TestSubmitHandler_ValidationFailure(t *testing.T) {
	f := newHandlerFixture()
	h := f.handler(t)

	// Phone too short for the inphone rule.
	body := strings.Replace(submitBody(t), "9876543210", "98765432", 1)
	c, rec := serve(t, http.MethodPost, "/applications", body, f.actor)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, appDomain.CodeValidationFailed, resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "phone", resp.Details[0].Field)
}

func TestSubmitHandler_DuplicateMapsTo409(t *testing.T) {
	f := newHandlerFixture()
	f.students.GetByUserIDFn = func(ctx context.Context, userID string) (*studentDomain.Student, error) {
		return &studentDomain.Student{StudentID: "STU-1", UserID: handlerTestUserID}, nil
	}
	f.apps.GetByStudentAndScholarshipFn = func(ctx context.Context, studentID, scholarshipID string) (*appDomain.Application, error) {
		return &appDomain.Application{ApplicationID: "APP-OLD", StudentID: studentID, ScholarshipID: scholarshipID}, nil
	}
	h := f.handler(t)

	c, rec := serve(t, http.MethodPost, "/applications", submitBody(t), f.actor)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, appDomain.CodeDuplicateApplication, resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "applicationId", resp.Details[0].Field)
	assert.Equal(t, "APP-OLD", resp.Details[0].Message)
}

func TestSubmitHandler_UnknownScholarshipMapsTo400(t *testing.T) {
	f := newHandlerFixture()
	h := f.handler(t)

	body := strings.Replace(submitBody(t), handlerTestSchID, "SCH-MISSING", 1)
	c, rec := serve(t, http.MethodPost, "/applications", body, f.actor)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, appDomain.CodeScholarshipNotFound, resp.Error)
}

func TestSubmitHandler_TransientMapsTo503(t *testing.T) {
	f := newHandlerFixture()
	f.students.GetByUserIDFn = func(ctx context.Context, userID string) (*studentDomain.Student, error) {
		return &studentDomain.Student{StudentID: "STU-1", UserID: handlerTestUserID}, nil
	}
	f.apps.CreateFn = func(ctx context.Context, a *appDomain.Application) error {
		return gorm.ErrInvalidDB
	}
	h := f.handler(t)

	c, rec := serve(t, http.MethodPost, "/applications", submitBody(t), f.actor)
	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, appDomain.CodeTransient, resp.Error)
}

func TestGetHandler_NotFound(t *testing.T) {
	f := newHandlerFixture()
	h := f.handler(t)

	c, rec := serve(t, http.MethodGet, "/applications/APP-X", "", f.actor)
	c.SetParamNames("id")
	c.SetParamValues("APP-X")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, appDomain.CodeNotFound, resp.Error)
}

func TestListHandler_PassesFilters(t *testing.T) {
	f := newHandlerFixture()
	f.actor.Role = userDomain.RoleAdmin

	var gotFilter appDomain.ListFilter
	f.apps.ListFn = func(ctx context.Context, flt appDomain.ListFilter) ([]appDomain.Application, int64, error) {
		gotFilter = flt
		return []appDomain.Application{{ApplicationID: "APP-1", Status: appDomain.StatusSubmitted}}, 1, nil
	}
	h := f.handler(t)

	c, rec := serve(t, http.MethodGet, "/applications?status=SUBMITTED&scholarshipId=SCH-1&page=2&limit=10", "", f.actor)
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, appDomain.StatusSubmitted, gotFilter.Status)
	assert.Equal(t, "SCH-1", gotFilter.ScholarshipID)
	assert.Equal(t, 2, gotFilter.Page)
	assert.Equal(t, 10, gotFilter.Limit)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	meta := resp["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["total"])
}
