package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appDomain "scholarhub-backend/internal/domain/application"
)

func TestClient_SubmitSuccess(t *testing.T) {
	var gotAuth string
	var gotBody appDomain.Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/applications", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":       true,
			"message":       "application submitted",
			"applicationId": "APP-42",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	p := appDomain.Payload{ScholarshipID: "SCH-1"}

	res, err := c.Submit(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "APP-42", res.ApplicationID)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "SCH-1", gotBody.ScholarshipID)
}

func TestClient_SubmitDuplicateDecodesConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "you have already applied for this scholarship",
			"error":   appDomain.CodeDuplicateApplication,
			"details": []map[string]string{{"field": "applicationId", "message": "APP-OLD"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	_, err := c.Submit(context.Background(), appDomain.Payload{ScholarshipID: "SCH-1"})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.IsDuplicate())
	assert.Equal(t, "APP-OLD", se.ExistingApplicationID)
	assert.Equal(t, "you have already applied for this scholarship", se.Message)
}

func TestClient_SubmitUnparseableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	_, err := c.Submit(context.Background(), appDomain.Payload{ScholarshipID: "SCH-1"})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "INTERNAL", se.Code)
}

func TestClient_DraftRoundTrip(t *testing.T) {
	var stored *draftData
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/applications/draft":
			var req saveDraftBody
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			stored = &draftData{ScholarshipID: req.ScholarshipID, Payload: req.Payload, SavedAt: time.Now().UTC()}
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "draft saved"})
		case r.Method == http.MethodGet && r.URL.Path == "/applications/draft/SCH-1":
			_ = json.NewEncoder(w).Encode(draftBody{Success: true, Message: "ok", Data: stored})
		case r.Method == http.MethodDelete && r.URL.Path == "/applications/draft/SCH-1":
			stored = nil
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "draft cleared"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	ctx := context.Background()

	// Nothing saved yet.
	snap, err := c.Load(ctx, "SCH-1")
	require.NoError(t, err)
	assert.Nil(t, snap)

	personal := validPersonal()
	err = c.Save(ctx, "SCH-1", Snapshot{
		Payload: appDomain.Payload{ScholarshipID: "SCH-1", PersonalInfo: &personal},
	})
	require.NoError(t, err)

	snap, err = c.Load(ctx, "SCH-1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.NotNil(t, snap.Payload.PersonalInfo)
	assert.Equal(t, "Asha", snap.Payload.PersonalInfo.FirstName)
	assert.Equal(t, -1, snap.StepIndex)

	require.NoError(t, c.Clear(ctx, "SCH-1"))
	snap, err = c.Load(ctx, "SCH-1")
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestClient_SaveReportsStorageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "draft not saved"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-123")
	err := c.Save(context.Background(), "SCH-1", Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "draft not saved")
}
