package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarhub-backend/internal/adapter/middleware"
	appDomain "scholarhub-backend/internal/domain/application"
	draftUsecase "scholarhub-backend/internal/usecase/draft"
)

type DraftHandler struct{ uc *draftUsecase.Usecase }

func NewDraftHandler(uc *draftUsecase.Usecase) *DraftHandler { return &DraftHandler{uc: uc} }

type saveDraftReq struct {
	ScholarshipID string            `json:"scholarshipId"`
	Payload       appDomain.Payload `json:"payload"`
}

type draftResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *draftUsecase.Draft `json:"data"`
}

// Save handles POST /applications/draft. Drafts are best-effort: a storage
// failure comes back success:false but never a 5xx, so the wizard keeps
// going on its local tier.
func (h *DraftHandler) Save(c echo.Context) error {
	actor := middleware.ActingUser(c)
	if actor == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated", Error: appDomain.CodeAuthRequired})
	}

	var req saveDraftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body", Error: appDomain.CodeValidationFailed})
	}
	if req.ScholarshipID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "scholarshipId is required",
			Error:   appDomain.CodeValidationFailed,
			Details: []appDomain.FieldError{{Field: "scholarshipId", Message: "is required"}},
		})
	}

	d := draftUsecase.Draft{ScholarshipID: req.ScholarshipID, Payload: req.Payload}
	if err := h.uc.Save(c.Request().Context(), actor.UserID, d); err != nil {
		return c.JSON(http.StatusOK, map[string]any{"success": false, "message": "draft not saved"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "draft saved"})
}

// Get handles GET /applications/draft/:scholarshipId; data is null when no
// draft exists.
func (h *DraftHandler) Get(c echo.Context) error {
	actor := middleware.ActingUser(c)
	if actor == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated", Error: appDomain.CodeAuthRequired})
	}

	d, err := h.uc.Get(c.Request().Context(), actor.UserID, c.Param("scholarshipId"))
	if err != nil {
		return c.JSON(http.StatusOK, draftResponse{Success: false, Message: "draft unavailable"})
	}
	return c.JSON(http.StatusOK, draftResponse{Success: true, Message: "ok", Data: d})
}

// Clear handles DELETE /applications/draft/:scholarshipId, called by the
// wizard after a confirmed submission.
func (h *DraftHandler) Clear(c echo.Context) error {
	actor := middleware.ActingUser(c)
	if actor == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated", Error: appDomain.CodeAuthRequired})
	}

	if err := h.uc.Clear(c.Request().Context(), actor.UserID, c.Param("scholarshipId")); err != nil {
		return c.JSON(http.StatusOK, map[string]any{"success": false, "message": "draft not cleared"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": "draft cleared"})
}
