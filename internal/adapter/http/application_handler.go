package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"scholarhub-backend/internal/adapter/middleware"
	appDomain "scholarhub-backend/internal/domain/application"
	appUsecase "scholarhub-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *appUsecase.Usecase }

func NewApplicationHandler(uc *appUsecase.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitResponse struct {
	Success       bool                        `json:"success"`
	Message       string                      `json:"message"`
	ApplicationID string                      `json:"applicationId,omitempty"`
	Data          *appUsecase.ApplicationDTO  `json:"data,omitempty"`
	Meta          *listMeta                   `json:"meta,omitempty"`
	Items         []appUsecase.ApplicationDTO `json:"items,omitempty"`
}

type listMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Submit handles POST /applications. Payload sections are validated here at
// the boundary; the usecase only re-checks referential state.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	actor := middleware.ActingUser(c)
	if actor == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated", Error: appDomain.CodeAuthRequired})
	}

	var req appDomain.Payload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body", Error: appDomain.CodeValidationFailed})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Error:   appDomain.CodeValidationFailed,
			Details: appDomain.ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), actor.UserID, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, submitResponse{
		Success:       true,
		Message:       "application submitted",
		ApplicationID: dto.ApplicationID,
		Data:          dto,
	})
}

// List handles GET /applications with role-sensitive scoping.
func (h *ApplicationHandler) List(c echo.Context) error {
	actor := middleware.ActingUser(c)
	if actor == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated", Error: appDomain.CodeAuthRequired})
	}

	f := appDomain.ListFilter{
		Status:        appDomain.Status(c.QueryParam("status")),
		ScholarshipID: c.QueryParam("scholarshipId"),
	}
	if v := c.QueryParam("page"); v != "" {
		f.Page, _ = strconv.Atoi(v)
	}
	if v := c.QueryParam("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}

	res, err := h.uc.List(c.Request().Context(), actor, f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, submitResponse{
		Success: true,
		Message: "ok",
		Items:   res.Items,
		Meta:    &listMeta{Page: res.Page, Limit: res.Limit, Total: res.Total},
	})
}

// Get handles GET /applications/:id.
func (h *ApplicationHandler) Get(c echo.Context) error {
	if middleware.ActingUser(c) == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not authenticated", Error: appDomain.CodeAuthRequired})
	}

	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, submitResponse{Success: true, Message: "ok", Data: dto})
}
