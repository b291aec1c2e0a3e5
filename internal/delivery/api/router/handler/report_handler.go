package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"autonomax/internal/delivery/api/response"
	"autonomax/internal/usecase"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler serves the dashboard and the annual report.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	now      func() time.Time
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC, now: time.Now}
}

// Dashboard handles GET /api/Dashboard/:negocioId.
func (h *ReportHandler) Dashboard(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "negocioId")
	if err != nil {
		return err
	}

	d, err := h.reportUC.Dashboard(c.Request().Context(), userID, businessID)
	if err != nil {
		return err
	}

	return response.OK(c, toDashboardResponse(d))
}

// Annual handles GET /api/Relatorios/anual/:negocioId?ano. The year defaults to the current one.
func (h *ReportHandler) Annual(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "negocioId")
	if err != nil {
		return err
	}
	requested, err := optionalYear(c)
	if err != nil {
		return err
	}
	year := h.now().UTC().Year()
	if requested != nil {
		year = *requested
	}

	r, err := h.reportUC.Annual(c.Request().Context(), userID, businessID, year)
	if err != nil {
		return err
	}

	return response.OK(c, toAnnualReportResponse(r))
}
