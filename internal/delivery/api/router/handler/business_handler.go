package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"autonomax/internal/delivery/api/response"
	"autonomax/internal/domain/entity"
	"autonomax/internal/usecase"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
}

// BusinessHandler serves /api/Negocios.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{businessUC: params.BusinessUC}
}

type businessRequest struct {
	Name     string  `json:"nome" validate:"required,max=50"`
	Document *string `json:"documento" validate:"omitempty,max=20"`
}

func (r *businessRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(r.Document)
}

func (r *businessRequest) input() *usecase.BusinessInput {
	return &usecase.BusinessInput{Name: r.Name, Document: r.Document}
}

func (h *BusinessHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	businesses, err := h.businessUC.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, toBusinessResponses(businesses))
}

func (h *BusinessHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.businessUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return response.OK(c, toBusinessResponse(business))
}

func (h *BusinessHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req businessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.Create(c.Request().Context(), userID, req.input())
	if err != nil {
		return err
	}

	return response.Created(c, toBusinessResponse(business))
}

func (h *BusinessHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req businessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	business, err := h.businessUC.Update(c.Request().Context(), userID, id, req.input())
	if err != nil {
		return err
	}

	return response.OK(c, toBusinessResponse(business))
}

func (h *BusinessHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.businessUC.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.NoContent(c)
}

func toBusinessResponses(businesses []*entity.Business) []businessResponse {
	out := make([]businessResponse, 0, len(businesses))
	for _, b := range businesses {
		out = append(out, toBusinessResponse(b))
	}

	return out
}
