package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"autonomax/internal/delivery/api/response"
	"autonomax/internal/usecase"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves /api/ProdutosServicos.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

type createProductRequest struct {
	Name        string          `json:"nome" validate:"required,max=100"`
	Description *string         `json:"descricao" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"preco" validate:"gt=0,lte=99999.99"`
	IsService   bool            `json:"ehServico"`
	BusinessID  string          `json:"negocioId" validate:"required,uuid"`
}

func (r *createProductRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(r.Description)
}

func (h *ProductHandler) ListByBusiness(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "negocioId")
	if err != nil {
		return err
	}

	products, err := h.productUC.ListByBusiness(c.Request().Context(), userID, businessID)
	if err != nil {
		return err
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}

	return response.OK(c, out)
}

func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req createProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	businessID, err := parseID(req.BusinessID, "negocioId")
	if err != nil {
		return err
	}

	product, err := h.productUC.Create(c.Request().Context(), userID, businessID, &usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsService:   req.IsService,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toProductResponse(product))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.NoContent(c)
}
