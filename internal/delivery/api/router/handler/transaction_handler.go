package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"autonomax/internal/delivery/api/response"
	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/usecase"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
}

// TransactionHandler serves /api/Transacoes.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{transactionUC: params.TransactionUC}
}

type lineItemRequest struct {
	Name     string `json:"nome" validate:"required,max=100"`
	Quantity int    `json:"quantidade" validate:"min=1"`
}

type createTransactionRequest struct {
	Description string            `json:"descricao" validate:"required,max=200"`
	Amount      decimal.Decimal   `json:"valor" validate:"gt=0,lte=9999999.99"`
	Kind        string            `json:"tipo" validate:"required,oneof=Entrada Saida"`
	Date        *apiDate          `json:"data"`
	BusinessID  string            `json:"negocioId" validate:"required,uuid"`
	ClientID    *string           `json:"clienteId" validate:"omitempty,uuid"`
	Items       []lineItemRequest `json:"itens" validate:"max=100,dive"`
}

func (r *createTransactionRequest) trim() {
	r.Description = strings.TrimSpace(r.Description)
	for i := range r.Items {
		r.Items[i].Name = strings.TrimSpace(r.Items[i].Name)
	}
}

type periodQuery struct {
	Month int `json:"mes" query:"mes" validate:"required,min=1,max=12"`
	Year  int `json:"ano" query:"ano" validate:"required,min=2000,max=2100"`
}

type monthlyQuery struct {
	BusinessID string `json:"negocioId" query:"negocioId" validate:"required,uuid"`
	Month      int    `json:"mes" query:"mes" validate:"required,min=1,max=12"`
	Year       int    `json:"ano" query:"ano" validate:"required,min=2000,max=2100"`
}

type clientQuery struct {
	BusinessID string `json:"negocioId" query:"negocioId" validate:"required,uuid"`
}

func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req createTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.input()
	if err != nil {
		return err
	}

	txn, err := h.transactionUC.Create(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	return response.Created(c, toTransactionResponse(txn))
}

func (r *createTransactionRequest) input() (*usecase.CreateTransactionInput, error) {
	kind, ok := entity.ParseKind(r.Kind)
	if !ok {
		return nil, domainerrors.ErrInvalidKind
	}
	businessID, err := parseID(r.BusinessID, "negocioId")
	if err != nil {
		return nil, err
	}

	input := &usecase.CreateTransactionInput{
		Description: r.Description,
		Amount:      r.Amount,
		Kind:        kind,
		BusinessID:  businessID,
		Items:       make([]usecase.LineItemInput, 0, len(r.Items)),
	}
	if r.Date != nil {
		input.Date = r.Date.Time
	}
	if r.ClientID != nil && *r.ClientID != "" {
		clientID, err := parseID(*r.ClientID, "clienteId")
		if err != nil {
			return nil, err
		}
		input.ClientID = &clientID
	}
	for _, it := range r.Items {
		input.Items = append(input.Items, usecase.LineItemInput{Name: it.Name, Quantity: it.Quantity})
	}

	return input, nil
}

func (h *TransactionHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	txn, err := h.transactionUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return response.OK(c, toTransactionResponse(txn))
}

func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.transactionUC.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// ListByPeriod handles GET /api/Transacoes/por-periodo/:businessId?mes&ano.
func (h *TransactionHandler) ListByPeriod(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "businessId")
	if err != nil {
		return err
	}
	var q periodQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}

	txs, err := h.transactionUC.ListByPeriod(c.Request().Context(), userID, businessID, q.Month, q.Year)
	if err != nil {
		return err
	}

	return response.OK(c, toTransactionResponses(txs))
}

// ListByBusiness handles GET /api/Transacoes/por-negocio/:businessId with an optional ?ano.
func (h *TransactionHandler) ListByBusiness(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "businessId")
	if err != nil {
		return err
	}
	year, err := optionalYear(c)
	if err != nil {
		return err
	}

	txs, err := h.transactionUC.ListByBusiness(c.Request().Context(), userID, businessID, year)
	if err != nil {
		return err
	}

	return response.OK(c, toTransactionResponses(txs))
}

// ListByClient handles GET /api/Transacoes/por-cliente/:clientId?negocioId.
func (h *TransactionHandler) ListByClient(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}
	var q clientQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	businessID, err := parseID(q.BusinessID, "negocioId")
	if err != nil {
		return err
	}

	st, err := h.transactionUC.ListByClient(c.Request().Context(), userID, businessID, clientID)
	if err != nil {
		return err
	}

	return response.OK(c, clientStatementResponse{
		Client:       toClientResponse(st.Client),
		Transactions: toTransactionResponses(st.Transactions),
	})
}

// Monthly handles GET /api/Transacoes/mensal?negocioId&mes&ano.
func (h *TransactionHandler) Monthly(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var q monthlyQuery
	if err := bindQuery(c, &q); err != nil {
		return err
	}
	businessID, err := parseID(q.BusinessID, "negocioId")
	if err != nil {
		return err
	}

	st, err := h.transactionUC.Monthly(c.Request().Context(), userID, businessID, q.Month, q.Year)
	if err != nil {
		return err
	}

	return response.OK(c, monthlyResponse{
		summaryResponse: toSummaryResponse(st.Summary),
		Transactions:    toTransactionResponses(st.Transactions),
	})
}
