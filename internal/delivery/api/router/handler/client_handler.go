package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"autonomax/internal/delivery/api/response"
	"autonomax/internal/usecase"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
}

// ClientHandler serves /api/Clientes.
type ClientHandler struct {
	clientUC usecase.ClientUsecase
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{clientUC: params.ClientUC}
}

type clientFields struct {
	Name    string  `json:"nome" validate:"required,max=100"`
	Phone   *string `json:"celular" validate:"omitempty,max=20"`
	Address *string `json:"endereco" validate:"omitempty,max=200"`
	City    *string `json:"cidade" validate:"omitempty,max=100"`
	State   *string `json:"estado" validate:"omitempty,len=2,alpha"`
	Notes   *string `json:"observacoes" validate:"omitempty,max=500"`
}

func (f *clientFields) trim() {
	f.Name = strings.TrimSpace(f.Name)
	for _, s := range []*string{f.Phone, f.Address, f.City, f.State, f.Notes} {
		trimPtr(s)
	}
}

func (f *clientFields) input() *usecase.ClientInput {
	return &usecase.ClientInput{
		Name:    f.Name,
		Phone:   f.Phone,
		Address: f.Address,
		City:    f.City,
		State:   f.State,
		Notes:   f.Notes,
	}
}

type createClientRequest struct {
	Name       string  `json:"nome" validate:"required,max=100"`
	Phone      *string `json:"celular" validate:"omitempty,max=20"`
	Address    *string `json:"endereco" validate:"omitempty,max=200"`
	City       *string `json:"cidade" validate:"omitempty,max=100"`
	State      *string `json:"estado" validate:"omitempty,len=2,alpha"`
	Notes      *string `json:"observacoes" validate:"omitempty,max=500"`
	BusinessID string  `json:"negocioId" validate:"required,uuid"`
}

func (r *createClientRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	for _, s := range []*string{r.Phone, r.Address, r.City, r.State, r.Notes} {
		trimPtr(s)
	}
}

func (r *createClientRequest) input() *usecase.ClientInput {
	return (&clientFields{
		Name:    r.Name,
		Phone:   r.Phone,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Notes:   r.Notes,
	}).input()
}

func (h *ClientHandler) ListByBusiness(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "negocioId")
	if err != nil {
		return err
	}

	clients, err := h.clientUC.ListByBusiness(c.Request().Context(), userID, businessID)
	if err != nil {
		return err
	}

	out := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		out = append(out, toClientResponse(cl))
	}

	return response.OK(c, out)
}

func (h *ClientHandler) Get(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.clientUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return err
	}

	return response.OK(c, toClientResponse(client))
}

func (h *ClientHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req createClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	businessID, err := parseID(req.BusinessID, "negocioId")
	if err != nil {
		return err
	}

	client, err := h.clientUC.Create(c.Request().Context(), userID, businessID, req.input())
	if err != nil {
		return err
	}

	return response.Created(c, toClientResponse(client))
}

func (h *ClientHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req clientFields
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.clientUC.Update(c.Request().Context(), userID, id, req.input())
	if err != nil {
		return err
	}

	return response.OK(c, toClientResponse(client))
}

func (h *ClientHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.clientUC.Delete(c.Request().Context(), userID, id); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Ranking handles GET /api/Clientes/ranking/:negocioId.
func (h *ClientHandler) Ranking(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "negocioId")
	if err != nil {
		return err
	}

	ranks, err := h.clientUC.Ranking(c.Request().Context(), userID, businessID)
	if err != nil {
		return err
	}

	return response.OK(c, toClientRankingResponses(ranks))
}
