package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autonomax/config"
	apimiddleware "autonomax/internal/delivery/api/middleware"
	"autonomax/internal/delivery/api/router"
	"autonomax/internal/delivery/api/router/handler"
	deliverycontext "autonomax/internal/delivery/context"
	"autonomax/internal/domain/entity"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/domain/service"
	"autonomax/internal/ledger"
	mockSvc "autonomax/internal/mocks/service"
	mockUC "autonomax/internal/mocks/usecase"
	"autonomax/internal/usecase"
)

const goodToken = "good-token"

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type apiFixture struct {
	users        *mockUC.MockUserUsecase
	businesses   *mockUC.MockBusinessUsecase
	clients      *mockUC.MockClientUsecase
	products     *mockUC.MockProductUsecase
	transactions *mockUC.MockTransactionUsecase
	reports      *mockUC.MockReportUsecase
	tokens       *mockSvc.MockTokenService
	pingErr      error
	caller       uuid.UUID
	handler      http.Handler
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		users:        mockUC.NewMockUserUsecase(t),
		businesses:   mockUC.NewMockBusinessUsecase(t),
		clients:      mockUC.NewMockClientUsecase(t),
		products:     mockUC.NewMockProductUsecase(t),
		transactions: mockUC.NewMockTransactionUsecase(t),
		reports:      mockUC.NewMockReportUsecase(t),
		tokens:       mockSvc.NewMockTokenService(t),
		caller:       uuid.New(),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.CORS.AllowOrigins = []string{"http://localhost:5173"}
	cfg.RateLimit = &config.RateLimitConfig{LoginPerMinute: 5, GlobalPerMinute: 1000}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f.tokens.EXPECT().Validate(goodToken).
		Return(&service.UserClaims{UserID: f.caller, Name: "Ana", Email: "ana@exemplo.com"}, nil).
		Maybe()

	params := router.RouterParams{
		AuthHandler:        handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: f.users, Logger: logger}),
		BusinessHandler:    handler.NewBusinessHandler(handler.BusinessHandlerParams{BusinessUC: f.businesses}),
		ClientHandler:      handler.NewClientHandler(handler.ClientHandlerParams{ClientUC: f.clients}),
		ProductHandler:     handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.products}),
		TransactionHandler: handler.NewTransactionHandler(handler.TransactionHandlerParams{TransactionUC: f.transactions}),
		ReportHandler:      handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: f.reports}),
		HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{
			Database: pingFunc(func(context.Context) error { return f.pingErr }),
			Logger:   logger,
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.tokens, logger),
		RateLimiters:   apimiddleware.NewRateLimiters(cfg),
		Metrics:        apimiddleware.NewMetrics(),
	}
	f.handler = newEcho(cfg, logger, params)

	return f
}

func (f *apiFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ErrorResponse {
	t.Helper()

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)
	assert.False(t, body.Success)
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body.Meta.RequestID)

	return body
}

func TestLogin(t *testing.T) {
	f := newAPIFixture(t)
	user := &entity.User{ID: uuid.New(), Name: "Ana", Email: "ana@exemplo.com"}
	expires := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	f.users.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@exemplo.com", Password: "segredo123"}).
		Return(&usecase.LoginOutput{Token: "jwt", ExpiresAt: expires, User: user}, nil)

	rec := f.do(http.MethodPost, "/api/Auth/login", `{"email":"ana@exemplo.com","senha":"segredo123"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "jwt", body["token"])
	assert.Equal(t, "2024-03-15T18:00:00Z", body["expiraEm"])
	usuario := body["usuario"].(map[string]any)
	assert.Equal(t, user.ID.String(), usuario["id"])
	assert.Equal(t, "Ana", usuario["nome"])
	assert.NotContains(t, body, "data")
}

func TestLoginRateLimit(t *testing.T) {
	f := newAPIFixture(t)
	f.users.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Times(5)

	for i := 0; i < 5; i++ {
		rec := f.do(http.MethodPost, "/api/Auth/login", `{"email":"ana@exemplo.com","senha":"errada"}`, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, "attempt %d", i+1)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Error.Code)
	}

	rec := f.do(http.MethodPost, "/api/Auth/login", `{"email":"ana@exemplo.com","senha":"errada"}`, "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decodeError(t, rec).Error.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	f := newAPIFixture(t)
	f.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrEmailTaken)

	rec := f.do(http.MethodPost, "/api/Auth/register", `{"nome":"Ana Souza","email":"ana@exemplo.com","senha":"segredo123"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EMAIL_TAKEN", decodeError(t, rec).Error.Code)
}

func TestRegister_Validation(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/Auth/register", `{"nome":"An","email":"nope","senha":"123"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	details, ok := body.Error.Details.([]any)
	require.True(t, ok)
	assert.Len(t, details, 3)
	first := details[0].(map[string]any)
	assert.Equal(t, "nome", first["field"])
	assert.Equal(t, "min", first["rule"])
	assert.Equal(t, "3", first["param"])
}

func TestRegister_NameIsTrimmedBeforeValidation(t *testing.T) {
	tests := []struct {
		name     string
		nome     string
		wantRule string
	}{
		{name: "blank", nome: "     ", wantRule: "required"},
		{name: "short once trimmed", nome: "  ab  ", wantRule: "min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)

			body := `{"nome":"` + tt.nome + `","email":"ana@exemplo.com","senha":"segredo123"}`
			rec := f.do(http.MethodPost, "/api/Auth/register", body, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)

			details := decodeError(t, rec).Error.Details.([]any)
			require.Len(t, details, 1)
			assert.Equal(t, "nome", details[0].(map[string]any)["field"])
			assert.Equal(t, tt.wantRule, details[0].(map[string]any)["rule"])
		})
	}
}

func TestRegister_TrimmedInputReachesUsecase(t *testing.T) {
	f := newAPIFixture(t)
	f.users.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Name: "Ana Souza", Email: "ana@exemplo.com", Password: "segredo123"}).
		Return(&entity.User{ID: uuid.New(), Name: "Ana Souza", Email: "ana@exemplo.com"}, nil)

	rec := f.do(http.MethodPost, "/api/Auth/register", `{"nome":"  Ana Souza ","email":" ana@exemplo.com ","senha":"segredo123"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBusiness_BlankNameRejected(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/Negocios", `{"nome":"    "}`, goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	details := decodeError(t, rec).Error.Details.([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "nome", details[0].(map[string]any)["field"])
	assert.Equal(t, "required", details[0].(map[string]any)["rule"])
}

func TestAuthentication(t *testing.T) {
	f := newAPIFixture(t)
	f.tokens.EXPECT().Validate("expired").Return(nil, service.ErrTokenExpired)
	f.tokens.EXPECT().Validate("forged").Return(nil, service.ErrTokenBadSignature)

	var bodies []string
	for _, token := range []string{"", "expired", "forged"} {
		rec := f.do(http.MethodGet, "/api/Negocios", "", token)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		body := decodeError(t, rec)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
		assert.Nil(t, body.Error.Details)
		bodies = append(bodies, body.Error.Message)
	}
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
}

func TestBusiness_ForeignIsNotFound(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	f.businesses.EXPECT().Get(mock.Anything, f.caller, id).Return(nil, domainerrors.ErrNotFound)

	rec := f.do(http.MethodGet, "/api/Negocios/"+id.String(), "", goodToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestBusiness_CreateAndDelete(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	f.businesses.EXPECT().
		Create(mock.Anything, f.caller, &usecase.BusinessInput{Name: "Doceria"}).
		Return(&entity.Business{ID: id, Name: "Doceria", OwnerUserID: f.caller}, nil)
	f.businesses.EXPECT().Delete(mock.Anything, f.caller, id).Return(nil)

	rec := f.do(http.MethodPost, "/api/Negocios", `{"nome":"Doceria"}`, goodToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nome":"Doceria"`)

	rec = f.do(http.MethodDelete, "/api/Negocios/"+id.String(), "", goodToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestBusiness_BadID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/Negocios/not-a-uuid", "", goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestTransaction_Create(t *testing.T) {
	f := newAPIFixture(t)
	businessID, clientID, txnID := uuid.New(), uuid.New(), uuid.New()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	f.transactions.EXPECT().
		Create(mock.Anything, f.caller, mock.MatchedBy(func(in *usecase.CreateTransactionInput) bool {
			return in.Kind == entity.KindIncome &&
				in.Amount.Equal(decimal.RequireFromString("150")) &&
				in.Date.Equal(date) &&
				in.ClientID != nil && *in.ClientID == clientID &&
				len(in.Items) == 1 && in.Items[0].Quantity == 2
		})).
		Return(&entity.Transaction{
			ID:          txnID,
			Description: "Encomenda",
			Amount:      decimal.RequireFromString("150"),
			Kind:        entity.KindIncome,
			Date:        date,
			BusinessID:  businessID,
			ClientID:    &clientID,
			Items:       []entity.LineItem{{ID: uuid.New(), Name: "Bolo", Quantity: 2}},
		}, nil)

	body := `{"descricao":"Encomenda","valor":150,"tipo":"Entrada","data":"2024-03-15",` +
		`"negocioId":"` + businessID.String() + `","clienteId":"` + clientID.String() + `",` +
		`"itens":[{"nome":"Bolo","quantidade":2}]}`
	rec := f.do(http.MethodPost, "/api/Transacoes", body, goodToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "150.00", got["valor"])
	assert.Equal(t, "Entrada", got["tipo"])
	assert.Equal(t, clientID.String(), got["clienteId"])
	assert.Len(t, got["itens"], 1)
}

func TestTransaction_CreateRejectsKind(t *testing.T) {
	f := newAPIFixture(t)

	body := `{"descricao":"Venda","valor":10,"tipo":"entrada","negocioId":"` + uuid.NewString() + `"}`
	rec := f.do(http.MethodPost, "/api/Transacoes", body, goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	details := resp.Error.Details.([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "tipo", details[0].(map[string]any)["field"])
	assert.Equal(t, "oneof", details[0].(map[string]any)["rule"])
}

func TestTransaction_ListByPeriodValidatesQuery(t *testing.T) {
	f := newAPIFixture(t)
	businessID := uuid.New()
	f.transactions.EXPECT().ListByPeriod(mock.Anything, f.caller, businessID, 3, 2024).Return([]*entity.Transaction{}, nil)

	rec := f.do(http.MethodGet, "/api/Transacoes/por-periodo/"+businessID.String()+"?mes=13&ano=2024", "", goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/Transacoes/por-periodo/"+businessID.String()+"?mes=3&ano=2024", "", goodToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestTransaction_ListByClientRequiresBusiness(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/Transacoes/por-cliente/"+uuid.NewString(), "", goodToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/Transacoes/por-cliente/"+uuid.NewString()+"?negocioId="+uuid.NewString(), "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTransaction_Monthly(t *testing.T) {
	f := newAPIFixture(t)
	businessID := uuid.New()
	f.transactions.EXPECT().Monthly(mock.Anything, f.caller, businessID, 3, 2024).Return(&usecase.MonthlyStatement{
		Summary: ledger.Summary{
			Income:  decimal.RequireFromString("100"),
			Expense: decimal.RequireFromString("30.5"),
			Balance: decimal.RequireFromString("69.5"),
		},
		Transactions: []*entity.Transaction{},
	}, nil)

	rec := f.do(http.MethodGet, "/api/Transacoes/mensal?negocioId="+businessID.String()+"&mes=3&ano=2024", "", goodToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entradas":"100.00","saidas":"30.50","saldo":"69.50","lista":[]}`, rec.Body.String())
}

func TestReport_AnnualDefaultsToCurrentYear(t *testing.T) {
	f := newAPIFixture(t)
	businessID := uuid.New()
	year := time.Now().UTC().Year()
	f.reports.EXPECT().Annual(mock.Anything, f.caller, businessID, year).Return(&usecase.AnnualReport{
		Year:            year,
		Months:          ledger.MonthlySeries(nil, year),
		TopItems:        []ledger.ItemRank{{Name: "Bolo", Quantity: 4}},
		TopItemsCompact: []ledger.ItemRank{{Name: "Bolo", Quantity: 4}},
		TopClients:      []usecase.ClientRanking{},
	}, nil)

	rec := f.do(http.MethodGet, "/api/Relatorios/anual/"+businessID.String(), "", goodToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.EqualValues(t, year, got["ano"])
	assert.Len(t, got["meses"], 12)
	assert.Len(t, got["rankingItens"], 1)
	assert.Equal(t, []any{}, got["rankingClientes"])
}

func TestDashboard(t *testing.T) {
	f := newAPIFixture(t)
	businessID, clientID := uuid.New(), uuid.New()
	f.reports.EXPECT().Dashboard(mock.Anything, f.caller, businessID).Return(&usecase.Dashboard{
		TopClients: []usecase.ClientRanking{
			{ClientID: clientID, Name: "Ana", Total: decimal.RequireFromString("300"), Count: 2},
		},
		RecentMonths: []ledger.MonthSummary{
			{Year: 2024, Month: time.March, Label: "03/2024", Income: decimal.RequireFromString("300")},
		},
	}, nil)

	rec := f.do(http.MethodGet, "/api/Dashboard/"+businessID.String(), "", goodToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"resumoGeral":{"entradas":"0.00","saidas":"0.00","saldo":"0.00"},
		"ranking":[{"clienteId":"`+clientID.String()+`","nomeCliente":"Ana","totalGasto":"300.00","quantidade":2}],
		"historicoMensal":[{"mes":"03/2024","entradas":"300.00","saidas":"0.00"}]
	}`, rec.Body.String())
}

func TestUnhandledErrorIsGeneric(t *testing.T) {
	f := newAPIFixture(t)
	f.businesses.EXPECT().List(mock.Anything, f.caller).Return(nil, errors.New("pq: password authentication failed"))

	rec := f.do(http.MethodGet, "/api/Negocios", "", goodToken)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/nowhere", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	f.pingErr = errors.New("connection refused")
	rec = f.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetrics(t *testing.T) {
	f := newAPIFixture(t)
	f.do(http.MethodGet, "/healthz", "", "")

	rec := f.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `autonomax_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestCORS(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/Negocios", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
