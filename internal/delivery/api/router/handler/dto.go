package handler

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autonomax/internal/domain/entity"
	"autonomax/internal/errors"
	"autonomax/internal/ledger"
	"autonomax/internal/usecase"
)

// money renders amounts as JSON strings with two decimal places.
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + decimal.Decimal(m).StringFixed(2) + `"`), nil
}

// apiDate accepts RFC 3339 timestamps as well as bare "2006-01-02" dates.
type apiDate struct {
	time.Time
}

var apiDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func (d *apiDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range apiDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()

			return nil
		}
	}

	return errors.Errorf("invalid date %q", s)
}

// --- Users ---

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"nome"`
	Email string    `json:"email"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// --- Businesses ---

type businessResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Document  *string   `json:"documento,omitempty"`
	OwnerID   uuid.UUID `json:"usuarioId"`
	CreatedAt time.Time `json:"criadoEm"`
}

func toBusinessResponse(b *entity.Business) businessResponse {
	return businessResponse{
		ID:        b.ID,
		Name:      b.Name,
		Document:  b.Document,
		OwnerID:   b.OwnerUserID,
		CreatedAt: b.CreatedAt,
	}
}

// --- Clients ---

type clientResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"nome"`
	Phone      *string   `json:"celular,omitempty"`
	Address    *string   `json:"endereco,omitempty"`
	City       *string   `json:"cidade,omitempty"`
	State      *string   `json:"estado,omitempty"`
	Notes      *string   `json:"observacoes,omitempty"`
	BusinessID uuid.UUID `json:"negocioId"`
}

func toClientResponse(c *entity.Client) clientResponse {
	return clientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		Notes:      c.Notes,
		BusinessID: c.BusinessID,
	}
}

type clientRankingResponse struct {
	ClientID uuid.UUID `json:"clienteId"`
	Name     string    `json:"nomeCliente"`
	Total    money     `json:"totalGasto"`
	Count    int       `json:"quantidade"`
}

func toClientRankingResponses(ranks []usecase.ClientRanking) []clientRankingResponse {
	out := make([]clientRankingResponse, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, clientRankingResponse{
			ClientID: r.ClientID,
			Name:     r.Name,
			Total:    money(r.Total),
			Count:    r.Count,
		})
	}

	return out
}

// --- Products ---

type productResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nome"`
	Description *string   `json:"descricao,omitempty"`
	Price       money     `json:"preco"`
	IsService   bool      `json:"ehServico"`
	BusinessID  uuid.UUID `json:"negocioId"`
}

func toProductResponse(p *entity.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money(p.Price),
		IsService:   p.IsService,
		BusinessID:  p.BusinessID,
	}
}

// --- Transactions ---

type lineItemResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"nome"`
	Quantity int       `json:"quantidade"`
}

type transactionResponse struct {
	ID          uuid.UUID          `json:"id"`
	Description string             `json:"descricao"`
	Amount      money              `json:"valor"`
	Kind        string             `json:"tipo"`
	Date        time.Time          `json:"data"`
	BusinessID  uuid.UUID          `json:"negocioId"`
	ClientID    *uuid.UUID         `json:"clienteId,omitempty"`
	Client      *clientResponse    `json:"cliente,omitempty"`
	Items       []lineItemResponse `json:"itens"`
}

func toTransactionResponse(t *entity.Transaction) transactionResponse {
	items := make([]lineItemResponse, 0, len(t.Items))
	for _, it := range t.Items {
		items = append(items, lineItemResponse{ID: it.ID, Name: it.Name, Quantity: it.Quantity})
	}

	resp := transactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      money(t.Amount),
		Kind:        t.Kind.Label(),
		Date:        t.Date,
		BusinessID:  t.BusinessID,
		ClientID:    t.ClientID,
		Items:       items,
	}
	if t.Client != nil {
		client := toClientResponse(t.Client)
		resp.Client = &client
	}

	return resp
}

func toTransactionResponses(txs []*entity.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}

	return out
}

// --- Aggregates ---

type summaryResponse struct {
	Income  money `json:"entradas"`
	Expense money `json:"saidas"`
	Balance money `json:"saldo"`
}

func toSummaryResponse(s ledger.Summary) summaryResponse {
	return summaryResponse{Income: money(s.Income), Expense: money(s.Expense), Balance: money(s.Balance)}
}

type monthlyResponse struct {
	summaryResponse
	Transactions []transactionResponse `json:"lista"`
}

type clientStatementResponse struct {
	Client       clientResponse        `json:"cliente"`
	Transactions []transactionResponse `json:"transacoes"`
}

type recentMonthResponse struct {
	Label   string `json:"mes"`
	Income  money  `json:"entradas"`
	Expense money  `json:"saidas"`
}

type dashboardResponse struct {
	Summary      summaryResponse         `json:"resumoGeral"`
	Ranking      []clientRankingResponse `json:"ranking"`
	RecentMonths []recentMonthResponse   `json:"historicoMensal"`
}

func toDashboardResponse(d *usecase.Dashboard) dashboardResponse {
	months := make([]recentMonthResponse, 0, len(d.RecentMonths))
	for _, m := range d.RecentMonths {
		months = append(months, recentMonthResponse{Label: m.Label, Income: money(m.Income), Expense: money(m.Expense)})
	}

	return dashboardResponse{
		Summary:      toSummaryResponse(d.Summary),
		Ranking:      toClientRankingResponses(d.TopClients),
		RecentMonths: months,
	}
}

type monthBucketResponse struct {
	Month   int   `json:"mes"`
	Income  money `json:"entradas"`
	Expense money `json:"saidas"`
	Profit  money `json:"lucro"`
}

type itemRankResponse struct {
	Name     string `json:"nome"`
	Quantity int    `json:"quantidade"`
}

type annualReportResponse struct {
	Year            int                     `json:"ano"`
	Summary         summaryResponse         `json:"resumo"`
	Months          []monthBucketResponse   `json:"meses"`
	TopItems        []itemRankResponse      `json:"rankingItens"`
	TopItemsCompact []itemRankResponse      `json:"rankingItensCompacto"`
	TopClients      []clientRankingResponse `json:"rankingClientes"`
}

func toItemRankResponses(ranks []ledger.ItemRank) []itemRankResponse {
	out := make([]itemRankResponse, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, itemRankResponse{Name: r.Name, Quantity: r.Quantity})
	}

	return out
}

func toAnnualReportResponse(r *usecase.AnnualReport) annualReportResponse {
	months := make([]monthBucketResponse, 0, len(r.Months))
	for _, m := range r.Months {
		months = append(months, monthBucketResponse{
			Month:   int(m.Month),
			Income:  money(m.Income),
			Expense: money(m.Expense),
			Profit:  money(m.Profit),
		})
	}

	return annualReportResponse{
		Year:            r.Year,
		Summary:         toSummaryResponse(r.Summary),
		Months:          months,
		TopItems:        toItemRankResponses(r.TopItems),
		TopItemsCompact: toItemRankResponses(r.TopItemsCompact),
		TopClients:      toClientRankingResponses(r.TopClients),
	}
}
