package ledger

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autonomax/internal/domain/entity"
)

// Ranking sizes used by the API.
const (
	TopItemsDashboard = 10
	TopItemsCompact   = 5
	TopClients        = 10
	TopClientsSummary = 5
)

// ItemRank is the total quantity sold of one item name.
type ItemRank struct {
	Name     string
	Quantity int
}

// RankItems ranks the line items of income transactions by summed quantity.
// Names are grouped after trimming surrounding whitespace, preserving case.
// Ties keep the order in which names were first seen. A limit <= 0 keeps all.
func RankItems(txs []*entity.Transaction, limit int) []ItemRank {
	index := make(map[string]int)
	ranks := make([]ItemRank, 0)

	for _, t := range txs {
		if t == nil || !t.IsIncome() {
			continue
		}
		for _, item := range t.Items {
			name := item.NormalizedName()
			if name == "" {
				continue
			}
			i, ok := index[name]
			if !ok {
				i = len(ranks)
				index[name] = i
				ranks = append(ranks, ItemRank{Name: name})
			}
			ranks[i].Quantity += item.Quantity
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Quantity > ranks[j].Quantity
	})

	return truncate(ranks, limit)
}

// ClientRank is the income attributed to one client.
type ClientRank struct {
	ClientID uuid.UUID
	Total    decimal.Decimal
	Count    int // Number of income transactions.
}

// RankClients ranks clients by the summed amount of their income transactions.
// Transactions without a client are skipped. Ties keep first-seen order.
// A limit <= 0 keeps all.
func RankClients(txs []*entity.Transaction, limit int) []ClientRank {
	index := make(map[uuid.UUID]int)
	ranks := make([]ClientRank, 0)

	for _, t := range txs {
		if t == nil || !t.IsIncome() || t.ClientID == nil {
			continue
		}
		id := *t.ClientID
		i, ok := index[id]
		if !ok {
			i = len(ranks)
			index[id] = i
			ranks = append(ranks, ClientRank{ClientID: id})
		}
		ranks[i].Total = ranks[i].Total.Add(t.Amount)
		ranks[i].Count++
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Total.GreaterThan(ranks[j].Total)
	})

	return truncate(ranks, limit)
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}

	return s
}
