package usecase

import (
	"context"

	"github.com/google/uuid"

	"autonomax/internal/ledger"
)

// Dashboard is the landing view of a business.
type Dashboard struct {
	Summary      ledger.Summary
	TopClients   []ClientRanking      // top 5 by income
	RecentMonths []ledger.MonthSummary // last 6 months with activity, newest first
}

// AnnualReport aggregates one calendar year of a business.
type AnnualReport struct {
	Year            int
	Summary         ledger.Summary
	Months          []ledger.MonthBucket // always 12, January first
	TopItems        []ledger.ItemRank    // top 10
	TopItemsCompact []ledger.ItemRank    // top 5
	TopClients      []ClientRanking      // top 10
}

// ReportUsecase derives read-only views from a business's ledger.
type ReportUsecase interface {
	Dashboard(ctx context.Context, userID, businessID uuid.UUID) (*Dashboard, error)
	Annual(ctx context.Context, userID, businessID uuid.UUID, year int) (*AnnualReport, error)
}
