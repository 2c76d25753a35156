package services

import (
	"context"
	"errors"
	"time"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
)

// reportService answers read-only reports from the cached per-user dataset.
type reportService struct {
	datasets DatasetServicer
	resolver *aggregation.Resolver
	location *time.Location
}

// NewReportService creates a new ReportServicer. Day and month buckets are
// cut in loc.
func NewReportService(datasets DatasetServicer, resolver *aggregation.Resolver, loc *time.Location) ReportServicer {
	if loc == nil {
		loc = time.UTC
	}
	return &reportService{datasets: datasets, resolver: resolver, location: loc}
}

// period resolves the query's window. A rejected custom range falls back
// to the current month and says so.
func (s *reportService) period(q ReportQuery) (aggregation.Period, ReportPeriod) {
	sel := q.Period
	if sel == "" {
		sel = aggregation.DefaultPeriod
		if q.From != nil || q.To != nil {
			sel = aggregation.PeriodCustom
		}
	}

	p, fallback := s.resolver.ResolveOrDefault(sel, q.From, q.To)
	rp := ReportPeriod{Selector: sel, Start: p.Start, End: p.End, FallbackApplied: fallback}
	if fallback {
		rp.Selector = aggregation.DefaultPeriod
	}
	return p, rp
}

// filtered loads the dataset and applies the query's period and filters.
// Kind is left to the caller since some reports need both kinds.
func (s *reportService) filtered(ctx context.Context, userID string, q ReportQuery) (*Dataset, []aggregation.Record, ReportPeriod, error) {
	ds, err := s.datasets.Load(ctx, userID)
	if err != nil {
		return nil, nil, ReportPeriod{}, err
	}

	p, rp := s.period(q)
	records := aggregation.Filter(ds.Records, aggregation.Criteria{
		Period:     &p,
		CategoryID: q.CategoryID,
		AccountID:  q.AccountID,
		CardID:     q.CardID,
		TagIDs:     q.TagIDs,
		SearchText: q.Search,
		MinAmount:  q.MinAmount,
		MaxAmount:  q.MaxAmount,
	})
	return ds, records, rp, nil
}

// GetSummary totals income and expense over the period.
func (s *reportService) GetSummary(ctx context.Context, userID string, q ReportQuery) (*SummaryReport, error) {
	_, records, rp, err := s.filtered(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	return &SummaryReport{Period: rp, Totals: aggregation.Totals(records)}, nil
}

// GetBreakdown groups one kind of record, expenses by default, by category
// unless another dimension is asked for.
func (s *reportService) GetBreakdown(ctx context.Context, userID string, q ReportQuery) (*BreakdownReport, error) {
	if q.Kind == "" {
		q.Kind = aggregation.KindExpense
	}
	if q.GroupBy == "" {
		q.GroupBy = aggregation.GroupByCategory
	}
	if !q.Kind.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be income or expense")
	}

	ds, records, rp, err := s.filtered(ctx, userID, q)
	if err != nil {
		return nil, err
	}

	summary, err := aggregation.Aggregate(records, q.Kind, q.GroupBy, ds.Labels(s.location))
	if err != nil {
		return nil, mapCoreError(err)
	}
	return &BreakdownReport{Period: rp, Summary: summary}, nil
}

// GetCashFlow builds the running balance, by month unless day is asked
// for, seeded with the sum of the active account balances.
func (s *reportService) GetCashFlow(ctx context.Context, userID string, q ReportQuery) (*CashFlowReport, error) {
	if q.GroupBy == "" {
		q.GroupBy = aggregation.GroupByMonth
	}

	ds, records, rp, err := s.filtered(ctx, userID, q)
	if err != nil {
		return nil, err
	}

	p := aggregation.Period{Start: rp.Start, End: rp.End}
	opening := ds.OpeningBalance()
	points, err := aggregation.CashFlow(records, q.GroupBy, opening, &p, s.location)
	if err != nil {
		if errors.Is(err, aggregation.ErrUnsupportedGrouping) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cash flow groups by day or month")
		}
		return nil, mapCoreError(err)
	}

	return &CashFlowReport{Period: rp, GroupBy: q.GroupBy, OpeningBalance: opening, Points: points}, nil
}

// GetBudgetsOverview evaluates every active budget against live spending.
func (s *reportService) GetBudgetsOverview(ctx context.Context, userID string) ([]BudgetProgress, error) {
	ds, err := s.datasets.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.resolver.Now()
	out := make([]BudgetProgress, 0, len(ds.Budgets))
	for i := range ds.Budgets {
		b := &ds.Budgets[i]
		if !b.IsActive {
			continue
		}
		out = append(out, budgetProgress(b, ds.CategoryName(b.CategoryID), ds.Records, now))
	}
	return out, nil
}

// GetGoalsOverview evaluates every goal.
func (s *reportService) GetGoalsOverview(ctx context.Context, userID string) ([]GoalProgress, error) {
	ds, err := s.datasets.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.resolver.Now()
	out := make([]GoalProgress, 0, len(ds.Goals))
	for i := range ds.Goals {
		out = append(out, goalProgress(&ds.Goals[i], now))
	}
	return out, nil
}

// GetCardsOverview evaluates the limit usage of every active card.
func (s *reportService) GetCardsOverview(ctx context.Context, userID string) ([]CardUsage, error) {
	ds, err := s.datasets.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.resolver.Now()
	out := make([]CardUsage, 0, len(ds.Cards))
	for i := range ds.Cards {
		c := &ds.Cards[i]
		if !c.IsActive {
			continue
		}
		out = append(out, cardUsage(c, ds.Records, now))
	}
	return out, nil
}
