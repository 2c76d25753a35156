package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"carteira/internal/aggregation"
	"carteira/internal/cache"
	"carteira/internal/clock"
	apperrors "carteira/internal/errors"
	"carteira/internal/events"
	"carteira/internal/logger"
	"carteira/internal/models"
)

// Dataset is everything one user's reports aggregate over. Records holds
// transactions, debts and receivable payments in date order.
type Dataset struct {
	Records    []aggregation.Record
	Categories []models.Category
	Accounts   []models.Account
	Cards      []models.Card
	Budgets    []models.Budget
	Goals      []models.Goal
	Tags       []models.Tag
	LoadedAt   time.Time
}

// CategoryName returns the category's name, or id when it is unknown.
func (d *Dataset) CategoryName(id string) string {
	for i := range d.Categories {
		if d.Categories[i].ID == id {
			return d.Categories[i].Name
		}
	}
	return id
}

// Labels builds the group labels for the user's categories.
func (d *Dataset) Labels(loc *time.Location) aggregation.Labels {
	categories := make(map[string]aggregation.CategoryInfo, len(d.Categories))
	for _, c := range d.Categories {
		categories[c.ID] = aggregation.CategoryInfo{Name: c.Name, Color: c.Color}
	}
	return aggregation.Labels{Categories: categories, Location: loc}
}

// OpeningBalance is the sum of the active accounts' balances.
func (d *Dataset) OpeningBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range d.Accounts {
		if a.IsActive {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// datasetService loads per-user datasets, caching them until a change for
// the user is published. Each user has a generation that Invalidate bumps; a
// load only fills the cache when no invalidation happened while it ran.
type datasetService struct {
	db    *gorm.DB
	cache *cache.LRUCache[*Dataset]
	clock clock.Clock

	mu          sync.Mutex
	generations map[string]uint64
}

// NewDatasetService creates a new DatasetServicer. A nil cache disables
// caching; a nil clock stamps datasets with the system time in UTC.
func NewDatasetService(db *gorm.DB, c *cache.LRUCache[*Dataset], clk clock.Clock) DatasetServicer {
	if clk == nil {
		clk = clock.NewSystem(time.UTC)
	}
	return &datasetService{db: db, cache: c, clock: clk, generations: make(map[string]uint64)}
}

// Load returns the user's dataset, from cache when possible.
func (s *datasetService) Load(ctx context.Context, userID string) (*Dataset, error) {
	if s.cache == nil {
		return s.load(ctx, userID)
	}

	gen := s.generation(userID)
	if ds, ok := s.cache.Get(userID); ok {
		return ds, nil
	}

	ds, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	current := s.generations[userID] == gen
	if current {
		s.cache.Set(userID, ds)
	}
	s.mu.Unlock()

	if !current {
		logger.Get().Debugw("dataset changed while loading, not caching", "user_id", userID)
	}
	return ds, nil
}

func (s *datasetService) generation(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[userID]
}

func (s *datasetService) load(ctx context.Context, userID string) (*Dataset, error) {
	var (
		ds           = &Dataset{LoadedAt: s.clock.Now()}
		transactions []models.Transaction
		debts        []models.Debt
		receivables  []models.Receivable
	)

	g, gctx := errgroup.WithContext(ctx)
	db := s.db.WithContext(gctx)
	find := func(dest interface{}, order string, preload ...string) func() error {
		return func() error {
			q := db.Where("user_id = ?", userID).Order(order)
			for _, p := range preload {
				q = q.Preload(p)
			}
			return q.Find(dest).Error
		}
	}

	g.Go(find(&transactions, "date ASC, created_at ASC"))
	g.Go(find(&debts, "due_date ASC"))
	g.Go(find(&receivables, "due_date ASC", "Payments"))
	g.Go(find(&ds.Categories, "sort_order ASC, name ASC"))
	g.Go(find(&ds.Accounts, "name ASC"))
	g.Go(find(&ds.Cards, "name ASC"))
	g.Go(find(&ds.Budgets, "name ASC"))
	g.Go(find(&ds.Goals, "created_at ASC"))
	g.Go(find(&ds.Tags, "name ASC"))

	if err := g.Wait(); err != nil {
		logger.Get().Errorw("failed to load dataset", "error", err, "user_id", userID)
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	records := make([]aggregation.Record, 0, len(transactions)+len(debts))
	for i := range transactions {
		records = append(records, transactions[i].Record())
	}
	for i := range debts {
		records = append(records, debts[i].Record())
	}
	for i := range receivables {
		r := &receivables[i]
		for j := range r.Payments {
			records = append(records, r.Payments[j].Record(r))
		}
	}
	sort.SliceStable(records, func(a, b int) bool { return records[a].Date.Before(records[b].Date) })
	ds.Records = records

	return ds, nil
}

// Invalidate drops the changed user's cached dataset and fences off loads
// that started before the change.
func (s *datasetService) Invalidate(_ context.Context, c events.Change) error {
	if s.cache == nil {
		return nil
	}
	s.mu.Lock()
	s.generations[c.UserID]++
	s.cache.Delete(c.UserID)
	s.mu.Unlock()
	return nil
}

// Stats reports cache usage.
func (s *datasetService) Stats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{}
	}
	return s.cache.Stats()
}
