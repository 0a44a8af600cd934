// Package workshop owns the live collections of the workshop and keeps them
// in sync with the configured blob store. Every mutation persists the full
// affected collection; reads are served from memory.
package workshop

import (
	"context"
	"encoding/json"
	"errors"
		"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mamadbah2/sewmaster/internal/domain/models"
	"github.com/mamadbah2/sewmaster/internal/domain/names"
	"github.com/mamadbah2/sewmaster/internal/ledger"
	"github.com/mamadbah2/sewmaster/internal/repository"
	"github.com/mamadbah2/sewmaster/internal/service/reporting"
)

const (
	catalogSuffix    = "_catalog"
	productionSuffix = "_production"
	salesSuffix      = "_sales"
)

// Options tune a Store.
type Options struct {
	// KeyPrefix namespaces the three collection keys.
	KeyPrefix string
	// Location decides what "today" means for undated entries and projections.
	Location *time.Location
	// SeedCatalog installs the default catalog when none was ever saved.
	SeedCatalog bool
}

// Store is the workshop's state: production ledger, catalog and sales.
type Store struct {
	blobs  repository.BlobStore
	opts   Options
	logger *zap.Logger
	now    func() time.Time

	// writeMu orders mutate-then-persist sequences so saved snapshots never
	// go back in time.
	writeMu sync.Mutex
	// unreadable holds the suffixes whose last load failed. Guarded by writeMu.
	unreadable map[string]bool

	production *ledger.Ledger
	catalog    *ledger.Catalog
	sales      *ledger.Sales
}

// NewStore creates an empty store. Call Load to restore saved state.
func NewStore(blobs repository.BlobStore, opts Options, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "sewmaster"
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	return &Store{
		blobs:      blobs,
		opts:       opts,
		logger:     logger.Named("svc.workshop"),
		now:        time.Now,
		unreadable: make(map[string]bool),
		production: ledger.New(nil),
		catalog:    ledger.NewCatalog(nil),
		sales:      ledger.NewSales(nil),
	}
}

// Load restores the three collections. A missing, unreadable or corrupt
// collection starts empty and the problem is logged. A collection the backend
// failed to read is not written back until a later Load reads it, so saved
// data is never replaced by an empty snapshot.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if data, ok := s.load(ctx, productionSuffix); ok && data != nil {
		entries, dropped, err := ledger.DecodeProduction(data)
		s.reportDecode(productionSuffix, len(entries), dropped, err)
		s.production = ledger.New(entries)
	}

	data, ok := s.load(ctx, catalogSuffix)
	switch {
	case ok && data != nil:
		products, dropped, err := ledger.DecodeCatalog(data)
		s.reportDecode(catalogSuffix, len(products), dropped, err)
		s.catalog = ledger.NewCatalog(products)
	case ok && s.opts.SeedCatalog:
		s.catalog = ledger.NewCatalog(models.DefaultCatalog())
		s.persist(ctx, catalogSuffix, s.catalog.List())
		s.logger.Info("default catalog seeded")
	}

	if data, ok := s.load(ctx, salesSuffix); ok && data != nil {
		entries, dropped, err := ledger.DecodeSales(data)
		s.reportDecode(salesSuffix, len(entries), dropped, err)
		s.sales = ledger.NewSales(entries)
	}

	return nil
}

// Degraded reports whether any collection could not be read from the backend
// on the last Load.
func (s *Store) Degraded() bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return len(s.unreadable) > 0
}

// Today returns the current date in the workshop's location.
func (s *Store) Today() string {
	return s.Now().Format(models.DateLayout)
}

// Now returns the current time in the workshop's location.
func (s *Store) Now() time.Time {
	return s.now().In(s.opts.Location)
}

// Production returns a snapshot of the ledger, newest first.
func (s *Store) Production() []models.ProductionEntry {
	return s.production.Entries()
}

// Entry returns the production entry with the given id.
func (s *Store) Entry(id string) (models.ProductionEntry, bool) {
	return s.production.Get(id)
}

// AddProduction records new work. An empty date means today and a zero unit
// value is filled from the catalog price of the product.
func (s *Store) AddProduction(ctx context.Context, in models.ProductionInput) (models.ProductionEntry, error) {
	in = s.complete(in)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	entry, err := s.production.Add(in)
	if err != nil {
		return models.ProductionEntry{}, err
	}
	s.persist(ctx, productionSuffix, s.production.Entries())
	s.logger.Info("production recorded",
		zap.String("id", entry.ID),
		zap.String("seamstress", entry.Seamstress),
		zap.Int("quantity", entry.Quantity))
	return entry, nil
}

// UpdateProduction edits an entry. The boolean is false when id is unknown.
func (s *Store) UpdateProduction(ctx context.Context, id string, in models.ProductionInput) (models.ProductionEntry, bool, error) {
	in = s.complete(in)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	entry, ok, err := s.production.Update(id, in)
	if err != nil || !ok {
		return entry, ok, err
	}
	s.persist(ctx, productionSuffix, s.production.Entries())
	return entry, true, nil
}

// ToggleStatus flips the payment status of an entry.
func (s *Store) ToggleStatus(ctx context.Context, id string) (models.ProductionEntry, bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	entry, ok := s.production.ToggleStatus(id)
	if !ok {
		return entry, false
	}
	s.persist(ctx, productionSuffix, s.production.Entries())
	s.logger.Info("status toggled", zap.String("id", id), zap.String("status", string(entry.Status)))
	return entry, true
}

// RemoveProduction deletes an entry and reports whether it existed.
func (s *Store) RemoveProduction(ctx context.Context, id string) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if !s.production.Remove(id) {
		return false
	}
	s.persist(ctx, productionSuffix, s.production.Entries())
	return true
}

// Catalog returns the product list in insertion order.
func (s *Store) Catalog() []models.ProductCatalog {
	return s.catalog.List()
}

// FindProduct looks a product up by normalized name.
func (s *Store) FindProduct(name string) (models.ProductCatalog, bool) {
	return s.catalog.FindByName(name)
}

// AddProduct appends a product to the catalog.
func (s *Store) AddProduct(ctx context.Context, name string, price decimal.Decimal) (models.ProductCatalog, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	p, err := s.catalog.Add(name, price)
	if err != nil {
		return models.ProductCatalog{}, err
	}
	s.persist(ctx, catalogSuffix, s.catalog.List())
	return p, nil
}

// UpdateProduct renames or reprices a product. Existing entries keep the unit
// value they were recorded with.
func (s *Store) UpdateProduct(ctx context.Context, id, name string, price decimal.Decimal) (models.ProductCatalog, bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	p, ok, err := s.catalog.Update(id, name, price)
	if err != nil || !ok {
		return p, ok, err
	}
	s.persist(ctx, catalogSuffix, s.catalog.List())
	return p, true, nil
}

// RemoveProduct deletes a product from the catalog.
func (s *Store) RemoveProduct(ctx context.Context, id string) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if !s.catalog.Remove(id) {
		return false
	}
	s.persist(ctx, catalogSuffix, s.catalog.List())
	return true
}

// Sales returns recorded sales, newest first.
func (s *Store) Sales() []models.SalesEntry {
	return s.sales.Entries()
}

// AddSale records a sale. An empty date means today.
func (s *Store) AddSale(ctx context.Context, in models.SaleInput) (models.SalesEntry, error) {
	if in.Date == "" {
		in.Date = s.Today()
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	sale, err := s.sales.Add(in)
	if err != nil {
		return models.SalesEntry{}, err
	}
	s.persist(ctx, salesSuffix, s.sales.Entries())
	return sale, nil
}

// RemoveSale deletes a sale.
func (s *Store) RemoveSale(ctx context.Context, id string) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if !s.sales.Remove(id) {
		return false
	}
	s.persist(ctx, salesSuffix, s.sales.Entries())
	return true
}

// SalesSummary totals all recorded sales.
func (s *Store) SalesSummary() models.SalesSummary {
	return reporting.SummarizeSales(s.sales.Entries())
}

// Summary totals the whole ledger.
func (s *Store) Summary() models.FinancialSummary {
	return reporting.Summarize(s.production.Entries())
}

// Workers returns per-worker totals, largest pending balance first.
func (s *Store) Workers() []models.WorkerStat {
	return reporting.SortByPending(reporting.WorkerStats(s.production.Entries()))
}

// Ranking orders workers by pieces produced.
func (s *Store) Ranking() []models.RankedWorker {
	return reporting.Rank(reporting.WorkerStats(s.production.Entries()))
}

// Projection extrapolates the current month.
func (s *Store) Projection() models.Projection {
	return reporting.Project(s.production.Entries(), s.Now())
}

// Report applies a filter after normalizing it.
func (s *Store) Report(f models.Filter) (models.ProductionReport, error) {
	f, err := reporting.NormalizeFilter(f)
	if err != nil {
		return models.ProductionReport{}, err
	}
	return reporting.Report(s.production.Entries(), f), nil
}

// Statement returns one worker's totals and every entry recorded under the
// same normalized name.
func (s *Store) Statement(name string) (models.WorkerStat, []models.ProductionEntry, bool) {
	entries := s.production.Entries()
	stat, ok := reporting.FindWorker(reporting.WorkerStats(entries), name)
	if !ok {
		return models.WorkerStat{}, nil, false
	}

	key := names.Key(name)
	own := make([]models.ProductionEntry, 0)
	for _, e := range entries {
		if names.Key(e.Seamstress) == key {
			own = append(own, e)
		}
	}
	return stat, own, true
}

func (s *Store) complete(in models.ProductionInput) models.ProductionInput {
	if in.Date == "" {
		in.Date = s.Today()
	}
	if in.UnitValue.IsZero() {
		if p, ok := s.catalog.FindByName(in.Product); ok {
			in.UnitValue = p.ProductionPrice
		}
	}
	return in
}

func (s *Store) key(suffix string) string {
	return s.opts.KeyPrefix + suffix
}

// load returns the saved blob for suffix, nil when none was saved. ok is
// false when the backend failed; the collection is then marked unreadable.
func (s *Store) load(ctx context.Context, suffix string) ([]byte, bool) {
	data, err := s.blobs.Load(ctx, s.key(suffix))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		delete(s.unreadable, suffix)
		return nil, true
	case err != nil:
		s.unreadable[suffix] = true
		s.logger.Warn("storage unreadable, starting empty",
			zap.String("key", s.key(suffix)), zap.Error(err))
		return nil, false
	}
	delete(s.unreadable, suffix)
	return data, true
}

func (s *Store) reportDecode(suffix string, kept, dropped int, err error) {
	if err != nil {
		s.logger.Warn("saved collection unreadable, starting empty",
			zap.String("key", s.key(suffix)), zap.Error(err))
		return
	}
	if dropped > 0 {
		s.logger.Warn("dropped invalid records",
			zap.String("key", s.key(suffix)), zap.Int("dropped", dropped))
	}
	s.logger.Info("collection restored", zap.String("key", s.key(suffix)), zap.Int("records", kept))
}

// persist logs failures instead of returning them; the next successful write
// carries the full collection.
func (s *Store) persist(ctx context.Context, suffix string, v interface{}) {
	if s.unreadable[suffix] {
		s.logger.Warn("collection not persisted, saved copy was never read", zap.String("key", s.key(suffix)))
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode collection", zap.String("key", s.key(suffix)), zap.Error(err))
		return
	}
	if err := s.blobs.Save(ctx, s.key(suffix), data); err != nil {
		s.logger.Error("failed to persist collection", zap.String("key", s.key(suffix)), zap.Error(err))
	}
}
