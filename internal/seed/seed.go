// Package seed writes the fixed demonstration dataset.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-storeorders/internal/database"
	invRepoPkg "github.com/fekuna/omnipos-storeorders/internal/inventory/repository"
	"github.com/fekuna/omnipos-storeorders/internal/logger"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	orderRepoPkg "github.com/fekuna/omnipos-storeorders/internal/order/repository"
	prodRepoPkg "github.com/fekuna/omnipos-storeorders/internal/product/repository"
	storeRepoPkg "github.com/fekuna/omnipos-storeorders/internal/store/repository"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	StoreName  = "University Plaza"
	StoreCity  = "Tampa"
	StoreState = "FL"

	CoffeeName = "Colombian Coffee Grounds"
	MugName    = "Stainless Steel Travel Mug"
)

// ErrAlreadySeeded is returned when the seed store is already present.
var ErrAlreadySeeded = errors.New("seed data already present")

// Dataset is the seeded object graph. Ids are filled in by Seed.
type Dataset struct {
	Store  *model.Store
	Coffee *model.Product
	Mug    *model.Product
	Stocks []*model.StoreStock
	Orders []*model.Order     // A, B, C; newest first
	Items  []*model.OrderItem // one per order
}

// Build assembles the dataset relative to now without touching storage.
func Build(now time.Time) *Dataset {
	store := &model.Store{Name: StoreName, City: StoreCity, State: StoreState}
	coffee := &model.Product{Name: CoffeeName}
	mug := &model.Product{Name: MugName}

	orderA := &model.Order{OrderDate: now}
	orderB := &model.Order{OrderDate: now.AddDate(0, 0, -1)}
	orderC := &model.Order{OrderDate: now.AddDate(0, 0, -2)}

	return &Dataset{
		Store:  store,
		Coffee: coffee,
		Mug:    mug,
		Stocks: []*model.StoreStock{
			{Store: store, Product: coffee, Quantity: 17},
			{Store: store, Product: mug, Quantity: 20},
		},
		Orders: []*model.Order{orderA, orderB, orderC},
		Items: []*model.OrderItem{
			{Order: orderA, Product: coffee, Quantity: 2},
			{Order: orderB, Product: mug, Quantity: 1},
			{Order: orderC, Product: coffee, Quantity: 1},
		},
	}
}

type Option func(*Seeder)

// WithClock replaces time.Now as the reference time for order dates.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) {
		s.now = now
	}
}

type Seeder struct {
	db     *sqlx.DB
	logger logger.ZapLogger
	now    func() time.Time
}

func NewSeeder(db *sqlx.DB, log logger.ZapLogger, opts ...Option) *Seeder {
	s := &Seeder{
		db:     db,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed inserts the dataset in a single transaction. Nothing is written when
// any insert fails, or when the seed store already exists (ErrAlreadySeeded).
func (s *Seeder) Seed(ctx context.Context) (*Dataset, error) {
	data := Build(s.now())

	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		existing, err := storeRepoPkg.NewSQLRepository(tx).FindByNaturalKey(ctx, StoreName, StoreCity, StoreState)
		if err != nil {
			return fmt.Errorf("failed to check for existing seed: %w", err)
		}
		if existing != nil {
			return ErrAlreadySeeded
		}
		return insert(ctx, tx, data)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadySeeded) {
			s.logger.Info("Seed data already present, skipping")
		}
		return nil, err
	}

	s.logger.Info("Seed data committed",
		zap.Int64("store_id", data.Store.ID),
		zap.Int("products", 2),
		zap.Int("stocks", len(data.Stocks)),
		zap.Int("orders", len(data.Orders)),
		zap.Int("order_items", len(data.Items)),
	)
	return data, nil
}

func insert(ctx context.Context, tx *sqlx.Tx, data *Dataset) error {
	stores := storeRepoPkg.NewSQLRepository(tx)
	products := prodRepoPkg.NewSQLRepository(tx)
	stocks := invRepoPkg.NewSQLRepository(tx)
	orders := orderRepoPkg.NewSQLRepository(tx)

	if err := stores.Create(ctx, data.Store); err != nil {
		return fmt.Errorf("failed to insert store: %w", err)
	}
	for _, p := range []*model.Product{data.Coffee, data.Mug} {
		if err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to insert product %q: %w", p.Name, err)
		}
	}
	for _, stock := range data.Stocks {
		stock.StoreID = stock.Store.ID
		stock.ProductID = stock.Product.ID
		if err := stocks.Create(ctx, stock); err != nil {
			return fmt.Errorf("failed to insert store stock: %w", err)
		}
	}
	for _, o := range data.Orders {
		if err := orders.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
	}
	for _, item := range data.Items {
		item.OrderID = item.Order.ID
		item.ProductID = item.Product.ID
		if err := orders.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}
	return nil
}
