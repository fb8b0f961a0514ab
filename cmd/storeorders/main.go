package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fekuna/omnipos-storeorders/config"
	"github.com/fekuna/omnipos-storeorders/internal/database"
	"github.com/fekuna/omnipos-storeorders/internal/logger"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	productDto "github.com/fekuna/omnipos-storeorders/internal/product/dto"
	"github.com/fekuna/omnipos-storeorders/internal/seed"

	invRepoPkg "github.com/fekuna/omnipos-storeorders/internal/inventory/repository"
	orderRepoPkg "github.com/fekuna/omnipos-storeorders/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-storeorders/internal/order/usecase"
	prodRepoPkg "github.com/fekuna/omnipos-storeorders/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-storeorders/internal/product/usecase"
	storeRepoPkg "github.com/fekuna/omnipos-storeorders/internal/store/repository"
	storeUCPkg "github.com/fekuna/omnipos-storeorders/internal/store/usecase"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.App.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig).With(zap.String("run_id", uuid.NewString()))

	if err := run(context.Background(), cfg, appLogger); err != nil {
		appLogger.Error("Run failed", zap.Error(err))
		_ = appLogger.Sync()
		os.Exit(1)
	}
	_ = appLogger.Sync()
}

func run(ctx context.Context, cfg *config.Config, log logger.ZapLogger) error {
	// 3. Connect to Database
	db, err := database.Open(ctx, &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		Path:            cfg.SQLite.Path,
	})
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	// 4. Ensure Schema
	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	// 5. Seed
	if _, err := seed.NewSeeder(db, log).Seed(ctx); err != nil && !errors.Is(err, seed.ErrAlreadySeeded) {
		return fmt.Errorf("could not seed database: %w", err)
	}

	// 6. Initialize Repositories and UseCases
	storeUC := storeUCPkg.NewStoreUseCase(storeRepoPkg.NewSQLRepository(db), invRepoPkg.NewSQLRepository(db), log)
	prodUC := prodUCPkg.NewProductUseCase(prodRepoPkg.NewSQLRepository(db), log)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepoPkg.NewSQLRepository(db), log)

	// 7. Queries
	store, err := storeUC.FindStore(ctx, seed.StoreName, seed.StoreCity, seed.StoreState)
	if err != nil {
		return err
	}
	if store != nil {
		store, err = storeUC.GetStoreWithStock(ctx, store.ID)
		if err != nil {
			return err
		}
	}
	if store != nil {
		for _, s := range store.Stocks {
			log.Info("Store stock",
				zap.String("store", store.Name),
				zap.String("product", s.Product.Name),
				zap.Int("quantity", s.Quantity),
			)
		}
	}

	catalog, total, err := prodUC.ListProducts(ctx, &productDto.ProductFilters{SortBy: "name", SortOrder: "asc"})
	if err != nil {
		return err
	}
	log.Info("Product catalog", zap.Int("total", total))
	for _, p := range catalog {
		log.Info("Catalog product", zap.Int64("product_id", p.ID), zap.String("name", p.Name))
	}

	orders, err := orderUC.ListOrdersWithItems(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		log.Info("Order", zap.Int64("order_id", o.ID), zap.Time("order_date", o.OrderDate), zap.Int("items", len(o.Items)))
	}

	items, err := orderUC.ListItemsWithMinQuantity(ctx, 1)
	if err != nil {
		return err
	}
	logItems(log, "Order item with quantity >= 1", items)

	product, err := prodUC.GetProductByName(ctx, seed.CoffeeName)
	if err != nil {
		return err
	}
	if product == nil {
		log.Warn("Product not found", zap.String("name", seed.CoffeeName))
	} else {
		log.Info("Product found", zap.Int64("product_id", product.ID), zap.String("name", product.Name))

		locations, err := storeUC.ListProductStock(ctx, product.ID)
		if err != nil {
			return err
		}
		for _, s := range locations {
			log.Info("Stock location",
				zap.String("product", s.Product.Name),
				zap.String("store", s.Store.Name),
				zap.String("city", s.Store.City),
				zap.Int("quantity", s.Quantity),
			)
		}
	}

	items, err = orderUC.ListItemsByProductName(ctx, seed.CoffeeName)
	if err != nil {
		return err
	}
	logItems(log, "Order item for product", items)

	top, err := orderUC.GetTopItemByProductName(ctx, seed.CoffeeName)
	if err != nil {
		return err
	}
	if top != nil {
		logItems(log, "Top order item for product", []model.OrderItem{*top})
	}

	log.Info("Done")
	return nil
}

func logItems(log logger.ZapLogger, msg string, items []model.OrderItem) {
	for _, item := range items {
		log.Info(msg,
			zap.Int64("order_item_id", item.ID),
			zap.Int64("order_id", item.Order.ID),
			zap.Time("order_date", item.Order.OrderDate),
			zap.String("product", item.Product.Name),
			zap.Int("quantity", item.Quantity),
		)
	}
}
