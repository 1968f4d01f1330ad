package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/types"
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("failed to init logger: %v", err)
	}
	return log
}

// DB opens a private in-memory sqlite database migrated to the current
// schema. Every test gets its own database, so no cross-test state survives.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to init test db: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Customer{},
		&types.Product{},
		&types.Order{},
	); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func SeedCustomer(tb testing.TB, ctx context.Context, db *gorm.DB, email string) *types.Customer {
	tb.Helper()
	c := &types.Customer{
		FirstName: "John",
		LastName:  "Doe",
		Email:     email,
		Age:       25,
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, db *gorm.DB, name, price string) *types.Product {
	tb.Helper()
	p := &types.Product{
		ProductName: name,
		Price:       decimal.RequireFromString(price),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}
