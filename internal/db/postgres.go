package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger, dsn string) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	serviceLog.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(
		&types.Customer{},
		&types.Product{},
		&types.Order{},
	); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table string
		name  string
		def   string
	}{
		{"orders", "fk_orders_customer_id",
			`FOREIGN KEY ("customer_id") REFERENCES "customers"("id")`},
		{"order_products", "fk_order_products_order_id",
			`FOREIGN KEY ("order_id") REFERENCES "orders"("id") ON DELETE CASCADE`},
		{"order_products", "fk_order_products_product_id",
			`FOREIGN KEY ("product_id") REFERENCES "products"("id") ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, c.table, c.name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", c.name, err)
		}
		add := fmt.Sprintf(`ALTER TABLE %q ADD CONSTRAINT %q %s`, c.table, c.name, c.def)
		if err := s.db.Exec(add).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
