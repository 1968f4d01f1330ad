package repos

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *types.Order) error
	Update(ctx context.Context, tx *gorm.DB, order *types.Order) error
	GetByID(ctx context.Context, tx *gorm.DB, orderID int64) (*types.Order, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Order, error)
	GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID int64) ([]*types.Order, error)
	GetByProductID(ctx context.Context, tx *gorm.DB, productID int64) ([]*types.Order, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, orderID int64) (bool, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, orderID int64) error
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

// Create persists the order together with its order_products association rows.
func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Omit("Customer").Create(order).Error
}

// Update writes the recomputed total with a version check, then replaces the
// association rows with the order's current product set. Both run against the
// same transaction so a stale write leaves the associations untouched.
func (or *orderRepo) Update(ctx context.Context, tx *gorm.DB, order *types.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ? AND version = ?", order.ID, order.Version).
		Updates(map[string]interface{}{
			"total_amount": order.TotalAmount,
			"version":      order.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.Conflictf("order %d was modified concurrently", order.ID)
	}
	order.Version++
	if err := transaction.WithContext(ctx).
		Model(order).
		Association("Products").
		Replace(order.Products); err != nil {
		return err
	}
	return nil
}

func (or *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, orderID int64) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var row types.Order
	err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Where("id = ?", orderID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row, nil
}

func (or *orderRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	results := []*types.Order{}
	if err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID int64) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	results := []*types.Order{}
	if err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Where("customer_id = ?", customerID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) GetByProductID(ctx context.Context, tx *gorm.DB, productID int64) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	results := []*types.Order{}
	if err := transaction.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Joins("JOIN order_products ON order_products.order_id = orders.id").
		Where("order_products.product_id = ?", productID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) ExistsByID(ctx context.Context, tx *gorm.DB, orderID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByID removes the order and its association rows. Products and the
// owning customer are left alone.
func (or *orderRepo) DeleteByID(ctx context.Context, tx *gorm.DB, orderID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if err := transaction.WithContext(ctx).
		Exec(`DELETE FROM order_products WHERE order_id = ?`, orderID).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Delete(&types.Order{}, orderID).Error
}
