package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/types"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, product *types.Product) error
	Update(ctx context.Context, tx *gorm.DB, product *types.Product) error
	GetByID(ctx context.Context, tx *gorm.DB, productID int64) (*types.Product, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, productIDs []int64) ([]*types.Product, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
	GetByName(ctx context.Context, tx *gorm.DB, productName string) (*types.Product, error)
	GetByOrderID(ctx context.Context, tx *gorm.DB, orderID int64) ([]*types.Product, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, productID int64) (bool, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, productID int64) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, product *types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("product already exists")
		}
		return err
	}
	return nil
}

func (pr *productRepo) Update(ctx context.Context, tx *gorm.DB, product *types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ? AND version = ?", product.ID, product.Version).
		Updates(map[string]interface{}{
			"product_name": product.ProductName,
			"price":        product.Price,
			"version":      product.Version + 1,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("product already exists")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.Conflictf("product %d was modified concurrently", product.ID)
	}
	product.Version++
	return nil
}

func (pr *productRepo) GetByID(ctx context.Context, tx *gorm.DB, productID int64) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var row types.Product
	err := transaction.WithContext(ctx).
		Where("id = ?", productID).
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

// GetByIDs returns whatever subset of the requested ids exists. Unknown ids
// are dropped, not reported.
func (pr *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, productIDs []int64) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	results := []*types.Product{}
	if len(productIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	results := []*types.Product{}
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) GetByName(ctx context.Context, tx *gorm.DB, productName string) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var row types.Product
	err := transaction.WithContext(ctx).
		Where("product_name = ?", productName).
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

func (pr *productRepo) GetByOrderID(ctx context.Context, tx *gorm.DB, orderID int64) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	results := []*types.Product{}
	if err := transaction.WithContext(ctx).
		Joins("JOIN order_products ON order_products.product_id = products.id").
		Where("order_products.order_id = ?", orderID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) ExistsByID(ctx context.Context, tx *gorm.DB, productID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Where("id = ?", productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (pr *productRepo) DeleteByID(ctx context.Context, tx *gorm.DB, productID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Delete(&types.Product{}, productID).Error
}
