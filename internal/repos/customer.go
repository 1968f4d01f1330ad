package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/types"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customer *types.Customer) error
	Update(ctx context.Context, tx *gorm.DB, customer *types.Customer) error
	GetByID(ctx context.Context, tx *gorm.DB, customerID int64) (*types.Customer, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Customer, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Customer, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, customerID int64) (bool, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, customerID int64) error
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (cr *customerRepo) Create(ctx context.Context, tx *gorm.DB, customer *types.Customer) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("email already taken")
		}
		return err
	}
	return nil
}

// Update overwrites all mutable fields and bumps the version column. A write
// against a stale version affects zero rows and fails with a conflict.
func (cr *customerRepo) Update(ctx context.Context, tx *gorm.DB, customer *types.Customer) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Where("id = ? AND version = ?", customer.ID, customer.Version).
		Updates(map[string]interface{}{
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"email":      customer.Email,
			"age":        customer.Age,
			"version":    customer.Version + 1,
		})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.Conflictf("email already taken")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.Conflictf("customer %d was modified concurrently", customer.ID)
	}
	customer.Version++
	return nil
}

func (cr *customerRepo) GetByID(ctx context.Context, tx *gorm.DB, customerID int64) (*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var row types.Customer
	err := transaction.WithContext(ctx).
		Where("id = ?", customerID).
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

func (cr *customerRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	results := []*types.Customer{}
	if err := transaction.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *customerRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var row types.Customer
	err := transaction.WithContext(ctx).
		Where("email = ?", email).
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

func (cr *customerRepo) ExistsByID(ctx context.Context, tx *gorm.DB, customerID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *customerRepo) DeleteByID(ctx context.Context, tx *gorm.DB, customerID int64) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Delete(&types.Customer{}, customerID).Error
}
