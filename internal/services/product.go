package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/repos"
	"github.com/stackmart/marketplace-backend/internal/types"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
)

type ProductInput struct {
	ProductName string
	Price       decimal.Decimal
}

type ProductService interface {
	CreateProduct(ctx context.Context, in ProductInput) (*types.Product, error)
	UpdateProduct(ctx context.Context, productID int64, in ProductInput) (*types.Product, error)
	GetProduct(ctx context.Context, productID int64) (*types.Product, error)
	GetProducts(ctx context.Context) ([]*types.Product, error)
	GetProductsForOrder(ctx context.Context, orderID int64) ([]*types.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func (ps *productService) CreateProduct(ctx context.Context, in ProductInput) (*types.Product, error) {
	product := &types.Product{
		ProductName: in.ProductName,
		Price:       in.Price,
	}
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ps.productRepo.GetByName(ctx, tx, in.ProductName)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflictf("product already exists")
		}
		return ps.productRepo.Create(ctx, tx, product)
	})
	if err != nil {
		return nil, err
	}
	ps.log.Info("Product created", "product_id", product.ID)
	return product, nil
}

func (ps *productService) UpdateProduct(ctx context.Context, productID int64, in ProductInput) (*types.Product, error) {
	var updated *types.Product
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := ps.productRepo.GetByID(ctx, tx, productID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.NotFoundf("product with id %d doesn't exist", productID)
		}
		byName, err := ps.productRepo.GetByName(ctx, tx, in.ProductName)
		if err != nil {
			return err
		}
		if byName != nil && byName.ID != productID {
			return apperrors.Conflictf("product already exists")
		}
		existing.ProductName = in.ProductName
		existing.Price = in.Price
		if err := ps.productRepo.Update(ctx, tx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (ps *productService) GetProduct(ctx context.Context, productID int64) (*types.Product, error) {
	product, err := ps.productRepo.GetByID(ctx, nil, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NotFoundf("product with id %d doesn't exist", productID)
	}
	return product, nil
}

func (ps *productService) GetProducts(ctx context.Context) ([]*types.Product, error) {
	return ps.productRepo.GetAll(ctx, nil)
}

// GetProductsForOrder keeps the observed empty-is-error contract: an order
// with no associated products reads as not found.
func (ps *productService) GetProductsForOrder(ctx context.Context, orderID int64) ([]*types.Product, error) {
	products, err := ps.productRepo.GetByOrderID(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFoundf("no products found for order with id %d", orderID)
	}
	return products, nil
}

func (ps *productService) DeleteProduct(ctx context.Context, productID int64) error {
	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := ps.productRepo.ExistsByID(ctx, tx, productID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFoundf("product with id %d doesn't exist", productID)
		}
		return ps.productRepo.DeleteByID(ctx, tx, productID)
	})
}
